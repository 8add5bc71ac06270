package service

import (
	"context"
	"io"
	"time"

	"wms/pkg/importer"
)

type ImportService interface {
	ImportSchedules(ctx context.Context, src io.Reader) *importer.Result
	Template(ctx context.Context, customerCodes []string, now time.Time) (*importer.Template, error)
}
