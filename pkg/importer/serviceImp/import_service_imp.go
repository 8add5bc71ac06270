package serviceImp

import (
	"context"
	"io"
	"time"

	"wms/pkg/importer"
	svc "wms/pkg/importer/service"
	"wms/pkg/metrics"
)

type service struct {
	rec *importer.Reconciler
	tpl *importer.TemplateBuilder
}

func New(rec *importer.Reconciler, tpl *importer.TemplateBuilder) svc.ImportService {
	return &service{rec: rec, tpl: tpl}
}

func (s *service) ImportSchedules(ctx context.Context, src io.Reader) *importer.Result {
	res := s.rec.Import(ctx, src)
	metrics.ImportRecords.WithLabelValues("customer").Add(float64(res.CustomersAdded))
	metrics.ImportRecords.WithLabelValues("leadtime").Add(float64(res.LeadtimesAdded))
	metrics.ImportRecords.WithLabelValues("schedule").Add(float64(res.SchedulesAdded))
	metrics.ImportErrors.Add(float64(len(res.Errors)))
	outcome := "success"
	if !res.Success() {
		outcome = "failed"
	}
	metrics.ImportRuns.WithLabelValues(outcome).Inc()
	return res
}

func (s *service) Template(ctx context.Context, customerCodes []string, now time.Time) (*importer.Template, error) {
	return s.tpl.Build(ctx, customerCodes, now)
}
