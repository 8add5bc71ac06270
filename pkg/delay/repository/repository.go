package repository

import (
	"context"

	"github.com/google/uuid"

	"wms/entities"
)

type Repo interface {
	// Record appends h and stamps the owning order in one transaction.
	Record(ctx context.Context, h *entities.DelayHistory) (*entities.Order, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.DelayHistory, error)
}
