package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wms/entities"
)

type OrderRepository interface {
	// GetByDate returns the orders shipping on day's calendar date (in
	// day's location) with details and shopping lists loaded.
	GetByDate(ctx context.Context, day time.Time) ([]entities.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	GetPaged(ctx context.Context, page, pageSize int) ([]entities.Order, error)
	GetTotalCount(ctx context.Context) (int64, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	// UpdateStatusIfNeeded recomputes the stored status from pallet progress
	// and reports whether it changed.
	UpdateStatusIfNeeded(ctx context.Context, id uuid.UUID) (bool, error)
}

type OrderDetailRepository interface {
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entities.OrderDetail, error)
}

type DelayHistoryRepository interface {
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entities.DelayHistory, error)
	GetByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]entities.DelayHistory, error)
}
