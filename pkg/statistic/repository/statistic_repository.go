package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wms/entities"
)

// Filter narrows statistic queries. From is inclusive and To exclusive;
// nil bounds are open. An empty Customers list means every customer.
type Filter struct {
	From      *time.Time
	To        *time.Time
	Customers []string
}

type OrderRow struct {
	UId          uuid.UUID `gorm:"column:uid"`
	CustomerCode string
	ShipDate     time.Time
	OrderStatus  entities.OrderStatus
	IsAdvance    bool
}

type DelayRow struct {
	OId          uuid.UUID `gorm:"column:oid"`
	CustomerCode string
	StartTime    time.Time
	DelayTime    float64
	IsAdvance    bool
}

type StatisticRepository interface {
	// Orders filters on ShipDate.
	Orders(ctx context.Context, f Filter) ([]OrderRow, error)
	// Delays filters on the history StartTime and the owning order's customer.
	Delays(ctx context.Context, f Filter) ([]DelayRow, error)
	// ShipDateBounds is the earliest and latest ShipDate; nil when there are
	// no orders.
	ShipDateBounds(ctx context.Context) (*time.Time, *time.Time, error)
}
