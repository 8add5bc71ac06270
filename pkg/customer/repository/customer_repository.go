package repository

import (
	"context"

	"wms/entities"
)

// CustomerRepository is keyed by customer code. Lookups and key-based
// updates or deletes that match nothing return gorm.ErrRecordNotFound.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]entities.Customer, error)
	GetByCode(ctx context.Context, code string) (*entities.Customer, error)
	GetByCodes(ctx context.Context, codes []string) (map[string]entities.Customer, error)
	Create(ctx context.Context, c *entities.Customer) error
	UpdateByCode(ctx context.Context, code string, c *entities.Customer) error
	DeleteByCode(ctx context.Context, code string) error
	DeleteAll(ctx context.Context) (int64, error)
}
