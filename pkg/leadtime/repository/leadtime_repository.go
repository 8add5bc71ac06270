package repository

import (
	"context"

	"wms/entities"
)

type LeadtimeRepository interface {
	GetAllByCustomer(ctx context.Context, customerCode string) ([]entities.LeadtimeMaster, error)
	GetAllByCustomers(ctx context.Context, customerCodes []string) ([]entities.LeadtimeMaster, error)
	Create(ctx context.Context, lt *entities.LeadtimeMaster) error
	UpdateByKey(ctx context.Context, customerCode, transCd string, lt *entities.LeadtimeMaster) error
	DeleteByKey(ctx context.Context, customerCode, transCd string) error
	DeleteAllByCustomer(ctx context.Context, customerCode string) (int64, error)
}
