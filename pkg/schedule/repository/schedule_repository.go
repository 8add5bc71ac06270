package repository

import (
	"context"
	"time"

	"wms/entities"
)

type ScheduleRepository interface {
	GetAllByCustomer(ctx context.Context, customerCode string) ([]entities.ShippingSchedule, error)
	GetAllByCustomers(ctx context.Context, customerCodes []string) ([]entities.ShippingSchedule, error)
	Create(ctx context.Context, s *entities.ShippingSchedule) error
	UpdateByKey(ctx context.Context, customerCode, transCd string, weekday time.Weekday, s *entities.ShippingSchedule) error
	DeleteByKey(ctx context.Context, customerCode, transCd string, weekday time.Weekday) error
	DeleteAllByCustomer(ctx context.Context, customerCode string) (int64, error)
}
