package service

import (
	"context"

	"github.com/google/uuid"

	"wms/entities"
	"wms/pkg/delay"
)

type Service interface {
	Record(ctx context.Context, orderID uuid.UUID, in delay.Input) (*entities.DelayHistory, *entities.Order, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.DelayHistory, error)
}
