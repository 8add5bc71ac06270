package repositoryImp

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wms/entities"
	"wms/pkg/order/repository"
)

type historyRepo struct{ db *gorm.DB }

func NewDelayHistory(db *gorm.DB) repository.DelayHistoryRepository { return &historyRepo{db} }

func (r *historyRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entities.DelayHistory, error) {
	var out []entities.DelayHistory
	err := r.db.WithContext(ctx).Where("oid = ?", orderID).Order("start_time ASC").Find(&out).Error
	return out, err
}

func (r *historyRepo) GetByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]entities.DelayHistory, error) {
	out := make(map[uuid.UUID][]entities.DelayHistory, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}
	var rows []entities.DelayHistory
	if err := r.db.WithContext(ctx).Where("oid IN ?", orderIDs).Order("start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, h := range rows {
		out[h.OId] = append(out[h.OId], h)
	}
	return out, nil
}
