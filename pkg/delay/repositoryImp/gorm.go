package repositoryImp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wms/entities"
	"wms/pkg/delay/repository"
)

type gormRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Repo { return &gormRepo{db: db} }

// Record sets the order's advance window for an advance, otherwise puts the
// order in Delay from h.StartTime for h.DelayTime hours.
func (r *gormRepo) Record(ctx context.Context, h *entities.DelayHistory) (*entities.Order, error) {
	var out entities.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("uid = ?", h.OId).First(&out).Error; err != nil {
			return err
		}
		if err := tx.Create(h).Error; err != nil {
			return err
		}
		upd := map[string]any{"updated_at": time.Now()}
		if h.IsAdvance {
			upd["is_advance"] = true
			upd["advance_start_time"] = h.StartTime
			upd["advance_end_time"] = h.EndTime()
		} else {
			upd["order_status"] = entities.OrderDelay
			upd["delay_start_time"] = h.StartTime
			upd["delay_time"] = h.DelayTime
		}
		if err := tx.Model(&entities.Order{}).Where("uid = ?", h.OId).Updates(upd).Error; err != nil {
			return err
		}
		return tx.Where("uid = ?", h.OId).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *gormRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.DelayHistory, error) {
	var list []entities.DelayHistory
	return list, r.db.WithContext(ctx).Where("oid = ?", orderID).Order("start_time asc, created_at asc").Find(&list).Error
}
