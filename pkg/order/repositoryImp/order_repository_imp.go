package repositoryImp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wms/entities"
	"wms/pkg/order/repository"
	"wms/pkg/timeline"
)

type orderRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) repository.OrderRepository { return &orderRepo{db: db, now: time.Now} }

func withLines(db *gorm.DB) *gorm.DB {
	return db.Preload("OrderDetails", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("part_no ASC")
	}).Preload("OrderDetails.ShoppingLists", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("pallet_no ASC")
	})
}

func (r *orderRepo) GetByDate(ctx context.Context, day time.Time) ([]entities.Order, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	var out []entities.Order
	err := withLines(r.db.WithContext(ctx)).
		Where("ship_date >= ? AND ship_date < ?", start, start.AddDate(0, 0, 1)).
		Order("start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var o entities.Order
	if err := withLines(r.db.WithContext(ctx)).Where("uid = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) GetPaged(ctx context.Context, page, pageSize int) ([]entities.Order, error) {
	if page < 1 {
		page = 1
	}
	var out []entities.Order
	err := r.db.WithContext(ctx).
		Order("ship_date DESC, start_time DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&out).Error
	return out, err
}

func (r *orderRepo) GetTotalCount(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&entities.Order{}).Count(&n).Error
}

func (r *orderRepo) GetAll(ctx context.Context) ([]entities.Order, error) {
	var out []entities.Order
	return out, r.db.WithContext(ctx).Order("ship_date DESC, start_time DESC").Find(&out).Error
}

func (r *orderRepo) UpdateStatusIfNeeded(ctx context.Context, id uuid.UUID) (bool, error) {
	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o entities.Order
		q := withLines(tx)
		if tx.Dialector.Name() == "mysql" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.Where("uid = ?", id).First(&o).Error; err != nil {
			return err
		}
		next := timeline.NextStatus(o, r.now())
		if next == o.OrderStatus {
			return nil
		}
		if err := tx.Model(&entities.Order{}).Where("uid = ?", id).Updates(map[string]any{
			"order_status": next,
			"updated_at":   r.now(),
		}).Error; err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"order": id,
			"from":  o.OrderStatus.String(),
			"to":    next.String(),
		}).Info("order status re-evaluated")
		changed = true
		return nil
	})
	return changed, err
}
