package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wms/entities"
	"wms/pkg/statistic/repository"
)

type statRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StatisticRepository { return &statRepo{db} }

func (r *statRepo) Orders(ctx context.Context, f repository.Filter) ([]repository.OrderRow, error) {
	q := r.db.WithContext(ctx).Model(&entities.Order{}).
		Select("uid, customer_code, ship_date, order_status, is_advance")
	if f.From != nil {
		q = q.Where("ship_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("ship_date < ?", *f.To)
	}
	if len(f.Customers) > 0 {
		q = q.Where("customer_code IN ?", f.Customers)
	}
	var out []repository.OrderRow
	return out, q.Order("customer_code ASC, ship_date ASC").Scan(&out).Error
}

func (r *statRepo) Delays(ctx context.Context, f repository.Filter) ([]repository.DelayRow, error) {
	q := r.db.WithContext(ctx).Table("delay_histories AS d").
		Select("d.oid, o.customer_code, d.start_time, d.delay_time, d.is_advance").
		Joins("JOIN orders AS o ON o.uid = d.oid")
	if f.From != nil {
		q = q.Where("d.start_time >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("d.start_time < ?", *f.To)
	}
	if len(f.Customers) > 0 {
		q = q.Where("o.customer_code IN ?", f.Customers)
	}
	var out []repository.DelayRow
	return out, q.Scan(&out).Error
}

func (r *statRepo) ShipDateBounds(ctx context.Context) (*time.Time, *time.Time, error) {
	var first, last entities.Order
	err := r.db.WithContext(ctx).Order("ship_date ASC").Limit(1).Find(&first).Error
	if err != nil || first.ShipDate.IsZero() {
		return nil, nil, err
	}
	if err := r.db.WithContext(ctx).Order("ship_date DESC").Limit(1).Find(&last).Error; err != nil {
		return nil, nil, err
	}
	return &first.ShipDate, &last.ShipDate, nil
}
