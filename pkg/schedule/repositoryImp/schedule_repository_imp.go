package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wms/entities"
	"wms/pkg/schedule/repository"
)

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

func (r *schedRepo) GetAllByCustomer(ctx context.Context, customerCode string) ([]entities.ShippingSchedule, error) {
	var out []entities.ShippingSchedule
	err := r.db.WithContext(ctx).Where("customer_code = ?", customerCode).
		Order("trans_cd ASC, weekday ASC").Find(&out).Error
	return out, err
}

func (r *schedRepo) GetAllByCustomers(ctx context.Context, customerCodes []string) ([]entities.ShippingSchedule, error) {
	var out []entities.ShippingSchedule
	if len(customerCodes) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Where("customer_code IN ?", customerCodes).Find(&out).Error
	return out, err
}

func (r *schedRepo) Create(ctx context.Context, s *entities.ShippingSchedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *schedRepo) UpdateByKey(ctx context.Context, customerCode, transCd string, weekday time.Weekday, s *entities.ShippingSchedule) error {
	res := r.keyed(ctx, customerCode, transCd, weekday).Model(&entities.ShippingSchedule{}).Updates(map[string]any{
		"cut_off_time": s.CutOffTime,
		"description":  s.Description,
		"updated_by":   s.UpdatedBy,
		"updated_at":   time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *schedRepo) DeleteByKey(ctx context.Context, customerCode, transCd string, weekday time.Weekday) error {
	res := r.keyed(ctx, customerCode, transCd, weekday).Delete(&entities.ShippingSchedule{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *schedRepo) DeleteAllByCustomer(ctx context.Context, customerCode string) (int64, error) {
	res := r.db.WithContext(ctx).Where("customer_code = ?", customerCode).Delete(&entities.ShippingSchedule{})
	return res.RowsAffected, res.Error
}

func (r *schedRepo) keyed(ctx context.Context, customerCode, transCd string, weekday time.Weekday) *gorm.DB {
	return r.db.WithContext(ctx).Where("customer_code = ? AND trans_cd = ? AND weekday = ?", customerCode, transCd, int(weekday))
}
