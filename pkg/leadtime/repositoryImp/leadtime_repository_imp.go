package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wms/entities"
	"wms/pkg/leadtime/repository"
)

type leadtimeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LeadtimeRepository { return &leadtimeRepo{db} }

func (r *leadtimeRepo) GetAllByCustomer(ctx context.Context, customerCode string) ([]entities.LeadtimeMaster, error) {
	var out []entities.LeadtimeMaster
	err := r.db.WithContext(ctx).Where("customer_code = ?", customerCode).Order("trans_cd ASC").Find(&out).Error
	return out, err
}

func (r *leadtimeRepo) GetAllByCustomers(ctx context.Context, customerCodes []string) ([]entities.LeadtimeMaster, error) {
	var out []entities.LeadtimeMaster
	if len(customerCodes) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Where("customer_code IN ?", customerCodes).Find(&out).Error
	return out, err
}

func (r *leadtimeRepo) Create(ctx context.Context, lt *entities.LeadtimeMaster) error {
	return r.db.WithContext(ctx).Create(lt).Error
}

func (r *leadtimeRepo) UpdateByKey(ctx context.Context, customerCode, transCd string, lt *entities.LeadtimeMaster) error {
	res := r.db.WithContext(ctx).Model(&entities.LeadtimeMaster{}).
		Where("customer_code = ? AND trans_cd = ?", customerCode, transCd).
		Updates(map[string]any{
			"collect_time_per_pallet": lt.CollectTimePerPallet,
			"prepare_time_per_pallet": lt.PrepareTimePerPallet,
			"loading_time_per_column": lt.LoadingTimePerColumn,
			"updated_by":              lt.UpdatedBy,
			"updated_at":              time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *leadtimeRepo) DeleteByKey(ctx context.Context, customerCode, transCd string) error {
	res := r.db.WithContext(ctx).Where("customer_code = ? AND trans_cd = ?", customerCode, transCd).Delete(&entities.LeadtimeMaster{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *leadtimeRepo) DeleteAllByCustomer(ctx context.Context, customerCode string) (int64, error) {
	res := r.db.WithContext(ctx).Where("customer_code = ?", customerCode).Delete(&entities.LeadtimeMaster{})
	return res.RowsAffected, res.Error
}
