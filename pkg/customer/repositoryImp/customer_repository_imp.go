package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wms/entities"
	"wms/pkg/customer/repository"
)

type customerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CustomerRepository { return &customerRepo{db} }

func (r *customerRepo) GetAll(ctx context.Context) ([]entities.Customer, error) {
	var out []entities.Customer
	return out, r.db.WithContext(ctx).Order("customer_code ASC").Find(&out).Error
}

func (r *customerRepo) GetByCode(ctx context.Context, code string) (*entities.Customer, error) {
	var c entities.Customer
	if err := r.db.WithContext(ctx).Where("customer_code = ?", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) GetByCodes(ctx context.Context, codes []string) (map[string]entities.Customer, error) {
	if len(codes) == 0 {
		return map[string]entities.Customer{}, nil
	}
	var cs []entities.Customer
	if err := r.db.WithContext(ctx).Where("customer_code IN ?", codes).Find(&cs).Error; err != nil {
		return nil, err
	}
	m := make(map[string]entities.Customer, len(cs))
	for i := range cs {
		m[cs[i].CustomerCode] = cs[i]
	}
	return m, nil
}

func (r *customerRepo) Create(ctx context.Context, c *entities.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) UpdateByCode(ctx context.Context, code string, c *entities.Customer) error {
	res := r.db.WithContext(ctx).Model(&entities.Customer{}).Where("customer_code = ?", code).Updates(map[string]any{
		"customer_name": c.CustomerName,
		"descriptions":  c.Descriptions,
		"updated_by":    c.UpdatedBy,
		"updated_at":    time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *customerRepo) DeleteByCode(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).Where("customer_code = ?", code).Delete(&entities.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *customerRepo) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.Customer{})
	return res.RowsAffected, res.Error
}
