package repositoryImp

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wms/entities"
	"wms/pkg/order/repository"
)

type detailRepo struct{ db *gorm.DB }

func NewDetail(db *gorm.DB) repository.OrderDetailRepository { return &detailRepo{db} }

func (r *detailRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entities.OrderDetail, error) {
	var out []entities.OrderDetail
	err := r.db.WithContext(ctx).
		Preload("ShoppingLists", func(tx *gorm.DB) *gorm.DB { return tx.Order("pallet_no ASC") }).
		Where("oid = ?", orderID).
		Order("part_no ASC").
		Find(&out).Error
	return out, err
}
