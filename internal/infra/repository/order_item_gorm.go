package repository

import (
	"context"

	"supplyconnect/internal/domain/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]model.OrderItem, len(items))
	for i, it := range items {
		it.OrderID = orderID
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		it.Product = nil
		rows[i] = it
	}
	return mapError(r.db.WithContext(ctx).Create(&rows).Error)
}
