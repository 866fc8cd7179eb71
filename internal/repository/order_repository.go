package repository

import (
	"context"

	"supplyconnect/internal/domain/model"
)

type OrderListQuery struct {
	VendorID     string
	SupplierID   string
	Status       model.OrderStatus // 空なら全て
	WithItems    bool              // order_items と products を結合
	WithVendor   bool
	WithSupplier bool
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	//新しい順で返す
	List(ctx context.Context, q OrderListQuery) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (model.Order, error)

	//fromの状態のときだけtoに更新する（違えばErrStatusConflict）
	UpdateStatus(ctx context.Context, orderID string, supplierID string, from model.OrderStatus, to model.OrderStatus) error
}
