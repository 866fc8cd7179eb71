package repository

import (
	"context"

	"supplyconnect/internal/domain/model"
)

// 一覧検索
type ProductListQuery struct {
	SupplierID   string // 空なら全仕入先
	InStockOnly  bool   // stock_quantity > 0 のみ
	WithSupplier bool   // profilesを結合する
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	//新しい順で返す
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	//SupplierIDが一致する行だけ更新する
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id string, supplierID string) error
}
