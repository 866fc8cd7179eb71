package repository

import (
	"context"

	"supplyconnect/internal/domain/model"
	repo "supplyconnect/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error; err != nil {
		return model.Order{}, mapError(err)
	}
	return o, nil
}

func (r *OrderGormRepository) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, error) {
	tx := r.db.WithContext(ctx).Model(&model.Order{})

	if q.VendorID != "" {
		tx = tx.Where("vendor_id = ?", q.VendorID)
	}
	if q.SupplierID != "" {
		tx = tx.Where("supplier_id = ?", q.SupplierID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	//関連の読み込み
	if q.WithItems {
		tx = tx.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc").Order("id asc")
		}).Preload("Items.Product")
	}
	if q.WithVendor {
		tx = tx.Preload("Vendor")
	}
	if q.WithSupplier {
		tx = tx.Preload("Supplier")
	}

	var items []model.Order
	if err := tx.Order("created_at desc").Order("id desc").Find(&items).Error; err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	//明細はOrderItemsで別に入れる
	items := order.Items
	order.Items = nil
	order.Vendor = nil
	order.Supplier = nil
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return model.Order{}, mapError(err)
	}
	order.Items = items
	return order, nil
}

// 状態が変わっていないときだけ更新する
func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID string, supplierID string, from model.OrderStatus, to model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND supplier_id = ? AND status = ?", orderID, supplierID, from).
		Update("status", to)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrStatusConflict
	}
	return nil
}
