package repository

import (
	"context"

	"supplyconnect/internal/domain/model"
	repo "supplyconnect/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 仕入先・在庫の条件付きで、新しい順に返す。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if q.SupplierID != "" {
		tx = tx.Where("supplier_id = ?", q.SupplierID)
	}
	// vendor向けは在庫ありだけ
	if q.InStockOnly {
		tx = tx.Where("stock_quantity > ?", 0)
	}
	if q.WithSupplier {
		tx = tx.Preload("Supplier")
	}

	if err := tx.Order("created_at desc").Order("id desc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return model.Product{}, mapError(err)
	}
	return p, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Supplier = nil
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, mapError(err)
	}
	return p, nil
}

// 商品の更新（他の仕入先の商品は0件更新でErrNotFound）
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND supplier_id = ?", p.ID, p.SupplierID).
		Updates(map[string]interface{}{
			"name":           p.Name,
			"description":    p.Description,
			"category":       p.Category,
			"price":          p.Price,
			"unit":           p.Unit,
			"stock_quantity": p.StockQuantity,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除（注文明細は残る）
func (r *ProductGormRepository) Delete(ctx context.Context, id string, supplierID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND supplier_id = ?", id, supplierID).
		Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
