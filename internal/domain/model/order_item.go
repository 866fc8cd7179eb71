package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細
// 価格は注文時点の値をコピーして持つ。
type OrderItem struct {
	ID        string          `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   string          `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID string          `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int64           `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
}

func (it OrderItem) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(it.Quantity))
}
