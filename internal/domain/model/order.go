package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusAccepted   OrderStatus = "accepted"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAccepted,
	OrderStatusDispatched,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// supplierが押せる次のステータス
var supplierTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusAccepted:   {OrderStatusDispatched},
	OrderStatusDispatched: {OrderStatusDelivered},
}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// roleが現在のステータスから選べる遷移先
// vendorは常に空（閲覧のみ）。
func NextStatuses(role Role, from OrderStatus) []OrderStatus {
	if role != RoleSupplier {
		return []OrderStatus{}
	}
	next, ok := supplierTransitions[from]
	if !ok {
		return []OrderStatus{}
	}
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

func CanTransition(role Role, from, to OrderStatus) bool {
	for _, s := range NextStatuses(role, from) {
		if s == to {
			return true
		}
	}
	return false
}

// 1注文 = 1仕入先
type Order struct {
	ID          string          `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID    string          `gorm:"type:uuid;not null;index" json:"vendor_id"`
	SupplierID  string          `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;index;check:status IN ('pending','accepted','dispatched','delivered','cancelled')" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Vendor   *Profile    `gorm:"foreignKey:VendorID;references:ID" json:"vendor,omitempty"`
	Supplier *Profile    `gorm:"foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`
}
