package usecase

import (
	"time"

	"supplyconnect/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 商品が削除済みの明細に出す名前
const DeletedProductName = "Deleted product"

type OrderItemView struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Unit        model.Unit      `json:"unit"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// 仕入先の注文一覧の1行（注文者の連絡先つき）
type SupplierOrderView struct {
	ID                 string              `json:"id"`
	Status             model.OrderStatus   `json:"status"`
	TotalAmount        decimal.Decimal     `json:"total_amount"`
	CreatedAt          time.Time           `json:"created_at"`
	VendorName         string              `json:"vendor_name"`
	VendorBusinessName string              `json:"vendor_business_name"`
	VendorPhone        string              `json:"vendor_phone"`
	VendorAddress      string              `json:"vendor_address"`
	Items              []OrderItemView     `json:"items"`
	NextStatuses       []model.OrderStatus `json:"next_statuses"`
}

// vendorの注文一覧の1行
// next_statusesは常に空（vendorは閲覧のみ）。
type VendorOrderView struct {
	ID           string              `json:"id"`
	Status       model.OrderStatus   `json:"status"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	CreatedAt    time.Time           `json:"created_at"`
	SupplierName string              `json:"supplier_name"`
	SupplierCity string              `json:"supplier_city"`
	Items        []OrderItemView     `json:"items"`
	NextStatuses []model.OrderStatus `json:"next_statuses"`
}

type CartView struct {
	Items     []model.CartItem `json:"items"`
	ItemCount int64            `json:"item_count"`
	Total     decimal.Decimal  `json:"total"`
}

func toOrderItemViews(items []model.OrderItem) []OrderItemView {
	out := make([]OrderItemView, 0, len(items))
	for _, it := range items {
		v := OrderItemView{
			ProductID:   it.ProductID,
			ProductName: DeletedProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Subtotal:    it.Subtotal(),
		}
		if it.Product != nil {
			v.ProductName = it.Product.Name
			v.Unit = it.Product.Unit
		}
		out = append(out, v)
	}
	return out
}

func toSupplierOrderView(o model.Order) SupplierOrderView {
	v := SupplierOrderView{
		ID:           o.ID,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		CreatedAt:    o.CreatedAt,
		Items:        toOrderItemViews(o.Items),
		NextStatuses: model.NextStatuses(model.RoleSupplier, o.Status),
	}
	if o.Vendor != nil {
		v.VendorName = o.Vendor.FullName
		v.VendorBusinessName = o.Vendor.BusinessName
		v.VendorPhone = o.Vendor.Phone
		v.VendorAddress = o.Vendor.Address
	}
	return v
}

func toVendorOrderView(o model.Order) VendorOrderView {
	v := VendorOrderView{
		ID:           o.ID,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		CreatedAt:    o.CreatedAt,
		Items:        toOrderItemViews(o.Items),
		NextStatuses: model.NextStatuses(model.RoleVendor, o.Status),
	}
	if o.Supplier != nil {
		v.SupplierName = o.Supplier.FullName
		v.SupplierCity = o.Supplier.City
	}
	return v
}

func toCartView(c model.Cart) CartView {
	items := c.Items
	if items == nil {
		items = []model.CartItem{}
	}
	var count int64
	for _, it := range items {
		count += it.Quantity
	}
	return CartView{Items: items, ItemCount: count, Total: c.Total()}
}
