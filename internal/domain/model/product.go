package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryVegetables Category = "Vegetables"
	CategorySpices     Category = "Spices"
	CategoryOil        Category = "Oil"
	CategoryGrains     Category = "Grains"
	CategoryDairy      Category = "Dairy"
	CategoryMeat       Category = "Meat"
	CategoryOther      Category = "Other"
)

// 画面の選択肢と同じ並び
var Categories = []Category{
	CategoryVegetables,
	CategorySpices,
	CategoryOil,
	CategoryGrains,
	CategoryDairy,
	CategoryMeat,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Unit string

const (
	UnitKg     Unit = "kg"
	UnitLiter  Unit = "liter"
	UnitPiece  Unit = "piece"
	UnitPacket Unit = "packet"
	UnitBox    Unit = "box"
	UnitDozen  Unit = "dozen"
)

var Units = []Unit{UnitKg, UnitLiter, UnitPiece, UnitPacket, UnitBox, UnitDozen}

func (u Unit) Valid() bool {
	for _, v := range Units {
		if v == u {
			return true
		}
	}
	return false
}

// 仕入先が出品する商品
type Product struct {
	ID            string          `gorm:"type:uuid;primaryKey" json:"id"`
	SupplierID    string          `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Category      Category        `gorm:"type:varchar(30);not null;index" json:"category"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null;check:price >= 0" json:"price"`
	Unit          Unit            `gorm:"type:varchar(20);not null" json:"unit"`
	StockQuantity int64           `gorm:"not null;default:0;check:stock_quantity >= 0" json:"stock_quantity"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`

	//profiles との結合（select時のみ）
	Supplier *Profile `gorm:"foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`
}

// 在庫が1以上のときだけvendorに見せる
func (p Product) VisibleToVendors() bool {
	return p.StockQuantity > 0
}
