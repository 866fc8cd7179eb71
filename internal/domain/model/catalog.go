package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// 絞り込みで「すべて」を表す値
const FilterAll = "all"

// vendor向け一覧の1行（商品 + 仕入先情報）
type CatalogEntry struct {
	ID             string          `json:"id"`
	SupplierID     string          `json:"supplier_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       Category        `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Unit           Unit            `json:"unit"`
	StockQuantity  int64           `json:"stock_quantity"`
	SupplierName   string          `json:"supplier_name"`
	SupplierCity   string          `json:"supplier_city"`
	SupplierRating float64         `json:"supplier_rating"`
}

func NewCatalogEntry(p Product) CatalogEntry {
	e := CatalogEntry{
		ID:             p.ID,
		SupplierID:     p.SupplierID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Price:          p.Price,
		Unit:           p.Unit,
		StockQuantity:  p.StockQuantity,
		SupplierRating: DefaultRating,
	}
	if p.Supplier != nil {
		e.SupplierName = p.Supplier.FullName
		e.SupplierCity = p.Supplier.City
		e.SupplierRating = p.Supplier.EffectiveRating()
	}
	return e
}

// 検索・カテゴリ・都市の絞り込み（AND）
type CatalogFilter struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	City     string `json:"city"`
}

func (f CatalogFilter) Apply(entries []CatalogEntry) []CatalogEntry {
	search := strings.ToLower(f.Search)
	out := make([]CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(strings.ToLower(e.SupplierName), search) {
			continue
		}
		if !isWildcard(f.Category) && string(e.Category) != f.Category {
			continue
		}
		if !isWildcard(f.City) && e.SupplierCity != f.City {
			continue
		}
		out = append(out, e)
	}
	return out
}

func isWildcard(v string) bool {
	return v == "" || v == FilterAll
}
