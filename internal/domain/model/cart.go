package model

import "github.com/shopspring/decimal"

// カート明細（DBには保存しない）
// 追加時点の商品スナップショットと数量。
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

func (it CartItem) Subtotal() decimal.Decimal {
	return it.Product.Price.Mul(decimal.NewFromInt(it.Quantity))
}

// セッション内だけのカート
type Cart struct {
	Items []CartItem `json:"items"`
}

// 1個追加する。在庫数を超えない。
// 在庫0の商品は追加しない（falseを返す）。
func (c *Cart) Add(p Product) bool {
	if !p.VisibleToVendors() {
		return false
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			//スナップショットは最新の値で更新
			c.Items[i].Product = p
			if c.Items[i].Quantity+1 > p.StockQuantity {
				c.Items[i].Quantity = p.StockQuantity
				return false
			}
			c.Items[i].Quantity++
			return true
		}
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
	return true
}

// 1個減らす。0になったら明細ごと消す。
func (c *Cart) Remove(productID string) bool {
	for i := range c.Items {
		if c.Items[i].Product.ID != productID {
			continue
		}
		if c.Items[i].Quantity > 1 {
			c.Items[i].Quantity--
			return true
		}
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return true
	}
	return false
}

// 確定済みの明細を数量ぶん差し引く
// 確定中に追加された分は残る。
func (c *Cart) Subtract(placed []CartItem) {
	for _, p := range placed {
		for i := range c.Items {
			if c.Items[i].Product.ID != p.Product.ID {
				continue
			}
			c.Items[i].Quantity -= p.Quantity
			if c.Items[i].Quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			}
			break
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// 仕入先ごとの明細
type SupplierGroup struct {
	SupplierID string
	Items      []CartItem
}

func (g SupplierGroup) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range g.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// 仕入先ごとにまとめる
// グループは最初に出てきた順、グループ内はカートの順。
func (c Cart) GroupBySupplier() []SupplierGroup {
	index := make(map[string]int)
	groups := make([]SupplierGroup, 0)
	for _, it := range c.Items {
		sid := it.Product.SupplierID
		i, ok := index[sid]
		if !ok {
			i = len(groups)
			index[sid] = i
			groups = append(groups, SupplierGroup{SupplierID: sid})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}
