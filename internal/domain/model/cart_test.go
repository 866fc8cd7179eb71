package model_test

import (
	"testing"

	"supplyconnect/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, supplierID string, price int64, stock int64) model.Product {
	return model.Product{
		ID:            id,
		SupplierID:    supplierID,
		Name:          id,
		Price:         decimal.NewFromInt(price),
		StockQuantity: stock,
	}
}

func TestCart_AddCapsAtStock(t *testing.T) {
	var c model.Cart
	p := product("onion", "sup-a", 10, 2)

	assert.True(t, c.Add(p))
	assert.True(t, c.Add(p))
	assert.False(t, c.Add(p))

	require.Len(t, c.Items, 1)
	assert.Equal(t, int64(2), c.Items[0].Quantity)
}

func TestCart_AddOutOfStock(t *testing.T) {
	var c model.Cart

	assert.False(t, c.Add(product("salt", "sup-a", 5, 0)))
	assert.True(t, c.Empty())
}

func TestCart_RemoveDecrementsThenDrops(t *testing.T) {
	var c model.Cart
	p := product("oil", "sup-a", 100, 5)
	c.Add(p)
	c.Add(p)

	assert.True(t, c.Remove("oil"))
	assert.Equal(t, int64(1), c.Items[0].Quantity)

	assert.True(t, c.Remove("oil"))
	assert.True(t, c.Empty())

	assert.False(t, c.Remove("oil"))
}

func TestCart_GroupBySupplier(t *testing.T) {
	var c model.Cart
	x := product("x", "sup-a", 10, 10)
	y := product("y", "sup-b", 50, 10)
	z := product("z", "sup-a", 3, 10)

	c.Add(x)
	c.Add(x)
	c.Add(y)
	c.Add(z)

	groups := c.GroupBySupplier()
	require.Len(t, groups, 2)

	assert.Equal(t, "sup-a", groups[0].SupplierID)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "x", groups[0].Items[0].Product.ID)
	assert.Equal(t, "z", groups[0].Items[1].Product.ID)
	assert.True(t, decimal.NewFromInt(23).Equal(groups[0].Total()))

	assert.Equal(t, "sup-b", groups[1].SupplierID)
	assert.True(t, decimal.NewFromInt(50).Equal(groups[1].Total()))

	assert.True(t, decimal.NewFromInt(73).Equal(c.Total()))
}

func TestCart_GroupBySupplier_Empty(t *testing.T) {
	var c model.Cart
	assert.Empty(t, c.GroupBySupplier())
}
