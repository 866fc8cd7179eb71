package model_test

import (
	"testing"

	"supplyconnect/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func catalogFixture() []model.CatalogEntry {
	return []model.CatalogEntry{
		{ID: "1", Name: "Red Onion", Category: model.CategoryVegetables, SupplierName: "Ravi Traders", SupplierCity: "Mumbai"},
		{ID: "2", Name: "Turmeric", Category: model.CategorySpices, SupplierName: "Spice House", SupplierCity: "Delhi"},
		{ID: "3", Name: "Mustard Oil", Category: model.CategoryOil, SupplierName: "Ravi Traders", SupplierCity: "Mumbai"},
		{ID: "4", Name: "Paneer", Category: model.CategoryDairy, SupplierName: "Onion King", SupplierCity: "Pune"},
	}
}

func ids(entries []model.CatalogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestCatalogFilter_SearchMatchesNameOrSupplier(t *testing.T) {
	got := model.CatalogFilter{Search: "ONION"}.Apply(catalogFixture())
	assert.Equal(t, []string{"1", "4"}, ids(got))
}

func TestCatalogFilter_CategoryAndCity(t *testing.T) {
	entries := catalogFixture()

	assert.Equal(t, []string{"2"}, ids(model.CatalogFilter{Category: "Spices", City: "all"}.Apply(entries)))
	assert.Equal(t, []string{"1", "3"}, ids(model.CatalogFilter{Category: "all", City: "Mumbai"}.Apply(entries)))
	assert.Equal(t, []string{"3"}, ids(model.CatalogFilter{Search: "ravi", Category: "Oil", City: "Mumbai"}.Apply(entries)))
	assert.Empty(t, model.CatalogFilter{Category: "Meat"}.Apply(entries))
}

func TestCatalogFilter_EmptyFilterKeepsAll(t *testing.T) {
	assert.Len(t, model.CatalogFilter{}.Apply(catalogFixture()), 4)
}

func TestCatalogFilter_Idempotent(t *testing.T) {
	filters := []model.CatalogFilter{
		{},
		{Search: "oil"},
		{Category: "Vegetables", City: "Mumbai"},
		{Search: "ravi", City: "Delhi"},
	}

	for _, f := range filters {
		once := f.Apply(catalogFixture())
		twice := f.Apply(once)
		assert.Equal(t, ids(once), ids(twice))
	}
}

func TestNewCatalogEntry_DefaultRating(t *testing.T) {
	e := model.NewCatalogEntry(model.Product{ID: "p", Supplier: &model.Profile{FullName: "A", City: "Pune"}})
	assert.Equal(t, model.DefaultRating, e.SupplierRating)
	assert.Equal(t, "Pune", e.SupplierCity)

	r := 3.8
	e = model.NewCatalogEntry(model.Product{ID: "p", Supplier: &model.Profile{Rating: &r}})
	assert.Equal(t, 3.8, e.SupplierRating)
}
