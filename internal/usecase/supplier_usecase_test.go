package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"supplyconnect/internal/backend/backendmock"
	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/repository"
	"supplyconnect/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSupplierUsecase() (*usecase.SupplierUsecase, *backendmock.Client, *fakeCatalogCache) {
	client := backendmock.NewClient()
	cache := &fakeCatalogCache{}
	client.AuditRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	return usecase.NewSupplierUsecase(client, cache, testLogger()), client, cache
}

func productInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:          "Onion",
		Category:      "Vegetables",
		Price:         decimal.RequireFromString("25.50"),
		Unit:          "kg",
		StockQuantity: 100,
	}
}

func TestSupplierUsecase_CreateProduct_Validation(t *testing.T) {
	uc, client, _ := newSupplierUsecase()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(in *usecase.ProductInput)
		msg    string
	}{
		{"name", func(in *usecase.ProductInput) { in.Name = "  " }, "name required"},
		{"category", func(in *usecase.ProductInput) { in.Category = "Fruit" }, "invalid category"},
		{"unit", func(in *usecase.ProductInput) { in.Unit = "ton" }, "invalid unit"},
		{"price", func(in *usecase.ProductInput) { in.Price = decimal.NewFromInt(-1) }, "price must be >= 0"},
		{"stock", func(in *usecase.ProductInput) { in.StockQuantity = -1 }, "stock must be >= 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := productInput()
			tc.mutate(&in)
			_, err := uc.CreateProduct(ctx, "s1", in)
			assertHTTPError(t, err, http.StatusBadRequest, tc.msg)
		})
	}
	client.ProductRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSupplierUsecase_CreateProduct_Success(t *testing.T) {
	uc, client, cache := newSupplierUsecase()

	client.ProductRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.SupplierID == "s1" && p.Name == "Onion" && p.StockQuantity == 100
	})).Return(model.Product{ID: "p1", SupplierID: "s1", Name: "Onion"}, nil)

	p, err := uc.CreateProduct(context.Background(), "s1", productInput())
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, 1, cache.invalidated)
	client.AuditRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionCreateProduct && l.ResourceID == "p1" && l.ActorUserID == "s1"
	}))
}

func TestSupplierUsecase_CreateProduct_WriteFailure(t *testing.T) {
	uc, client, cache := newSupplierUsecase()
	client.ProductRepo.On("Create", mock.Anything, mock.Anything).Return(model.Product{}, errors.New("db down"))

	_, err := uc.CreateProduct(context.Background(), "s1", productInput())
	assertHTTPError(t, err, http.StatusInternalServerError, usecase.MsgSaveProductFailed)
	assert.Equal(t, 0, cache.invalidated)
}

func TestSupplierUsecase_UpdateProduct_OtherSupplier(t *testing.T) {
	uc, client, _ := newSupplierUsecase()
	client.ProductRepo.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1", SupplierID: "s2"}, nil)

	_, err := uc.UpdateProduct(context.Background(), "s1", "p1", productInput())
	assertHTTPError(t, err, http.StatusNotFound, usecase.MsgProductNotFound)
	client.ProductRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSupplierUsecase_UpdateProduct_Success(t *testing.T) {
	uc, client, cache := newSupplierUsecase()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := created.Add(time.Hour)
	client.ProductRepo.On("FindByID", mock.Anything, "p1").
		Return(model.Product{ID: "p1", SupplierID: "s1", CreatedAt: created, UpdatedAt: created}, nil).Once()
	client.ProductRepo.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == "p1" && p.SupplierID == "s1" && p.Price.Equal(decimal.RequireFromString("25.5"))
	})).Return(nil)
	client.ProductRepo.On("FindByID", mock.Anything, "p1").
		Return(model.Product{ID: "p1", SupplierID: "s1", Name: "Onion", CreatedAt: created, UpdatedAt: updated}, nil).Once()

	p, err := uc.UpdateProduct(context.Background(), "s1", "p1", productInput())
	require.NoError(t, err)
	assert.Equal(t, "Onion", p.Name)
	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, updated, p.UpdatedAt)
	assert.Equal(t, 1, cache.invalidated)
}

func TestSupplierUsecase_UpdateProduct_RereadFailureStillStamps(t *testing.T) {
	uc, client, _ := newSupplierUsecase()
	client.ProductRepo.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1", SupplierID: "s1"}, nil).Once()
	client.ProductRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	client.ProductRepo.On("FindByID", mock.Anything, "p1").Return(model.Product{}, errors.New("db down")).Once()

	before := time.Now()
	p, err := uc.UpdateProduct(context.Background(), "s1", "p1", productInput())
	require.NoError(t, err)
	assert.Equal(t, "Onion", p.Name)
	assert.False(t, p.UpdatedAt.Before(before))
}

func TestSupplierUsecase_DeleteProduct(t *testing.T) {
	uc, client, cache := newSupplierUsecase()
	client.ProductRepo.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1", SupplierID: "s1"}, nil)
	client.ProductRepo.On("Delete", mock.Anything, "p1", "s1").Return(nil)

	require.NoError(t, uc.DeleteProduct(context.Background(), "s1", "p1"))
	assert.Equal(t, 1, cache.invalidated)
}

func TestSupplierUsecase_DeleteProduct_Failure(t *testing.T) {
	uc, client, _ := newSupplierUsecase()
	client.ProductRepo.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1", SupplierID: "s1"}, nil)
	client.ProductRepo.On("Delete", mock.Anything, "p1", "s1").Return(errors.New("db down"))

	err := uc.DeleteProduct(context.Background(), "s1", "p1")
	assertHTTPError(t, err, http.StatusInternalServerError, usecase.MsgDeleteProductFailed)
}

func TestSupplierUsecase_ListProducts_ReadErrorIsEmpty(t *testing.T) {
	uc, client, _ := newSupplierUsecase()
	client.ProductRepo.On("List", mock.Anything, repository.ProductListQuery{SupplierID: "s1"}).
		Return(nil, errors.New("db down"))

	products := uc.ListProducts(context.Background(), "s1")
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func supplierOrdersQuery() repository.OrderListQuery {
	return repository.OrderListQuery{SupplierID: "s1", WithItems: true, WithVendor: true}
}

func TestSupplierUsecase_UpdateOrderStatus_Success(t *testing.T) {
	uc, client, _ := newSupplierUsecase()
	ctx := context.Background()

	client.OrderRepo.On("FindByID", mock.Anything, "o1").
		Return(model.Order{ID: "o1", SupplierID: "s1", Status: model.OrderStatusPending}, nil)
	client.OrderRepo.On("UpdateStatus", mock.Anything, "o1", "s1", model.OrderStatusPending, model.OrderStatusAccepted).
		Return(nil)
	client.OrderRepo.On("List", mock.Anything, supplierOrdersQuery()).Return([]model.Order{
		{
			ID: "o1", SupplierID: "s1", Status: model.OrderStatusAccepted,
			Vendor: &model.Profile{FullName: "Ravi", Phone: "555", Address: "MG Road"},
			Items: []model.OrderItem{
				{ProductID: "p1", Quantity: 2, Price: decimal.NewFromInt(10), Product: &model.Product{Name: "Onion", Unit: model.UnitKg}},
				{ProductID: "p2", Quantity: 1, Price: decimal.NewFromInt(5)},
			},
		},
	}, nil)

	orders, err := uc.UpdateOrderStatus(ctx, "s1", "o1", "accepted")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, model.OrderStatusAccepted, o.Status)
	assert.Equal(t, []model.OrderStatus{model.OrderStatusDispatched}, o.NextStatuses)
	assert.Equal(t, "Ravi", o.VendorName)
	assert.Equal(t, "MG Road", o.VendorAddress)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Onion", o.Items[0].ProductName)
	assert.True(t, o.Items[0].Subtotal.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, usecase.DeletedProductName, o.Items[1].ProductName)
}

func TestSupplierUsecase_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	uc, client, _ := newSupplierUsecase()
	ctx := context.Background()

	client.OrderRepo.On("FindByID", mock.Anything, "o1").
		Return(model.Order{ID: "o1", SupplierID: "s1", Status: model.OrderStatusPending}, nil)

	_, err := uc.UpdateOrderStatus(ctx, "s1", "o1", "delivered")
	assertHTTPError(t, err, http.StatusBadRequest, usecase.MsgInvalidTransition)

	_, err = uc.UpdateOrderStatus(ctx, "s1", "o1", "shipped")
	assertHTTPError(t, err, http.StatusBadRequest, usecase.MsgInvalidTransition)

	client.OrderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSupplierUsecase_UpdateOrderStatus_TerminalAndForeign(t *testing.T) {
	uc, client, _ := newSupplierUsecase()
	ctx := context.Background()

	client.OrderRepo.On("FindByID", mock.Anything, "done").
		Return(model.Order{ID: "done", SupplierID: "s1", Status: model.OrderStatusDelivered}, nil)
	client.OrderRepo.On("FindByID", mock.Anything, "other").
		Return(model.Order{ID: "other", SupplierID: "s2", Status: model.OrderStatusPending}, nil)

	_, err := uc.UpdateOrderStatus(ctx, "s1", "done", "cancelled")
	assertHTTPError(t, err, http.StatusBadRequest, usecase.MsgInvalidTransition)

	_, err = uc.UpdateOrderStatus(ctx, "s1", "other", "accepted")
	assertHTTPError(t, err, http.StatusNotFound, usecase.MsgOrderNotFound)
}

func TestSupplierUsecase_UpdateOrderStatus_Conflict(t *testing.T) {
	uc, client, _ := newSupplierUsecase()
	client.OrderRepo.On("FindByID", mock.Anything, "o1").
		Return(model.Order{ID: "o1", SupplierID: "s1", Status: model.OrderStatusPending}, nil)
	client.OrderRepo.On("UpdateStatus", mock.Anything, "o1", "s1", model.OrderStatusPending, model.OrderStatusCancelled).
		Return(repository.ErrStatusConflict)

	_, err := uc.UpdateOrderStatus(context.Background(), "s1", "o1", "cancelled")
	assertHTTPError(t, err, http.StatusConflict, usecase.MsgStatusChanged)
}

func TestSupplierUsecase_UpdateOrderStatus_WriteFailure(t *testing.T) {
	uc, client, _ := newSupplierUsecase()
	client.OrderRepo.On("FindByID", mock.Anything, "o1").
		Return(model.Order{ID: "o1", SupplierID: "s1", Status: model.OrderStatusAccepted}, nil)
	client.OrderRepo.On("UpdateStatus", mock.Anything, "o1", "s1", model.OrderStatusAccepted, model.OrderStatusDispatched).
		Return(errors.New("db down"))

	_, err := uc.UpdateOrderStatus(context.Background(), "s1", "o1", "dispatched")
	assertHTTPError(t, err, http.StatusInternalServerError, usecase.MsgUpdateStatusFailed)
}

func TestSupplierUsecase_Dashboard_Counts(t *testing.T) {
	uc, client, _ := newSupplierUsecase()
	client.ProductRepo.On("List", mock.Anything, repository.ProductListQuery{SupplierID: "s1"}).
		Return([]model.Product{{ID: "p1"}}, nil)
	client.OrderRepo.On("List", mock.Anything, supplierOrdersQuery()).Return([]model.Order{
		{ID: "o1", Status: model.OrderStatusPending},
		{ID: "o2", Status: model.OrderStatusPending},
		{ID: "o3", Status: model.OrderStatusDelivered},
	}, nil)

	d := uc.Dashboard(context.Background(), model.Profile{ID: "s1", Role: model.RoleSupplier})
	assert.Len(t, d.Products, 1)
	assert.Len(t, d.Orders, 3)
	assert.Equal(t, 2, d.StatusCounts[model.OrderStatusPending])
	assert.Equal(t, 1, d.StatusCounts[model.OrderStatusDelivered])
	assert.Equal(t, 0, d.StatusCounts[model.OrderStatusCancelled])
	assert.Empty(t, d.Orders[2].NextStatuses)
}

func TestSupplierUsecase_Activity(t *testing.T) {
	uc, client, _ := newSupplierUsecase()
	client.AuditRepo.On("List", mock.Anything, repository.AuditLogFilter{ActorUserID: "s1", Limit: 20}).
		Return([]model.AuditLog{{ID: 1, Action: model.AuditActionCreateProduct}}, nil)

	logs := uc.Activity(context.Background(), "s1", 20)
	require.Len(t, logs, 1)
	assert.Equal(t, model.AuditActionCreateProduct, logs[0].Action)
}
