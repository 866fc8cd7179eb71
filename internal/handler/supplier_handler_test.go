package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/repository"
	"supplyconnect/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSupplier_NoSession_RedirectsToLogin(t *testing.T) {
	app := newTestApp(t, configuredConfig())

	rec := app.do(t, http.MethodGet, "/supplier/dashboard", "", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, model.LoginPath, rec.Header().Get("Location"))
}

func TestSupplier_VendorIsRedirected(t *testing.T) {
	app := newTestApp(t, configuredConfig())
	app.signedInAs(model.RoleVendor, "v1")

	rec := app.do(t, http.MethodGet, "/supplier/products", "", "tok")
	assert.Equal(t, http.StatusFound, rec.Code)
	app.client.ProductRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestSupplier_Dashboard(t *testing.T) {
	app := newTestApp(t, configuredConfig())
	app.signedInAs(model.RoleSupplier, "s1")
	app.client.ProductRepo.On("List", mock.Anything, repository.ProductListQuery{SupplierID: "s1"}).
		Return([]model.Product{{ID: "p1", SupplierID: "s1", Name: "Onion"}}, nil).Once()
	app.client.OrderRepo.On("List", mock.Anything, mock.MatchedBy(func(q repository.OrderListQuery) bool {
		return q.SupplierID == "s1" && q.WithVendor && q.WithItems
	})).Return([]model.Order{
		{ID: "o1", SupplierID: "s1", Status: model.OrderStatusPending, CreatedAt: time.Now()},
		{ID: "o2", SupplierID: "s1", Status: model.OrderStatusDelivered, CreatedAt: time.Now()},
	}, nil).Once()

	rec := app.do(t, http.MethodGet, "/supplier/dashboard", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	var out usecase.SupplierDashboard
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, "s1", out.Profile.ID)
	assert.Len(t, out.Products, 1)
	require.Len(t, out.Orders, 2)
	assert.Equal(t, []model.OrderStatus{model.OrderStatusAccepted, model.OrderStatusCancelled}, out.Orders[0].NextStatuses)
	assert.Empty(t, out.Orders[1].NextStatuses)
	assert.Equal(t, 1, out.StatusCounts[model.OrderStatusPending])
	assert.Equal(t, 0, out.StatusCounts[model.OrderStatusAccepted])
}

func TestSupplier_CreateProduct(t *testing.T) {
	app := newTestApp(t, configuredConfig())
	app.signedInAs(model.RoleSupplier, "s1")
	app.client.ProductRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.SupplierID == "s1" && p.Name == "Onion" && p.Price.Equal(decimal.RequireFromString("40.5"))
	})).Return(model.Product{ID: "p1", SupplierID: "s1", Name: "Onion"}, nil).Once()
	app.client.AuditRepo.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionCreateProduct && l.ResourceID == "p1"
	})).Return(nil).Once()

	body := `{"name":"Onion","category":"Vegetables","price":"40.5","unit":"kg","stock_quantity":100}`
	rec := app.do(t, http.MethodPost, "/supplier/products", body, "tok")
	assert.Equal(t, http.StatusCreated, rec.Code)
	app.client.ProductRepo.AssertExpectations(t)
	app.client.AuditRepo.AssertExpectations(t)
}

func TestSupplier_CreateProduct_Invalid(t *testing.T) {
	app := newTestApp(t, configuredConfig())
	app.signedInAs(model.RoleSupplier, "s1")

	body := `{"name":"Onion","category":"Toys","price":"1","unit":"kg","stock_quantity":1}`
	rec := app.do(t, http.MethodPost, "/supplier/products", body, "tok")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	app.client.ProductRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSupplier_DeleteOtherSuppliersProduct_NotFound(t *testing.T) {
	app := newTestApp(t, configuredConfig())
	app.signedInAs(model.RoleSupplier, "s1")
	app.client.ProductRepo.On("FindByID", mock.Anything, "p9").Return(model.Product{ID: "p9", SupplierID: "s2"}, nil).Once()

	rec := app.do(t, http.MethodDelete, "/supplier/products/p9", "", "tok")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, usecase.MsgProductNotFound, decodeError(t, rec).Error)
	app.client.ProductRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestSupplier_DeleteProduct(t *testing.T) {
	app := newTestApp(t, configuredConfig())
	app.signedInAs(model.RoleSupplier, "s1")
	app.client.ProductRepo.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1", SupplierID: "s1"}, nil).Once()
	app.client.ProductRepo.On("Delete", mock.Anything, "p1", "s1").Return(nil).Once()
	app.client.AuditRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	rec := app.do(t, http.MethodDelete, "/supplier/products/p1", "", "tok")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	app.client.ProductRepo.AssertExpectations(t)
}

func TestSupplier_UpdateStatus_UnknownStatus(t *testing.T) {
	app := newTestApp(t, configuredConfig())
	app.signedInAs(model.RoleSupplier, "s1")

	rec := app.do(t, http.MethodPut, "/supplier/orders/o1/status", `{"status":"shipped"}`, "tok")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, usecase.MsgInvalidTransition, decodeError(t, rec).Error)
	app.client.OrderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestSupplier_UpdateStatus_Accept(t *testing.T) {
	app := newTestApp(t, configuredConfig())
	app.signedInAs(model.RoleSupplier, "s1")
	app.client.OrderRepo.On("FindByID", mock.Anything, "o1").
		Return(model.Order{ID: "o1", SupplierID: "s1", Status: model.OrderStatusPending}, nil).Once()
	app.client.OrderRepo.On("UpdateStatus", mock.Anything, "o1", "s1", model.OrderStatusPending, model.OrderStatusAccepted).
		Return(nil).Once()
	app.client.AuditRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	app.client.OrderRepo.On("List", mock.Anything, mock.Anything).
		Return([]model.Order{{ID: "o1", SupplierID: "s1", Status: model.OrderStatusAccepted}}, nil).Once()

	rec := app.do(t, http.MethodPut, "/supplier/orders/o1/status", `{"status":"accepted"}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []usecase.SupplierOrderView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusAccepted, orders[0].Status)
	app.client.OrderRepo.AssertExpectations(t)
}

func TestSupplier_UpdateStatus_Conflict(t *testing.T) {
	app := newTestApp(t, configuredConfig())
	app.signedInAs(model.RoleSupplier, "s1")
	app.client.OrderRepo.On("FindByID", mock.Anything, "o1").
		Return(model.Order{ID: "o1", SupplierID: "s1", Status: model.OrderStatusAccepted}, nil).Once()
	app.client.OrderRepo.On("UpdateStatus", mock.Anything, "o1", "s1", model.OrderStatusAccepted, model.OrderStatusDispatched).
		Return(repository.ErrStatusConflict).Once()

	rec := app.do(t, http.MethodPut, "/supplier/orders/o1/status", `{"status":"dispatched"}`, "tok")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, usecase.MsgStatusChanged, decodeError(t, rec).Error)
}

func TestSupplier_Activity(t *testing.T) {
	app := newTestApp(t, configuredConfig())
	app.signedInAs(model.RoleSupplier, "s1")
	app.client.AuditRepo.On("List", mock.Anything, repository.AuditLogFilter{ActorUserID: "s1", Limit: 200}).
		Return([]model.AuditLog{{ID: 1, ActorUserID: "s1"}}, nil).Once()

	rec := app.do(t, http.MethodGet, "/supplier/activity?limit=1000", "", "tok")
	assert.Equal(t, http.StatusOK, rec.Code)
	app.client.AuditRepo.AssertExpectations(t)

	rec = app.do(t, http.MethodGet, "/supplier/activity?limit=abc", "", "tok")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
