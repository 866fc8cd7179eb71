package handler

import (
	"net/http"
	"strconv"

	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/middleware"
	"supplyconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// /supplier のAPI（RoleGuard(supplier)の内側）
type SupplierHandler struct {
	uc *usecase.SupplierUsecase
}

// DI
func NewSupplierHandler(uc *usecase.SupplierUsecase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

func (h *SupplierHandler) RegisterRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	g := e.Group("/supplier", guard)
	g.GET("/dashboard", h.dashboard)

	g.GET("/products", h.listProducts)
	g.POST("/products", h.createProduct)
	g.PUT("/products/:id", h.updateProduct)
	g.DELETE("/products/:id", h.deleteProduct)

	g.GET("/orders", h.listOrders)
	g.PUT("/orders/:id/status", h.updateOrderStatus)

	g.GET("/activity", h.activity)
}

// ステータス変更のリクエストボディ
type statusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

// RoleGuardが入れたprofile
func currentProfile(c echo.Context) (model.Profile, error) {
	p, ok := middleware.ProfileFromContext(c)
	if !ok {
		return model.Profile{}, usecase.NewHTTPError(http.StatusUnauthorized, usecase.MsgUnauthorized)
	}
	return p, nil
}

func (h *SupplierHandler) dashboard(c echo.Context) error {
	p, err := currentProfile(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.Dashboard(c.Request().Context(), p))
}

func (h *SupplierHandler) listProducts(c echo.Context) error {
	p, err := currentProfile(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.ListProducts(c.Request().Context(), p.ID))
}

func (h *SupplierHandler) createProduct(c echo.Context) error {
	p, err := currentProfile(c)
	if err != nil {
		return writeError(c, err)
	}

	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return writeError(c, err)
	}

	created, err := h.uc.CreateProduct(c.Request().Context(), p.ID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *SupplierHandler) updateProduct(c echo.Context) error {
	p, err := currentProfile(c)
	if err != nil {
		return writeError(c, err)
	}

	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return writeError(c, err)
	}

	updated, err := h.uc.UpdateProduct(c.Request().Context(), p.ID, c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *SupplierHandler) deleteProduct(c echo.Context) error {
	p, err := currentProfile(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), p.ID, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SupplierHandler) listOrders(c echo.Context) error {
	p, err := currentProfile(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.ListOrders(c.Request().Context(), p.ID))
}

// 更新後の注文一覧を返す
func (h *SupplierHandler) updateOrderStatus(c echo.Context) error {
	p, err := currentProfile(c)
	if err != nil {
		return writeError(c, err)
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	orders, err := h.uc.UpdateOrderStatus(c.Request().Context(), p.ID, c.Param("id"), req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *SupplierHandler) activity(c echo.Context) error {
	p, err := currentProfile(c)
	if err != nil {
		return writeError(c, err)
	}

	// limit（default 50、最大200）
	limit := defaultActivityLimit
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	return c.JSON(http.StatusOK, h.uc.Activity(c.Request().Context(), p.ID, limit))
}
