package handler

import (
	"net/http"

	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/middleware"
	"supplyconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /vendor のAPI（RoleGuard(vendor)の内側）
type VendorHandler struct {
	uc *usecase.VendorUsecase
}

// DI
func NewVendorHandler(uc *usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

func (h *VendorHandler) RegisterRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	g := e.Group("/vendor", guard)
	g.GET("/dashboard", h.dashboard)
	g.GET("/products", h.products)

	g.GET("/cart", h.cart)
	g.POST("/cart/items", h.addItem)
	g.DELETE("/cart/items/:product_id", h.removeItem)
	g.POST("/checkout", h.checkout)

	g.GET("/orders", h.orders)
}

// カートに1個追加するリクエストボディ
type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// ?search=&category=&city=
func catalogFilter(c echo.Context) model.CatalogFilter {
	return model.CatalogFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		City:     c.QueryParam("city"),
	}
}

// カートはセッション単位
func cartSessionID(c echo.Context) (string, error) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return "", usecase.NewHTTPError(http.StatusUnauthorized, usecase.MsgUnauthorized)
	}
	return s.SessionID, nil
}

func (h *VendorHandler) dashboard(c echo.Context) error {
	p, err := currentProfile(c)
	if err != nil {
		return writeError(c, err)
	}
	sid, err := cartSessionID(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.Dashboard(c.Request().Context(), p, sid, catalogFilter(c)))
}

func (h *VendorHandler) products(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Catalog(c.Request().Context(), catalogFilter(c)))
}

func (h *VendorHandler) cart(c echo.Context) error {
	sid, err := cartSessionID(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.Cart(sid))
}

func (h *VendorHandler) addItem(c echo.Context) error {
	sid, err := cartSessionID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	cart, err := h.uc.AddToCart(c.Request().Context(), sid, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *VendorHandler) removeItem(c echo.Context) error {
	sid, err := cartSessionID(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.RemoveFromCart(sid, c.Param("product_id")))
}

func (h *VendorHandler) checkout(c echo.Context) error {
	p, err := currentProfile(c)
	if err != nil {
		return writeError(c, err)
	}
	sid, err := cartSessionID(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Checkout(c.Request().Context(), p.ID, sid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *VendorHandler) orders(c echo.Context) error {
	p, err := currentProfile(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.ListOrders(c.Request().Context(), p.ID))
}
