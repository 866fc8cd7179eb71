package server

import (
	"supplyconnect/internal/backend"
	"supplyconnect/internal/config"
	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/handler"
	"supplyconnect/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type Handlers struct {
	Setup    *handler.SetupHandler
	Auth     *handler.AuthHandler
	Supplier *handler.SupplierHandler
	Vendor   *handler.VendorHandler
}

// counterはnil可（Redisなし）
func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	client backend.Client,
	h Handlers,
	counter middleware.RateCounter,
	logger *log.Logger,
) {
	//設定チェック → セッション読み込みの順
	e.Use(middleware.ConfigGuard(cfg, h.Setup.Blocked))
	e.Use(middleware.SessionLoader(client, logger))

	h.Setup.RegisterRoutes(e)

	limiter := middleware.RateLimiter(counter, middleware.RateLimitCount, middleware.RateLimitWindow, logger)
	h.Auth.RegisterRoutes(e, limiter, middleware.RequireSession(logger))

	h.Supplier.RegisterRoutes(e, middleware.RoleGuard(client, model.RoleSupplier, logger))
	h.Vendor.RegisterRoutes(e, middleware.RoleGuard(client, model.RoleVendor, logger))
}
