package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"supplyconnect/internal/backend"
	"supplyconnect/internal/cartstore"
	"supplyconnect/internal/config"
	"supplyconnect/internal/handler"
	"supplyconnect/internal/infra/cache"
	"supplyconnect/internal/infra/mail"
	"supplyconnect/internal/middleware"
	"supplyconnect/internal/server"
	"supplyconnect/internal/usecase"
	"supplyconnect/internal/validator"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
)

func main() {
	//.envは任意（無ければ環境変数だけ）
	_ = godotenv.Load()

	logger := log.New("supplyconnect")
	logger.SetHeader(`{"time":"${time_rfc3339}","level":"${level}"}`)
	logger.SetLevel(log.INFO)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalj(log.JSON{"event": "config_load_failed", "error": err.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//DB接続（設定が無ければ未設定クライアント）
	client, err := backend.NewClient(cfg, backend.Deps{Migrate: true, Logger: logger})
	if err != nil {
		logger.Fatalj(log.JSON{"event": "backend_connect_failed", "error": err.Error()})
	}
	if !client.Configured() {
		logger.Warnj(log.JSON{"event": "backend_not_configured", "missing": cfg.MissingSettings()})
	}

	//Redis（任意）
	var rdb *redis.Client
	var counter middleware.RateCounter
	if cfg.RedisURL != "" {
		rdb, err = cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warnj(log.JSON{"event": "redis_unavailable", "error": err.Error()})
			rdb = nil
		} else {
			defer rdb.Close()
			counter = cache.NewRateCounter(rdb)
		}
	}
	catalogCache := cache.NewCatalogCache(rdb)

	//メール（SMTPが無ければログに出すだけ）
	var sender mail.Sender = mail.NewLogMailer(logger)
	if cfg.SMTPEnabled() {
		sender = mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		})
	}
	confirmations := mail.NewConfirmationSender(sender, cfg.SiteURL)

	carts := cartstore.New()
	v := validator.New()

	//Usecase生成
	authUC := usecase.NewAuthUsecase(client, validator.NewAuthValidator(v), confirmations, carts, catalogCache, logger)
	supplierUC := usecase.NewSupplierUsecase(client, catalogCache, logger)
	vendorUC := usecase.NewVendorUsecase(client, carts, catalogCache, logger)

	//Handler生成
	handlers := server.Handlers{
		Setup:    handler.NewSetupHandler(cfg),
		Auth:     handler.NewAuthHandler(authUC, cfg.CookieSecure),
		Supplier: handler.NewSupplierHandler(supplierUC),
		Vendor:   handler.NewVendorHandler(vendorUC),
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger = logger
	e.Validator = v
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, rv echomw.RequestLoggerValues) error {
			entry := log.JSON{
				"event":      "request",
				"method":     rv.Method,
				"uri":        rv.URI,
				"status":     rv.Status,
				"latency_ms": rv.Latency.Milliseconds(),
			}
			if rv.Error != nil {
				entry["error"] = rv.Error.Error()
			}
			logger.Infoj(entry)
			return nil
		},
	}))

	server.RegisterRoutes(e, cfg, client, handlers, counter, logger)

	//Server起動
	if err := server.Start(ctx, e, cfg.Addr(), logger); err != nil {
		logger.Fatalj(log.JSON{"event": "server_failed", "error": err.Error()})
	}
}
