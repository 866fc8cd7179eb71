package middleware

import (
	"supplyconnect/internal/config"

	"github.com/labstack/echo/v4"
)

// 設定が無い間はセットアップ画面以外に進ませない
var configGuardSkip = map[string]bool{
	"/setup":   true,
	"/healthz": true,
}

// onMissingは503でセットアップ案内を返すハンドラ
func ConfigGuard(cfg config.Config, onMissing echo.HandlerFunc) echo.MiddlewareFunc {
	configured := cfg.IsConfigured()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if configured || configGuardSkip[c.Request().URL.Path] {
				return next(c)
			}
			return onMissing(c)
		}
	}
}
