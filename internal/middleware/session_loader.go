package middleware

import (
	"errors"
	"strings"

	"supplyconnect/internal/backend"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// cookieかAuthorization: Bearerからセッションを読み、contextへ入れる
// 無い・無効でもここでは止めない（RoleGuardが判断する）。
func SessionLoader(client backend.Client, logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				return next(c)
			}

			session, err := client.Auth().GetSession(c.Request().Context(), raw)
			if err != nil {
				if !errors.Is(err, backend.ErrInvalidSession) && !backend.IsConfigurationError(err) {
					logger.Errorj(log.JSON{"event": "session_lookup_failed", "path": c.Request().URL.Path, "error": err.Error()})
				}
				return next(c)
			}

			//contextへ保存
			c.Set(CtxSessionKey, session)
			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookieName); err == nil && ck.Value != "" {
		return ck.Value
	}

	//Bearer形式か確認してtokenを抜く
	authz := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
