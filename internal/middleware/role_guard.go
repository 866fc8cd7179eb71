package middleware

import (
	"net/http"

	"supplyconnect/internal/backend"
	"supplyconnect/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// ログインしていない・ロール違いはどちらもログイン画面へ
// 理由はログにだけ残す。
const (
	denyNoSession      = "no_session"
	denyProfileMissing = "profile_missing"
	denyRoleMismatch   = "role_mismatch"
)

// /vendor, /supplier のグループに付ける
func RoleGuard(client backend.Client, role model.Role, logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := SessionFromContext(c)
			if !ok {
				return deny(c, logger, denyNoSession, "", role)
			}

			profile, err := client.Profiles().FindByID(c.Request().Context(), session.User.ID)
			if err != nil {
				return deny(c, logger, denyProfileMissing, session.User.ID, role)
			}

			if profile.Role != role {
				return deny(c, logger, denyRoleMismatch, session.User.ID, role)
			}

			c.Set(CtxProfileKey, profile)
			return next(c)
		}
	}
}

// ロールは問わずログインだけ必要なルート
func RequireSession(logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := SessionFromContext(c); !ok {
				return deny(c, logger, denyNoSession, "", "")
			}
			return next(c)
		}
	}
}

func deny(c echo.Context, logger *log.Logger, reason string, userID string, required model.Role) error {
	logger.Infoj(log.JSON{
		"event":         "route_denied",
		"reason":        reason,
		"path":          c.Request().URL.Path,
		"user_id":       userID,
		"required_role": string(required),
	})
	return c.Redirect(http.StatusFound, model.LoginPath)
}
