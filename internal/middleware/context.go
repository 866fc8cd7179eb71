package middleware

import (
	"supplyconnect/internal/backend"
	"supplyconnect/internal/domain/model"

	"github.com/labstack/echo/v4"
)

const (
	CtxSessionKey = "session" // *backend.Session
	CtxProfileKey = "profile" // model.Profile

	// セッションを入れるcookie
	SessionCookieName = "session"
)

func SessionFromContext(c echo.Context) (*backend.Session, bool) {
	s, ok := c.Get(CtxSessionKey).(*backend.Session)
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}

func ProfileFromContext(c echo.Context) (model.Profile, bool) {
	p, ok := c.Get(CtxProfileKey).(model.Profile)
	return p, ok
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
