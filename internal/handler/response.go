package handler

import (
	"errors"
	"net/http"

	"supplyconnect/internal/backend"
	"supplyconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	//設定不足はセットアップ案内
	var cfgErr *backend.ConfigurationError
	if errors.As(err, &cfgErr) {
		return c.JSON(http.StatusServiceUnavailable, NewSetupView(cfgErr.Missing))
	}

	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//Bindの失敗
	var ee *echo.HTTPError
	if errors.As(err, &ee) && ee.Code < http.StatusInternalServerError {
		return c.JSON(ee.Code, ErrorResponse{Error: "invalid request"})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
