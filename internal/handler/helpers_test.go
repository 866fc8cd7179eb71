package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"supplyconnect/internal/backend"
	"supplyconnect/internal/backend/backendmock"
	"supplyconnect/internal/cartstore"
	"supplyconnect/internal/config"
	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/handler"
	"supplyconnect/internal/infra/cache"
	"supplyconnect/internal/infra/mail"
	"supplyconnect/internal/middleware"
	"supplyconnect/internal/server"
	"supplyconnect/internal/usecase"
	"supplyconnect/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/mock"
)

// =====================
// テスト用のアプリ一式
// =====================

type testApp struct {
	e      *echo.Echo
	client *backendmock.Client
	carts  *cartstore.Store
}

func testLogger() *log.Logger {
	l := log.New("test")
	l.SetOutput(io.Discard)
	return l
}

func configuredConfig() config.Config {
	return config.Config{ServiceURL: "postgres://localhost/app", ServiceAPIKey: "secret"}
}

func newTestApp(t *testing.T, cfg config.Config) *testApp {
	t.Helper()

	client := backendmock.NewClient()
	carts := cartstore.New()
	logger := testLogger()
	v := validator.New()
	catalog := cache.NewCatalogCache(nil)

	authUC := usecase.NewAuthUsecase(client, validator.NewAuthValidator(v), mail.NewConfirmationSender(mail.NewLogMailer(logger), "http://localhost:8080"), carts, catalog, logger)
	supplierUC := usecase.NewSupplierUsecase(client, catalog, logger)
	vendorUC := usecase.NewVendorUsecase(client, carts, catalog, logger)

	e := echo.New()
	e.Validator = v
	server.RegisterRoutes(e, cfg, client, server.Handlers{
		Setup:    handler.NewSetupHandler(cfg),
		Auth:     handler.NewAuthHandler(authUC, false),
		Supplier: handler.NewSupplierHandler(supplierUC),
		Vendor:   handler.NewVendorHandler(vendorUC),
	}, nil, logger)

	return &testApp{e: e, client: client, carts: carts}
}

// tokenが空ならcookieなし
func (a *testApp) do(t *testing.T, method string, path string, body string, token string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

// "tok" でログイン済み、指定ロールのプロフィールを持つ状態にする
func (a *testApp) signedInAs(role model.Role, userID string) {
	a.client.AuthMock.On("GetSession", mock.Anything, "tok").Return(&backend.Session{
		AccessToken: "tok",
		SessionID:   "sess-" + userID,
		ExpiresAt:   time.Now().Add(time.Hour),
		User:        &model.User{ID: userID, Email: userID + "@example.com"},
	}, nil)
	a.client.ProfileRepo.On("FindByID", mock.Anything, userID).Return(model.Profile{
		ID:           userID,
		FullName:     "Test " + string(role),
		Role:         role,
		BusinessName: "Business " + userID,
		City:         "Mumbai",
	}, nil)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var r handler.ErrorResponse
	_ = json.NewDecoder(rec.Body).Decode(&r)
	return r
}

func decodeRedirect(t *testing.T, rec *httptest.ResponseRecorder) usecase.RedirectResult {
	t.Helper()
	var r usecase.RedirectResult
	_ = json.NewDecoder(rec.Body).Decode(&r)
	return r
}
