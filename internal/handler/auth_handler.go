package handler

import (
	"net/http"
	"time"

	"supplyconnect/internal/backend"
	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/middleware"
	"supplyconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc           *usecase.AuthUsecase
	cookieSecure bool
}

// DIコンストラクタ
func NewAuthHandler(uc *usecase.AuthUsecase, cookieSecure bool) *AuthHandler {
	return &AuthHandler{uc: uc, cookieSecure: cookieSecure}
}

// limiterはログイン・登録のPOSTだけに付ける
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, limiter echo.MiddlewareFunc, requireSession echo.MiddlewareFunc) {
	g := e.Group("/auth")
	g.GET("/login", h.loginForm)
	g.GET("/register", h.registerForm)
	g.POST("/register", h.register, limiter)
	g.POST("/login", h.login, limiter)
	g.POST("/logout", h.logout)
	g.GET("/verify-email", h.verifyEmail)
	g.GET("/confirm", h.confirm)
	g.POST("/complete-profile", h.completeProfile, requireSession)

	e.GET("/profile", h.profile, requireSession)
	e.PUT("/profile", h.updateProfile, requireSession)
}

type formView struct {
	Title  string       `json:"title"`
	Action string       `json:"action"`
	Roles  []model.Role `json:"roles,omitempty"`
	Role   string       `json:"role,omitempty"`
}

func (h *AuthHandler) loginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, formView{Title: "Sign in to SupplyConnect", Action: model.LoginPath})
}

// ?type=vendor|supplier で初期選択
func (h *AuthHandler) registerForm(c echo.Context) error {
	v := formView{
		Title:  "Create your account",
		Action: "/auth/register",
		Roles:  []model.Role{model.RoleVendor, model.RoleSupplier},
	}
	if role, err := model.ParseRole(c.QueryParam("type")); err == nil {
		v.Role = string(role)
	}
	return c.JSON(http.StatusOK, v)
}

// POST /auth/register
func (h *AuthHandler) register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return writeError(c, err)
	}
	if req.Role == "" {
		req.Role = c.QueryParam("type")
	}

	out, err := h.uc.Register(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// POST /auth/login
func (h *AuthHandler) login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return writeError(c, err)
	}

	// User-Agentを取得（セッションに紐付ける）
	userAgent := c.Request().UserAgent()

	out, err := h.uc.Login(c.Request().Context(), req, userAgent)
	if err != nil {
		return writeError(c, err)
	}

	h.setSessionCookie(c, out.Session)
	return c.JSON(http.StatusOK, out)
}

// POST /auth/logout
// セッションが無くても200でトップへ
func (h *AuthHandler) logout(c echo.Context) error {
	session, _ := middleware.SessionFromContext(c)
	out := h.uc.Logout(c.Request().Context(), session)

	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) verifyEmail(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"title":   "Check your email",
		"message": "We sent you a confirmation link. Please open it to activate your account, then sign in.",
		"login":   model.LoginPath,
	})
}

// GET /auth/confirm?token=...
func (h *AuthHandler) confirm(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: usecase.MsgInvalidConfirmation})
	}

	out, err := h.uc.ConfirmEmail(c.Request().Context(), token)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// POST /auth/complete-profile
func (h *AuthHandler) completeProfile(c echo.Context) error {
	session, _ := middleware.SessionFromContext(c)

	var req usecase.ProfileInput
	if err := c.Bind(&req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.CompleteProfile(c.Request().Context(), session, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /profile
func (h *AuthHandler) profile(c echo.Context) error {
	session, _ := middleware.SessionFromContext(c)

	p, err := h.uc.Profile(c.Request().Context(), session)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// PUT /profile
func (h *AuthHandler) updateProfile(c echo.Context) error {
	session, _ := middleware.SessionFromContext(c)

	var req usecase.ProfileUpdateInput
	if err := c.Bind(&req); err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.UpdateProfile(c.Request().Context(), session, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// セッショントークンをCookieにセット
func (h *AuthHandler) setSessionCookie(c echo.Context, session *backend.Session) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
