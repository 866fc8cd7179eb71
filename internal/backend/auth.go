package backend

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/repository"

	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	SigningKey               string
	SessionTTL               time.Duration
	RequireEmailConfirmation bool
}

// DBに保存するユーザー/セッションを使う認証
type authService struct {
	cfg      AuthConfig
	users    repository.UserRepository
	sessions repository.SessionRepository
	tokens   tokenIssuer
	now      func() time.Time
	logger   *log.Logger
}

func NewAuth(cfg AuthConfig, users repository.UserRepository, sessions repository.SessionRepository, logger *log.Logger) Auth {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 7 * 24 * time.Hour
	}
	if logger == nil {
		logger = log.New("auth")
	}
	return &authService{
		cfg:      cfg,
		users:    users,
		sessions: sessions,
		tokens:   tokenIssuer{key: []byte(cfg.SigningKey)},
		now:      time.Now,
		logger:   logger,
	}
}

func (a *authService) SignUp(ctx context.Context, email string, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	if existing, err := a.users.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", ErrUserAlreadyRegistered
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	confirmPlain, confirmHash, err := newRandomTokenAndHash()
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Email:                 email,
		PasswordHash:          string(pwHash),
		ConfirmationTokenHash: confirmHash,
	}
	if err := a.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrUserAlreadyRegistered
		}
		return nil, "", err
	}
	return user, confirmPlain, nil
}

func (a *authService) SignIn(ctx context.Context, email string, password string, userAgent string) (*Session, error) {
	user, err := a.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if a.cfg.RequireEmailConfirmation && !user.EmailConfirmed() {
		return nil, ErrEmailNotConfirmed
	}

	now := a.now()
	session := &model.Session{
		UserID:    user.ID,
		UserAgent: truncate(userAgent, 512),
		ExpiresAt: now.Add(a.cfg.SessionTTL),
	}
	if err := a.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	//last_sign_in更新（失敗してもログインは通す）
	user.LastSignInAt = &now
	if err := a.users.Update(ctx, user); err != nil {
		a.logger.Warnj(log.JSON{
			"event":   "last_sign_in_update_failed",
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}

	token, err := a.tokens.issue(user.ID, session.ID, now, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	return &Session{
		AccessToken: token,
		SessionID:   session.ID,
		ExpiresAt:   session.ExpiresAt,
		User:        user,
	}, nil
}

// セッションを失効させる
func (a *authService) SignOut(ctx context.Context, accessToken string) error {
	claims, err := a.tokens.parse(accessToken)
	if err != nil {
		return ErrInvalidSession
	}
	err = a.sessions.Revoke(ctx, claims.SessionID, a.now())
	if errors.Is(err, repository.ErrNotFound) {
		//既に失効済み
		return nil
	}
	return err
}

func (a *authService) GetSession(ctx context.Context, accessToken string) (*Session, error) {
	claims, err := a.tokens.parse(accessToken)
	if err != nil {
		return nil, ErrInvalidSession
	}

	session, err := a.sessions.FindByID(ctx, claims.SessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	//別ユーザーのsid・失効済みは無効
	if session.UserID != claims.Subject || !session.Active(a.now()) {
		return nil, ErrInvalidSession
	}

	user, err := a.users.FindByID(ctx, session.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}

	return &Session{
		AccessToken: accessToken,
		SessionID:   session.ID,
		ExpiresAt:   session.ExpiresAt,
		User:        user,
	}, nil
}

func (a *authService) GetUser(ctx context.Context, accessToken string) (*model.User, error) {
	s, err := a.GetSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return s.User, nil
}

// 確認メールのリンクから呼ばれる
func (a *authService) ConfirmEmail(ctx context.Context, token string) (*model.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidConfirmationToken
	}

	user, err := a.users.FindByConfirmationTokenHash(ctx, hashToken(token))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidConfirmationToken
	}
	if err != nil {
		return nil, err
	}

	now := a.now()
	user.EmailConfirmedAt = &now
	user.ConfirmationTokenHash = ""
	if err := a.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// 確認トークン生成（平文 + DB保存hash）
func newRandomTokenAndHash() (plain string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}

	plain = base64.RawURLEncoding.EncodeToString(b)
	return plain, hashToken(plain), nil
}

func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
