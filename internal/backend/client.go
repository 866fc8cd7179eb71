package backend

import (
	"context"
	"time"

	"supplyconnect/internal/config"
	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/infra/db"
	infrarepo "supplyconnect/internal/infra/repository"
	"supplyconnect/internal/repository"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// ログイン結果・現在のセッション
type Session struct {
	AccessToken string      `json:"access_token"`
	SessionID   string      `json:"-"`
	ExpiresAt   time.Time   `json:"expires_at"`
	User        *model.User `json:"user"`
}

// 認証の機能（signUp / signIn / signOut / getUser / getSession）
type Auth interface {
	//ユーザーを作り、確認メール用トークン（平文）を返す
	SignUp(ctx context.Context, email string, password string) (*model.User, string, error)
	SignIn(ctx context.Context, email string, password string, userAgent string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetSession(ctx context.Context, accessToken string) (*Session, error)
	GetUser(ctx context.Context, accessToken string) (*model.User, error)
	ConfirmEmail(ctx context.Context, token string) (*model.User, error)
}

// 全フローに注入するバックエンドのクライアント
// 設定ありはDB、設定なしは全呼び出しがConfigurationErrorになる。
type Client interface {
	Configured() bool
	Auth() Auth
	Profiles() repository.ProfileRepository
	Products() repository.ProductRepository
	Orders() repository.OrderRepository
	OrderItems() repository.OrderItemRepository
	AuditLogs() repository.AuditLogRepository
	Tx() repository.TransactionManager
}

type Deps struct {
	// DBを開く関数（未指定ならdb.Connect）
	Open func(dsn string) (*gorm.DB, error)
	// 起動時にテーブルを作るか
	Migrate bool
	// 認証まわりのログ出力先（未指定ならlog.New("auth")）
	Logger *log.Logger
}

// 設定が揃っていなければネットワークに触らずスタブを返す
func NewClient(cfg config.Config, deps Deps) (Client, error) {
	if !cfg.IsConfigured() {
		return NewUnconfigured(cfg.MissingSettings()), nil
	}

	open := deps.Open
	if open == nil {
		open = db.Connect
	}
	gdb, err := open(cfg.ServiceURL)
	if err != nil {
		return nil, err
	}
	if deps.Migrate {
		if err := db.Migrate(gdb); err != nil {
			return nil, err
		}
	}

	repos := Repos{
		Users:      infrarepo.NewUserGormRepository(gdb),
		Sessions:   infrarepo.NewSessionRepository(gdb),
		Profiles:   infrarepo.NewProfileGormRepository(gdb),
		Products:   infrarepo.NewProductGormRepository(gdb),
		Orders:     infrarepo.NewOrderGormRepository(gdb),
		OrderItems: infrarepo.NewOrderItemGormRepository(gdb),
		AuditLogs:  infrarepo.NewAuditLogGormRepository(gdb),
		Tx:         infrarepo.NewTxManagerGorm(gdb),
	}
	auth := NewAuth(AuthConfig{
		SigningKey:               cfg.ServiceAPIKey,
		SessionTTL:               cfg.SessionTTL,
		RequireEmailConfirmation: cfg.RequireEmailConfirmation,
	}, repos.Users, repos.Sessions, deps.Logger)

	return NewConfigured(repos, auth), nil
}

type Repos struct {
	Users      repository.UserRepository
	Sessions   repository.SessionRepository
	Profiles   repository.ProfileRepository
	Products   repository.ProductRepository
	Orders     repository.OrderRepository
	OrderItems repository.OrderItemRepository
	AuditLogs  repository.AuditLogRepository
	Tx         repository.TransactionManager
}

type Configured struct {
	repos Repos
	auth  Auth
}

func NewConfigured(repos Repos, auth Auth) *Configured {
	return &Configured{repos: repos, auth: auth}
}

func (c *Configured) Configured() bool                           { return true }
func (c *Configured) Auth() Auth                                 { return c.auth }
func (c *Configured) Profiles() repository.ProfileRepository     { return c.repos.Profiles }
func (c *Configured) Products() repository.ProductRepository     { return c.repos.Products }
func (c *Configured) Orders() repository.OrderRepository         { return c.repos.Orders }
func (c *Configured) OrderItems() repository.OrderItemRepository { return c.repos.OrderItems }
func (c *Configured) AuditLogs() repository.AuditLogRepository   { return c.repos.AuditLogs }
func (c *Configured) Tx() repository.TransactionManager          { return c.repos.Tx }
