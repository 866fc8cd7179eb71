package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvServiceURL    = "SERVICE_URL"
	EnvServiceAPIKey = "SERVICE_API_KEY"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	ServiceURL    string // バックエンドの接続先（postgres URL）
	ServiceAPIKey string // セッショントークンの署名キー

	RedisURL string // 任意。無ければキャッシュ・レート制限なし

	SiteURL                  string        // メール内リンクのベースURL
	SessionTTL               time.Duration // セッションの有効期限
	CookieSecure             bool
	RequireEmailConfirmation bool

	SMTPHost     string // 任意。無ければメールはログ出力のみ
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	GoEnv string // dev/prod
}

// Loadは環境変数から読む
// SERVICE_URL / SERVICE_API_KEY が無くてもエラーにはしない（IsConfiguredで判定する）。
func Load() (Config, error) {
	sessionHours, err := atoiDefault("SESSION_TTL_HOURS", 24*7)
	if err != nil {
		return Config{}, err
	}
	if sessionHours <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}

	smtpPort, err := atoiDefault("SMTP_PORT", 587)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		ServiceURL:    strings.TrimSpace(os.Getenv(EnvServiceURL)),
		ServiceAPIKey: strings.TrimSpace(os.Getenv(EnvServiceAPIKey)),

		RedisURL: os.Getenv("REDIS_URL"),

		SiteURL:                  strings.TrimRight(getenv("SITE_URL", "http://localhost:8080"), "/"),
		SessionTTL:               time.Duration(sessionHours) * time.Hour,
		CookieSecure:             envBool("COOKIE_SECURE", false),
		RequireEmailConfirmation: envBool("REQUIRE_EMAIL_CONFIRMATION", false),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     smtpPort,
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getenv("MAIL_FROM", "no-reply@supplyconnect.local"),

		GoEnv: getenv("GO_ENV", "dev"),
	}

	return cfg, nil
}

// 接続先URLとAPIキーが両方あるときだけtrue
func (c Config) IsConfigured() bool {
	return len(c.MissingSettings()) == 0
}

// 足りない設定のキー名
func (c Config) MissingSettings() []string {
	missing := make([]string, 0, 2)
	if c.ServiceURL == "" {
		missing = append(missing, EnvServiceURL)
	}
	if c.ServiceAPIKey == "" {
		missing = append(missing, EnvServiceAPIKey)
	}
	return missing
}

func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
