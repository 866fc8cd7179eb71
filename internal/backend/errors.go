package backend

import (
	"errors"
	"strings"
)

var (
	// 同じemailのユーザーが既にいる
	ErrUserAlreadyRegistered = errors.New("user already registered")
	// email/パスワードが一致しない
	ErrInvalidCredentials = errors.New("invalid login credentials")
	// 確認メールのリンクが未クリック
	ErrEmailNotConfirmed = errors.New("email not confirmed")
	// トークンが無い/壊れている/失効済み
	ErrInvalidSession = errors.New("invalid session")
	// 確認トークンが見つからない
	ErrInvalidConfirmationToken = errors.New("invalid confirmation token")
)

// 接続設定が無いときに全ての呼び出しが返すエラー
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) == 0 {
		return "backend not configured"
	}
	return "backend not configured: missing " + strings.Join(e.Missing, ", ")
}

func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
