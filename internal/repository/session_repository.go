package repository

import (
	"context"
	"time"

	"supplyconnect/internal/domain/model"
)

// ログインセッションの保存・取得・失効
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	FindByID(ctx context.Context, sessionID string) (*model.Session, error)
	Revoke(ctx context.Context, sessionID string, revokedAt time.Time) error
}
