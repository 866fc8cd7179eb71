package repository

import (
	"context"
	"time"

	"supplyconnect/internal/domain/model"
	repo "supplyconnect/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sessionGormRepository struct {
	db *gorm.DB //DB接続（GORM）
}

// GORM実装
func NewSessionRepository(db *gorm.DB) repo.SessionRepository {
	return &sessionGormRepository{db: db}
}

// セッションを保存。
func (r *sessionGormRepository) Create(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	//タイムアウトやキャンセルをDB処理に伝える
	return mapError(r.db.WithContext(ctx).Create(session).Error)
}

func (r *sessionGormRepository) FindByID(ctx context.Context, sessionID string) (*model.Session, error) {
	var s model.Session
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&s).Error; err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

// revoked_atをセットして無効。
func (r *sessionGormRepository) Revoke(ctx context.Context, sessionID string, revokedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ? AND revoked_at IS NULL", sessionID).
		Update("revoked_at", &revokedAt)

	if result.Error != nil {
		return result.Error
	}
	// 更新件数が0なら「すでに失効/存在しない」
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
