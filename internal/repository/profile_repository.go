package repository

import (
	"context"

	"supplyconnect/internal/domain/model"
)

type ProfileRepository interface {
	//作成（同じIDが既にあればErrDuplicate）
	Create(ctx context.Context, profile model.Profile) (model.Profile, error)
	FindByID(ctx context.Context, id string) (model.Profile, error)
	//ロール以外の項目を更新
	Update(ctx context.Context, profile model.Profile) error
}
