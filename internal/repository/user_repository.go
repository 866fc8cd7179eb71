package repository

import (
	"context"

	"supplyconnect/internal/domain/model"
)

// 認証ユーザーの保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（email重複はErrDuplicate）
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//確認メールのトークンハッシュから取得
	FindByConfirmationTokenHash(ctx context.Context, tokenHash string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}
