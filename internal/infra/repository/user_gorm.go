package repository

import (
	"context"

	"supplyconnect/internal/domain/model"
	domainrepo "supplyconnect/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
// backend.NewClientでこれをnewして認証に渡す。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

// Create はユーザーを新規作成
func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return mapError(r.db.WithContext(ctx).Create(user).Error)
}

// emailでユーザーを1件取得
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// IDでユーザーを1件取得
func (r *userGormRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userGormRepository) FindByConfirmationTokenHash(ctx context.Context, tokenHash string) (*model.User, error) {
	if tokenHash == "" {
		return nil, domainrepo.ErrNotFound
	}
	return r.findOne(ctx, "confirmation_token_hash = ?", tokenHash)
}

func (r *userGormRepository) findOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

// ユーザーを更新。
func (r *userGormRepository) Update(ctx context.Context, user *model.User) error {
	return mapError(r.db.WithContext(ctx).Save(user).Error)
}
