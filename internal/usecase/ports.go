package usecase

import (
	"context"

	"supplyconnect/internal/domain/model"
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	//パスワード一致 → 長さ → ロール → 項目の順で見る
	ValidateRegister(ctx context.Context, in RegisterInput) error
	ValidateLogin(ctx context.Context, in LoginInput) error
	ValidateProfile(ctx context.Context, in ProfileInput) error
	ValidateProfileUpdate(ctx context.Context, in ProfileUpdateInput) error
}

// 確認メールの送信
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, email string, token string) error
}

// セッションごとのカート（cartstore.Store）
type CartStore interface {
	Get(sessionID string) model.Cart
	Update(sessionID string, fn func(c *model.Cart) bool) (model.Cart, bool)
	Drop(sessionID string)
	BeginCheckout(sessionID string) (model.Cart, bool)
	FinishCheckout(sessionID string, placed []model.CartItem)
}

// vendor向け一覧のキャッシュ（cache.CatalogCache）
type CatalogCache interface {
	Get(ctx context.Context) ([]model.CatalogEntry, bool)
	Set(ctx context.Context, entries []model.CatalogEntry) error
	Invalidate(ctx context.Context) error
}
