package validator

import (
	"context"
	"net/http"

	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/usecase"
)

// 登録パスワードの最低文字数
const MinPasswordLength = 6

type authValidator struct {
	v *Validator
}

// Usecaseは interface を依存注入
func NewAuthValidator(v *Validator) usecase.AuthValidator {
	return &authValidator{v: v}
}

// サインアップの入力を検証
// バックエンドは呼ばない。
func (a *authValidator) ValidateRegister(ctx context.Context, in usecase.RegisterInput) error {
	if in.Password != in.ConfirmPassword {
		return usecase.NewHTTPError(http.StatusBadRequest, usecase.MsgPasswordsDoNotMatch)
	}
	if len(in.Password) < MinPasswordLength {
		return usecase.NewHTTPError(http.StatusBadRequest, usecase.MsgPasswordTooShort)
	}
	if _, err := model.ParseRole(in.Role); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, usecase.MsgInvalidRole)
	}
	return a.v.Validate(in)
}

// ログインの入力を検証
func (a *authValidator) ValidateLogin(ctx context.Context, in usecase.LoginInput) error {
	return a.v.Validate(in)
}

// ロールは変更できないので見ない
func (a *authValidator) ValidateProfileUpdate(ctx context.Context, in usecase.ProfileUpdateInput) error {
	return a.v.Validate(in)
}

func (a *authValidator) ValidateProfile(ctx context.Context, in usecase.ProfileInput) error {
	if _, err := model.ParseRole(in.Role); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, usecase.MsgInvalidRole)
	}
	return a.v.Validate(in)
}
