// Package backendmock はテスト用のbackend.Auth モック。
package backendmock

import (
	"context"

	"supplyconnect/internal/backend"
	"supplyconnect/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

type Auth struct{ mock.Mock }

func (m *Auth) SignUp(ctx context.Context, email string, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*model.User)
	return u, args.String(1), args.Error(2)
}

func (m *Auth) SignIn(ctx context.Context, email string, password string, userAgent string) (*backend.Session, error) {
	args := m.Called(ctx, email, password, userAgent)
	s, _ := args.Get(0).(*backend.Session)
	return s, args.Error(1)
}

func (m *Auth) SignOut(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

func (m *Auth) GetSession(ctx context.Context, accessToken string) (*backend.Session, error) {
	args := m.Called(ctx, accessToken)
	s, _ := args.Get(0).(*backend.Session)
	return s, args.Error(1)
}

func (m *Auth) GetUser(ctx context.Context, accessToken string) (*model.User, error) {
	args := m.Called(ctx, accessToken)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *Auth) ConfirmEmail(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}
