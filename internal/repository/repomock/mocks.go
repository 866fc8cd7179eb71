// Package repomock はテスト用のrepositoryモック（testify/mock）。
package repomock

import (
	"context"
	"time"

	"supplyconnect/internal/domain/model"
	repo "supplyconnect/internal/repository"

	"github.com/stretchr/testify/mock"
)

type UserRepo struct{ mock.Mock }

func (m *UserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepo) FindByConfirmationTokenHash(ctx context.Context, tokenHash string) (*model.User, error) {
	args := m.Called(ctx, tokenHash)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepo) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type SessionRepo struct{ mock.Mock }

func (m *SessionRepo) Create(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionRepo) FindByID(ctx context.Context, sessionID string) (*model.Session, error) {
	args := m.Called(ctx, sessionID)
	s, _ := args.Get(0).(*model.Session)
	return s, args.Error(1)
}

func (m *SessionRepo) Revoke(ctx context.Context, sessionID string, revokedAt time.Time) error {
	args := m.Called(ctx, sessionID, revokedAt)
	return args.Error(0)
}

type ProfileRepo struct{ mock.Mock }

func (m *ProfileRepo) Create(ctx context.Context, p model.Profile) (model.Profile, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Profile)
	return created, args.Error(1)
}

func (m *ProfileRepo) FindByID(ctx context.Context, id string) (model.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Profile)
	return p, args.Error(1)
}

func (m *ProfileRepo) Update(ctx context.Context, p model.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type ProductRepo struct{ mock.Mock }

func (m *ProductRepo) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepo) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepo) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepo) Delete(ctx context.Context, id string, supplierID string) error {
	args := m.Called(ctx, id, supplierID)
	return args.Error(0)
}

type OrderRepo struct{ mock.Mock }

func (m *OrderRepo) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepo) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepo) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepo) UpdateStatus(ctx context.Context, orderID string, supplierID string, from model.OrderStatus, to model.OrderStatus) error {
	args := m.Called(ctx, orderID, supplierID, from, to)
	return args.Error(0)
}

type OrderItemRepo struct{ mock.Mock }

func (m *OrderItemRepo) CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

type AuditLogRepo struct{ mock.Mock }

func (m *AuditLogRepo) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditLogRepo) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, filter)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Error(1)
}

// Txは開始せずfnをそのまま呼ぶ
type TxManager struct {
	Orders     *OrderRepo
	OrderItems *OrderItemRepo
	Calls      int
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Calls++
	return fn(txRepos{m})
}

type txRepos struct{ m *TxManager }

func (r txRepos) Orders() repo.OrderRepository         { return r.m.Orders }
func (r txRepos) OrderItems() repo.OrderItemRepository { return r.m.OrderItems }
