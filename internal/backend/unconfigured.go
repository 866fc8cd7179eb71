package backend

import (
	"context"

	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/repository"
)

// 設定が無いときのクライアント
// どの呼び出しもネットワークに触れずConfigurationErrorを返す。
type Unconfigured struct {
	err *ConfigurationError
}

func NewUnconfigured(missing []string) *Unconfigured {
	m := make([]string, len(missing))
	copy(m, missing)
	return &Unconfigured{err: &ConfigurationError{Missing: m}}
}

func (u *Unconfigured) Configured() bool                           { return false }
func (u *Unconfigured) Auth() Auth                                 { return unconfiguredAuth{u.err} }
func (u *Unconfigured) Profiles() repository.ProfileRepository     { return unconfiguredProfiles{u.err} }
func (u *Unconfigured) Products() repository.ProductRepository     { return unconfiguredProducts{u.err} }
func (u *Unconfigured) Orders() repository.OrderRepository         { return unconfiguredOrders{u.err} }
func (u *Unconfigured) OrderItems() repository.OrderItemRepository { return unconfiguredOrderItems{u.err} }
func (u *Unconfigured) AuditLogs() repository.AuditLogRepository   { return unconfiguredAuditLogs{u.err} }
func (u *Unconfigured) Tx() repository.TransactionManager          { return unconfiguredTx{u.err} }

type unconfiguredAuth struct{ err *ConfigurationError }

func (s unconfiguredAuth) SignUp(context.Context, string, string) (*model.User, string, error) {
	return nil, "", s.err
}
func (s unconfiguredAuth) SignIn(context.Context, string, string, string) (*Session, error) {
	return nil, s.err
}
func (s unconfiguredAuth) SignOut(context.Context, string) error { return s.err }
func (s unconfiguredAuth) GetSession(context.Context, string) (*Session, error) {
	return nil, s.err
}
func (s unconfiguredAuth) GetUser(context.Context, string) (*model.User, error) {
	return nil, s.err
}
func (s unconfiguredAuth) ConfirmEmail(context.Context, string) (*model.User, error) {
	return nil, s.err
}

type unconfiguredProfiles struct{ err *ConfigurationError }

func (s unconfiguredProfiles) Create(context.Context, model.Profile) (model.Profile, error) {
	return model.Profile{}, s.err
}
func (s unconfiguredProfiles) FindByID(context.Context, string) (model.Profile, error) {
	return model.Profile{}, s.err
}
func (s unconfiguredProfiles) Update(context.Context, model.Profile) error { return s.err }

type unconfiguredProducts struct{ err *ConfigurationError }

func (s unconfiguredProducts) List(context.Context, repository.ProductListQuery) ([]model.Product, error) {
	return nil, s.err
}
func (s unconfiguredProducts) FindByID(context.Context, string) (model.Product, error) {
	return model.Product{}, s.err
}
func (s unconfiguredProducts) Create(context.Context, model.Product) (model.Product, error) {
	return model.Product{}, s.err
}
func (s unconfiguredProducts) Update(context.Context, model.Product) error  { return s.err }
func (s unconfiguredProducts) Delete(context.Context, string, string) error { return s.err }

type unconfiguredOrders struct{ err *ConfigurationError }

func (s unconfiguredOrders) FindByID(context.Context, string) (model.Order, error) {
	return model.Order{}, s.err
}
func (s unconfiguredOrders) List(context.Context, repository.OrderListQuery) ([]model.Order, error) {
	return nil, s.err
}
func (s unconfiguredOrders) Create(context.Context, model.Order) (model.Order, error) {
	return model.Order{}, s.err
}
func (s unconfiguredOrders) UpdateStatus(context.Context, string, string, model.OrderStatus, model.OrderStatus) error {
	return s.err
}

type unconfiguredOrderItems struct{ err *ConfigurationError }

func (s unconfiguredOrderItems) CreateBulk(context.Context, string, []model.OrderItem) error {
	return s.err
}

type unconfiguredAuditLogs struct{ err *ConfigurationError }

func (s unconfiguredAuditLogs) Create(context.Context, model.AuditLog) error { return s.err }
func (s unconfiguredAuditLogs) List(context.Context, repository.AuditLogFilter) ([]model.AuditLog, error) {
	return nil, s.err
}

type unconfiguredTx struct{ err *ConfigurationError }

// fnは呼ばない
func (s unconfiguredTx) WithinTx(context.Context, func(r repository.TxRepos) error) error {
	return s.err
}
