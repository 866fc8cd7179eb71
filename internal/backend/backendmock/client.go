package backendmock

import (
	"supplyconnect/internal/backend"
	"supplyconnect/internal/repository/repomock"
)

// 埋め込みでConfigured()メソッドを隠さないための別名
type configured = backend.Configured

// 全部モックのbackend.Client
type Client struct {
	*configured

	AuthMock      *Auth
	ProfileRepo   *repomock.ProfileRepo
	ProductRepo   *repomock.ProductRepo
	OrderRepo     *repomock.OrderRepo
	OrderItemRepo *repomock.OrderItemRepo
	AuditRepo     *repomock.AuditLogRepo
	TxManager     *repomock.TxManager
}

func NewClient() *Client {
	c := &Client{
		AuthMock:      new(Auth),
		ProfileRepo:   new(repomock.ProfileRepo),
		ProductRepo:   new(repomock.ProductRepo),
		OrderRepo:     new(repomock.OrderRepo),
		OrderItemRepo: new(repomock.OrderItemRepo),
		AuditRepo:     new(repomock.AuditLogRepo),
	}
	//Tx内でも同じモックを使う
	c.TxManager = &repomock.TxManager{Orders: c.OrderRepo, OrderItems: c.OrderItemRepo}

	c.configured = backend.NewConfigured(backend.Repos{
		Users:      new(repomock.UserRepo),
		Sessions:   new(repomock.SessionRepo),
		Profiles:   c.ProfileRepo,
		Products:   c.ProductRepo,
		Orders:     c.OrderRepo,
		OrderItems: c.OrderItemRepo,
		AuditLogs:  c.AuditRepo,
		Tx:         c.TxManager,
	}, c.AuthMock)
	return c
}
