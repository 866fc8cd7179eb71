package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"supplyconnect/internal/backend"
	"supplyconnect/internal/domain/model"
	repo "supplyconnect/internal/repository"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

type SupplierUsecase struct {
	client  backend.Client
	catalog CatalogCache
	logger  *log.Logger
}

// DI
func NewSupplierUsecase(client backend.Client, catalog CatalogCache, logger *log.Logger) *SupplierUsecase {
	return &SupplierUsecase{client: client, catalog: catalog, logger: logger}
}

// 商品フォームの入力
type ProductInput struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Unit          string          `json:"unit"`
	StockQuantity int64           `json:"stock_quantity"`
}

type SupplierDashboard struct {
	Profile      model.Profile             `json:"profile"`
	Products     []model.Product           `json:"products"`
	Orders       []SupplierOrderView       `json:"orders"`
	StatusCounts map[model.OrderStatus]int `json:"status_counts"`
	Categories   []model.Category          `json:"categories"`
	Units        []model.Unit              `json:"units"`
}

func (u *SupplierUsecase) Dashboard(ctx context.Context, supplier model.Profile) SupplierDashboard {
	orders := u.ListOrders(ctx, supplier.ID)

	counts := make(map[model.OrderStatus]int, len(model.OrderStatuses))
	for _, s := range model.OrderStatuses {
		counts[s] = 0
	}
	for _, o := range orders {
		counts[o.Status]++
	}

	return SupplierDashboard{
		Profile:      supplier,
		Products:     u.ListProducts(ctx, supplier.ID),
		Orders:       orders,
		StatusCounts: counts,
		Categories:   model.Categories,
		Units:        model.Units,
	}
}

// 自分の商品（新しい順）
// 読み込み失敗はログだけ出して空で返す。
func (u *SupplierUsecase) ListProducts(ctx context.Context, supplierID string) []model.Product {
	products, err := u.client.Products().List(ctx, repo.ProductListQuery{SupplierID: supplierID})
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "supplier_products_read_failed", "supplier_id": supplierID, "error": err.Error()})
		return []model.Product{}
	}
	return products
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if !model.Category(in.Category).Valid() {
		return NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if !model.Unit(in.Unit).Valid() {
		return NewHTTPError(http.StatusBadRequest, "invalid unit")
	}
	if in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.StockQuantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	return nil
}

func (in ProductInput) toProduct(supplierID string) model.Product {
	return model.Product{
		SupplierID:    supplierID,
		Name:          strings.TrimSpace(in.Name),
		Description:   strings.TrimSpace(in.Description),
		Category:      model.Category(in.Category),
		Price:         in.Price.Round(2),
		Unit:          model.Unit(in.Unit),
		StockQuantity: in.StockQuantity,
	}
}

func (u *SupplierUsecase) CreateProduct(ctx context.Context, supplierID string, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	created, err := u.client.Products().Create(ctx, in.toProduct(supplierID))
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "product_create_failed", "supplier_id": supplierID, "error": err.Error()})
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, MsgSaveProductFailed)
	}

	u.afterProductWrite(ctx)
	writeAudit(ctx, u.client, u.logger, model.AuditLog{
		ActorUserID:  supplierID,
		Action:       model.AuditActionCreateProduct,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   created.ID,
	}, nil, created)

	return created, nil
}

func (u *SupplierUsecase) UpdateProduct(ctx context.Context, supplierID string, productID string, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	//変更前（before）。他の仕入先の商品は見つからない扱い
	before, err := u.ownedProduct(ctx, supplierID, productID)
	if err != nil {
		return model.Product{}, err
	}

	p := in.toProduct(supplierID)
	p.ID = productID
	p.CreatedAt = before.CreatedAt
	err = u.client.Products().Update(ctx, p)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, MsgProductNotFound)
	}
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "product_update_failed", "product_id": productID, "error": err.Error()})
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, MsgSaveProductFailed)
	}

	//updated_atはDB側で付くので読み直す
	after, err := u.client.Products().FindByID(ctx, productID)
	if err != nil {
		u.logger.Warnj(log.JSON{"event": "product_reread_failed", "product_id": productID, "error": err.Error()})
		after = p
		after.UpdatedAt = time.Now()
	}

	u.afterProductWrite(ctx)
	writeAudit(ctx, u.client, u.logger, model.AuditLog{
		ActorUserID:  supplierID,
		Action:       model.AuditActionUpdateProduct,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   productID,
	}, before, after)

	return after, nil
}

// 商品削除（過去の注文明細は残る）
func (u *SupplierUsecase) DeleteProduct(ctx context.Context, supplierID string, productID string) error {
	before, err := u.ownedProduct(ctx, supplierID, productID)
	if err != nil {
		return err
	}

	err = u.client.Products().Delete(ctx, productID, supplierID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, MsgProductNotFound)
	}
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "product_delete_failed", "product_id": productID, "error": err.Error()})
		return NewHTTPError(http.StatusInternalServerError, MsgDeleteProductFailed)
	}

	u.afterProductWrite(ctx)
	writeAudit(ctx, u.client, u.logger, model.AuditLog{
		ActorUserID:  supplierID,
		Action:       model.AuditActionDeleteProduct,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   productID,
	}, before, nil)

	return nil
}

func (u *SupplierUsecase) ownedProduct(ctx context.Context, supplierID string, productID string) (model.Product, error) {
	p, err := u.client.Products().FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && p.SupplierID != supplierID) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, MsgProductNotFound)
	}
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "product_read_failed", "product_id": productID, "error": err.Error()})
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, MsgSaveProductFailed)
	}
	return p, nil
}

// vendor向け一覧のキャッシュを捨てる
func (u *SupplierUsecase) afterProductWrite(ctx context.Context) {
	if err := u.catalog.Invalidate(ctx); err != nil {
		u.logger.Errorj(log.JSON{"event": "catalog_cache_invalidate_failed", "error": err.Error()})
	}
}

// 自分宛ての注文（新しい順、注文者と明細つき）
func (u *SupplierUsecase) ListOrders(ctx context.Context, supplierID string) []SupplierOrderView {
	orders, err := u.client.Orders().List(ctx, repo.OrderListQuery{
		SupplierID: supplierID,
		WithItems:  true,
		WithVendor: true,
	})
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "supplier_orders_read_failed", "supplier_id": supplierID, "error": err.Error()})
		return []SupplierOrderView{}
	}

	out := make([]SupplierOrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toSupplierOrderView(o))
	}
	return out
}

// ステータス更新後、注文一覧を取り直して返す
func (u *SupplierUsecase) UpdateOrderStatus(ctx context.Context, supplierID string, orderID string, status string) ([]SupplierOrderView, error) {
	to := model.OrderStatus(strings.TrimSpace(status))
	if !to.Valid() {
		return nil, NewHTTPError(http.StatusBadRequest, MsgInvalidTransition)
	}

	o, err := u.client.Orders().FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && o.SupplierID != supplierID) {
		return nil, NewHTTPError(http.StatusNotFound, MsgOrderNotFound)
	}
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "order_read_failed", "order_id": orderID, "error": err.Error()})
		return nil, NewHTTPError(http.StatusInternalServerError, MsgUpdateStatusFailed)
	}

	if !model.CanTransition(model.RoleSupplier, o.Status, to) {
		return nil, NewHTTPError(http.StatusBadRequest, MsgInvalidTransition)
	}

	//状態が変わっていないときだけ更新される
	err = u.client.Orders().UpdateStatus(ctx, orderID, supplierID, o.Status, to)
	if errors.Is(err, repo.ErrStatusConflict) {
		return nil, NewHTTPError(http.StatusConflict, MsgStatusChanged)
	}
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "order_status_update_failed", "order_id": orderID, "error": err.Error()})
		return nil, NewHTTPError(http.StatusInternalServerError, MsgUpdateStatusFailed)
	}

	writeAudit(ctx, u.client, u.logger, model.AuditLog{
		ActorUserID:  supplierID,
		Action:       model.AuditActionUpdateOrderStatus,
		ResourceType: model.AuditResourceOrder,
		ResourceID:   orderID,
	}, map[string]string{"status": string(o.Status)}, map[string]string{"status": string(to)})

	return u.ListOrders(ctx, supplierID), nil
}

// 自分の操作履歴（新しい順）
func (u *SupplierUsecase) Activity(ctx context.Context, supplierID string, limit int) []model.AuditLog {
	logs, err := u.client.AuditLogs().List(ctx, repo.AuditLogFilter{ActorUserID: supplierID, Limit: limit})
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "audit_logs_read_failed", "supplier_id": supplierID, "error": err.Error()})
		return []model.AuditLog{}
	}
	return logs
}
