package usecase

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"supplyconnect/internal/backend"
	"supplyconnect/internal/domain/model"
	repo "supplyconnect/internal/repository"

	"github.com/labstack/gommon/log"
)

type VendorUsecase struct {
	client  backend.Client
	carts   CartStore
	catalog CatalogCache
	logger  *log.Logger
}

func NewVendorUsecase(client backend.Client, carts CartStore, catalog CatalogCache, logger *log.Logger) *VendorUsecase {
	return &VendorUsecase{client: client, carts: carts, catalog: catalog, logger: logger}
}

type CatalogOutput struct {
	Products   []model.CatalogEntry `json:"products"`
	Categories []model.Category     `json:"categories"`
	Cities     []string             `json:"cities"`
	Filter     model.CatalogFilter  `json:"filter"`
}

type VendorDashboard struct {
	Profile model.Profile     `json:"profile"`
	Catalog CatalogOutput     `json:"catalog"`
	Cart    CartView          `json:"cart"`
	Orders  []VendorOrderView `json:"orders"`
}

type CheckoutResult struct {
	Placed []model.Order     `json:"placed"`
	Orders []VendorOrderView `json:"orders"`
}

func (u *VendorUsecase) Dashboard(ctx context.Context, vendor model.Profile, sessionID string, filter model.CatalogFilter) VendorDashboard {
	return VendorDashboard{
		Profile: vendor,
		Catalog: u.Catalog(ctx, filter),
		Cart:    u.Cart(sessionID),
		Orders:  u.ListOrders(ctx, vendor.ID),
	}
}

// 在庫ありの商品を絞り込んで返す
// 都市の選択肢は絞り込み前の一覧から作る。
func (u *VendorUsecase) Catalog(ctx context.Context, filter model.CatalogFilter) CatalogOutput {
	all := u.visibleEntries(ctx)
	return CatalogOutput{
		Products:   filter.Apply(all),
		Categories: model.Categories,
		Cities:     cities(all),
		Filter:     filter,
	}
}

func (u *VendorUsecase) visibleEntries(ctx context.Context) []model.CatalogEntry {
	if cached, ok := u.catalog.Get(ctx); ok {
		return cached
	}

	products, err := u.client.Products().List(ctx, repo.ProductListQuery{InStockOnly: true, WithSupplier: true})
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "catalog_read_failed", "error": err.Error()})
		return []model.CatalogEntry{}
	}

	entries := make([]model.CatalogEntry, 0, len(products))
	for _, p := range products {
		//クエリでも絞っているが念のためここでも落とす
		if !p.VisibleToVendors() {
			continue
		}
		entries = append(entries, model.NewCatalogEntry(p))
	}

	if err := u.catalog.Set(ctx, entries); err != nil {
		u.logger.Warnj(log.JSON{"event": "catalog_cache_set_failed", "error": err.Error()})
	}
	return entries
}

func cities(entries []model.CatalogEntry) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, e := range entries {
		if e.SupplierCity == "" {
			continue
		}
		if _, ok := seen[e.SupplierCity]; ok {
			continue
		}
		seen[e.SupplierCity] = struct{}{}
		out = append(out, e.SupplierCity)
	}
	sort.Strings(out)
	return out
}

func (u *VendorUsecase) Cart(sessionID string) CartView {
	return toCartView(u.carts.Get(sessionID))
}

// 1個追加（在庫数まで）
func (u *VendorUsecase) AddToCart(ctx context.Context, sessionID string, productID string) (CartView, error) {
	p, err := u.client.Products().FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartView{}, NewHTTPError(http.StatusNotFound, MsgProductNotFound)
	}
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "product_read_failed", "product_id": productID, "error": err.Error()})
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.VisibleToVendors() {
		return CartView{}, NewHTTPError(http.StatusBadRequest, MsgProductOutOfStock)
	}

	cart, _ := u.carts.Update(sessionID, func(c *model.Cart) bool { return c.Add(p) })
	return toCartView(cart), nil
}

// 1個減らす（0で明細ごと消える）
func (u *VendorUsecase) RemoveFromCart(sessionID string, productID string) CartView {
	cart, _ := u.carts.Update(sessionID, func(c *model.Cart) bool { return c.Remove(productID) })
	return toCartView(cart)
}

// 仕入先ごとに1注文を作る
// 各注文は明細と一緒に1トランザクション。途中で失敗したら残りは作らない（作成済みは残る）。
// カートからは注文にできた明細だけを引く。確定中に追加された明細は残る。
func (u *VendorUsecase) Checkout(ctx context.Context, vendorID string, sessionID string) (CheckoutResult, error) {
	cart, ok := u.carts.BeginCheckout(sessionID)
	if !ok {
		return CheckoutResult{}, NewHTTPError(http.StatusConflict, MsgCheckoutInProgress)
	}
	done := make([]model.CartItem, 0, len(cart.Items))
	defer func() { u.carts.FinishCheckout(sessionID, done) }()

	if cart.Empty() {
		return CheckoutResult{}, NewHTTPError(http.StatusBadRequest, MsgCartEmpty)
	}

	placed := make([]model.Order, 0)
	for _, g := range cart.GroupBySupplier() {
		order, err := u.placeGroup(ctx, vendorID, g)
		if err != nil {
			u.logger.Errorj(log.JSON{
				"event":       "place_order_failed",
				"vendor_id":   vendorID,
				"supplier_id": g.SupplierID,
				"placed":      len(placed),
				"error":       err.Error(),
			})
			if backend.IsConfigurationError(err) {
				return CheckoutResult{}, err
			}
			return CheckoutResult{}, NewHTTPError(http.StatusInternalServerError, MsgPlaceOrderFailed)
		}
		placed = append(placed, order)
		//作成済みの注文を再送で重複させない
		done = append(done, g.Items...)

		writeAudit(ctx, u.client, u.logger, model.AuditLog{
			ActorUserID:  vendorID,
			Action:       model.AuditActionPlaceOrder,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   order.ID,
		}, nil, order)
	}

	return CheckoutResult{
		Placed: placed,
		Orders: u.ListOrders(ctx, vendorID),
	}, nil
}

func (u *VendorUsecase) placeGroup(ctx context.Context, vendorID string, g model.SupplierGroup) (model.Order, error) {
	items := make([]model.OrderItem, 0, len(g.Items))
	for _, it := range g.Items {
		items = append(items, model.OrderItem{
			ProductID: it.Product.ID,
			Quantity:  it.Quantity,
			Price:     it.Product.Price,
		})
	}

	var created model.Order
	err := u.client.Tx().WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().Create(ctx, model.Order{
			VendorID:    vendorID,
			SupplierID:  g.SupplierID,
			Status:      model.OrderStatusPending,
			TotalAmount: g.Total(),
		})
		if err != nil {
			return err
		}
		if err := r.OrderItems().CreateBulk(ctx, o.ID, items); err != nil {
			return err
		}
		o.Items = items
		created = o
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return created, nil
}

// 自分の注文（新しい順、仕入先と明細つき）
func (u *VendorUsecase) ListOrders(ctx context.Context, vendorID string) []VendorOrderView {
	orders, err := u.client.Orders().List(ctx, repo.OrderListQuery{
		VendorID:     vendorID,
		WithItems:    true,
		WithSupplier: true,
	})
	if err != nil {
		u.logger.Errorj(log.JSON{"event": "vendor_orders_read_failed", "vendor_id": vendorID, "error": err.Error()})
		return []VendorOrderView{}
	}

	out := make([]VendorOrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toVendorOrderView(o))
	}
	return out
}
