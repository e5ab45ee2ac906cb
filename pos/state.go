package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kitchpad/kitchpad/client"
	"github.com/kitchpad/kitchpad/models"
)

// App owns all cross-screen state of the ordering screen: the cart, the
// product and order caches, and the confirm/notify hooks. Views read
// through it; successful mutations invalidate the caches explicitly so
// the next read refetches.
type App struct {
	api     *client.Client
	log     *logrus.Logger
	confirm Confirmer
	notify  Notifier

	Cart *Cart

	products      []models.Product
	productsFresh bool
	orders        []models.Order
	ordersFresh   bool

	lastConfirmed string
}

func NewApp(api *client.Client, log *logrus.Logger, confirm Confirmer, notify Notifier) *App {
	if log == nil {
		log = logrus.New()
	}
	return &App{
		api:     api,
		log:     log,
		confirm: confirm,
		notify:  notify,
		Cart:    NewCart(),
	}
}

func (a *App) RefreshProducts(ctx context.Context) error {
	products, err := a.api.ListProducts(ctx)
	if err != nil {
		return err
	}
	a.products = products
	a.productsFresh = true
	return nil
}

func (a *App) RefreshOrders(ctx context.Context) error {
	orders, err := a.api.ListOrders(ctx, client.ListOrdersOptions{})
	if err != nil {
		return err
	}
	a.orders = orders
	a.ordersFresh = true
	return nil
}

// Products returns the catalog filtered to active products of one
// category, refetching first when the cache is stale.
func (a *App) Products(ctx context.Context, category models.ProductCategory) ([]models.Product, error) {
	if !a.productsFresh {
		if err := a.RefreshProducts(ctx); err != nil {
			a.notify.Notify("商品一覧を取得できませんでした: " + err.Error())
			return nil, err
		}
	}
	return FilterProducts(a.products, category), nil
}

// AllProducts returns the whole cached catalog, inactive entries
// included, refetching first when the cache is stale. The management
// list reads this; the ordering menu goes through Products.
func (a *App) AllProducts(ctx context.Context) ([]models.Product, error) {
	if !a.productsFresh {
		if err := a.RefreshProducts(ctx); err != nil {
			a.notify.Notify("商品一覧を取得できませんでした: " + err.Error())
			return nil, err
		}
	}
	return a.products, nil
}

// Orders returns the cached order list, refetching first when stale.
func (a *App) Orders(ctx context.Context) ([]models.Order, error) {
	if !a.ordersFresh {
		if err := a.RefreshOrders(ctx); err != nil {
			a.notify.Notify("注文一覧を取得できませんでした: " + err.Error())
			return nil, err
		}
	}
	return a.orders, nil
}

func (a *App) InvalidateProducts() { a.productsFresh = false }
func (a *App) InvalidateOrders()   { a.ordersFresh = false }

// PendingCount is the badge on the orders icon: today's orders still in
// the kitchen, counted from the cached list.
func (a *App) PendingCount(now time.Time) int {
	var n int
	for _, o := range a.orders {
		if o.CreatedOn(now) && (o.Status == models.StatusPending || o.Status == models.StatusPreparing) {
			n++
		}
	}
	return n
}

// ClearCart empties the cart after the operator confirms. Reports
// whether the cart was cleared.
func (a *App) ClearCart() bool {
	if a.Cart.Empty() {
		return false
	}
	if !a.confirm.Confirm("カートを空にしますか？") {
		return false
	}
	a.Cart.Clear()
	return true
}

// Product looks up a product in the cached catalog.
func (a *App) Product(id uint) (models.Product, bool) {
	for _, p := range a.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// DeleteProduct removes a catalog entry after confirmation.
func (a *App) DeleteProduct(ctx context.Context, p models.Product) error {
	if !a.confirm.Confirm(fmt.Sprintf("商品「%s」を削除しますか？", p.Name)) {
		return nil
	}
	if err := a.api.DeleteProduct(ctx, p.ID); err != nil {
		a.notify.Notify("商品を削除できませんでした: " + err.Error())
		return err
	}
	a.InvalidateProducts()
	return nil
}

// ToggleProduct flips the active flag, the soft-disable used instead of
// deletion in the normal flow.
func (a *App) ToggleProduct(ctx context.Context, p models.Product) error {
	active := !p.IsActive
	if _, err := a.api.UpdateProduct(ctx, p.ID, client.ProductUpdate{IsActive: &active}); err != nil {
		a.notify.Notify("商品を更新できませんでした: " + err.Error())
		return err
	}
	a.InvalidateProducts()
	return nil
}
