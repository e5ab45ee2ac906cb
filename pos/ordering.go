package pos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kitchpad/kitchpad/client"
	"github.com/kitchpad/kitchpad/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// NextOrderNumber is the client's guess at the daily sequence number:
// orders created today in the cached list, plus one, zero-padded to
// three digits. The backend assigns the authoritative number; this one
// is only a hint carried in the create request.
func NextOrderNumber(orders []models.Order, now time.Time) string {
	n := 0
	for _, o := range orders {
		if o.CreatedOn(now) {
			n++
		}
	}
	return fmt.Sprintf("%03d", n+1)
}

// SubmitOrder turns the cart into a create request and posts it. On
// success the cart is emptied, the order cache invalidated, and the
// number from the create response kept for the confirmation surface.
// On failure everything is left as it was.
func (a *App) SubmitOrder(ctx context.Context) (models.Order, error) {
	if a.Cart.Empty() {
		return models.Order{}, ErrEmptyCart
	}

	orders, err := a.Orders(ctx)
	if err != nil {
		return models.Order{}, err
	}

	total := a.Cart.TotalAmount()
	req := client.CreateOrderRequest{
		Items:       a.Cart.Items(),
		OrderNumber: NextOrderNumber(orders, time.Now().UTC()),
		Status:      models.StatusPending,
		TotalAmount: &total,
	}

	order, err := a.api.CreateOrder(ctx, req)
	if err != nil {
		a.notify.Notify("発注に失敗しました: " + err.Error())
		return models.Order{}, err
	}

	a.Cart.Clear()
	a.InvalidateOrders()
	a.lastConfirmed = order.OrderNumber
	a.log.Infof("order #%s submitted (%d items)", order.OrderNumber, len(order.Items))
	return order, nil
}

// LastConfirmedNumber is the order number shown on the confirmation
// popup after the most recent successful submission.
func (a *App) LastConfirmedNumber() string {
	return a.lastConfirmed
}
