package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kitchpad/kitchpad/client"
	"github.com/kitchpad/kitchpad/models"
)

// Board is the kitchen-side view of today's orders. It offers exactly
// one forward action per order plus cancel/delete, following the status
// map in models, and never skips or reverts a state.
type Board struct {
	api     *client.Client
	log     *logrus.Logger
	confirm Confirmer
	notify  Notifier

	orders []models.Order
}

func NewBoard(api *client.Client, log *logrus.Logger, confirm Confirmer, notify Notifier) *Board {
	if log == nil {
		log = logrus.New()
	}
	return &Board{api: api, log: log, confirm: confirm, notify: notify}
}

// Refresh replaces the cached list with today's orders, newest first.
// The day filter runs server-side over UTC-stored timestamps, so the
// date is the UTC one.
func (b *Board) Refresh(ctx context.Context) error {
	orders, err := b.api.ListOrders(ctx, client.ListOrdersOptions{
		Limit: 50,
		Date:  time.Now().UTC().Format("2006-01-02"),
	})
	if err != nil {
		b.notify.Notify("注文一覧を取得できませんでした: " + err.Error())
		return err
	}
	b.orders = orders
	return nil
}

func (b *Board) Orders() []models.Order {
	return b.orders
}

// Watch refreshes the board on a fixed interval until ctx is cancelled.
func (b *Board) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := b.Refresh(ctx); err != nil {
				b.log.Warnf("board refresh: %v", err)
			}
		}
	}
}

func (b *Board) find(id uint) (models.Order, bool) {
	for _, o := range b.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// Advance moves an order one step forward. Terminal orders have no
// forward action and are rejected before any request is sent.
func (b *Board) Advance(ctx context.Context, id uint) error {
	order, ok := b.find(id)
	if !ok {
		return fmt.Errorf("order %d not on the board", id)
	}
	next, ok := order.Status.Next()
	if !ok {
		return fmt.Errorf("order #%s is %s and cannot move forward", order.OrderNumber, order.Status)
	}
	return b.setStatus(ctx, order, next)
}

// Cancel cancels an order still in the kitchen.
func (b *Board) Cancel(ctx context.Context, id uint) error {
	order, ok := b.find(id)
	if !ok {
		return fmt.Errorf("order %d not on the board", id)
	}
	if !order.Status.CanCancel() {
		return fmt.Errorf("order #%s is %s and cannot be cancelled", order.OrderNumber, order.Status)
	}
	return b.setStatus(ctx, order, models.StatusCancelled)
}

func (b *Board) setStatus(ctx context.Context, order models.Order, status models.OrderStatus) error {
	if _, err := b.api.UpdateOrder(ctx, order.ID, client.OrderUpdate{Status: &status}); err != nil {
		b.notify.Notify("注文を更新できませんでした: " + err.Error())
		return err
	}
	b.log.Infof("order #%s: %s -> %s", order.OrderNumber, order.Status, status)
	return b.Refresh(ctx)
}

// Delete removes an order for good, after the operator confirms.
func (b *Board) Delete(ctx context.Context, id uint) error {
	order, ok := b.find(id)
	if !ok {
		return fmt.Errorf("order %d not on the board", id)
	}
	if !b.confirm.Confirm(fmt.Sprintf("注文 #%s を削除しますか？", order.OrderNumber)) {
		return nil
	}
	if err := b.api.DeleteOrder(ctx, order.ID); err != nil {
		b.notify.Notify("注文を削除できませんでした: " + err.Error())
		return err
	}
	return b.Refresh(ctx)
}

// TodayOnly filters a fetched batch down to orders created today. The
// board itself filters server-side; this covers callers working off the
// general cached list.
func TodayOnly(orders []models.Order, now time.Time) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.CreatedOn(now) {
			out = append(out, o)
		}
	}
	return out
}
