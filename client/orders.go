package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kitchpad/kitchpad/models"
)

type CreateOrderRequest struct {
	Items       models.OrderItems  `json:"items"`
	Notes       string             `json:"notes,omitempty"`
	OrderNumber string             `json:"order_number,omitempty"`
	Status      models.OrderStatus `json:"status,omitempty"`
	TotalAmount *float64           `json:"total_amount,omitempty"`
}

// OrderUpdate is a partial update; nil fields are left untouched.
type OrderUpdate struct {
	Status *models.OrderStatus `json:"status,omitempty"`
	Notes  *string             `json:"notes,omitempty"`
}

type ListOrdersOptions struct {
	Sort  string // default -created_date
	Limit int    // default 100
	Date  string // optional server-side day filter, 2006-01-02
}

func (c *Client) ListOrders(ctx context.Context, opts ListOrdersOptions) ([]models.Order, error) {
	if opts.Sort == "" {
		opts.Sort = "-created_date"
	}
	if opts.Limit <= 0 {
		opts.Limit = 100
	}
	q := url.Values{}
	q.Set("sort", opts.Sort)
	q.Set("limit", fmt.Sprintf("%d", opts.Limit))
	if opts.Date != "" {
		q.Set("date", opts.Date)
	}

	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders?"+q.Encode(), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, http.MethodPost, "/orders", req, &order)
	return order, err
}

func (c *Client) UpdateOrder(ctx context.Context, id uint, update OrderUpdate) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), update, &order)
	return order, err
}

func (c *Client) DeleteOrder(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil)
}

func (c *Client) TodaySales(ctx context.Context) (models.DailySales, error) {
	var sales models.DailySales
	err := c.do(ctx, http.MethodGet, "/sales/today", nil, &sales)
	return sales, err
}
