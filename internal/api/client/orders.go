package client

import (
	"context"
	"net/http"

	"github.com/Bilalabbasid/CRM-sub000/internal/core/domain"
)

// ListOrders returns current orders, optionally filtered by status.
func (c *Client) ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	path := "/orders"
	if status != "" {
		path += "?status=" + string(status)
	}
	var out []domain.Order
	if err := c.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrder returns one order by ID.
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var out domain.Order
	if err := c.Do(ctx, http.MethodGet, "/orders/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder places a new order.
func (c *Client) CreateOrder(ctx context.Context, in domain.Order) (*domain.Order, error) {
	var out domain.Order
	if err := c.Do(ctx, http.MethodPost, "/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus advances an order through its lifecycle.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	body := map[string]string{"status": string(status)}
	var out domain.Order
	if err := c.Do(ctx, http.MethodPut, "/orders/"+id+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
