package client

import (
	"context"
	"net/http"

	"github.com/Bilalabbasid/CRM-sub000/internal/core/domain"
)

// ListInventory returns current stock levels.
func (c *Client) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	if err := c.Do(ctx, http.MethodGet, "/inventory", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdjustInventory sets the quantity of one stock item.
func (c *Client) AdjustInventory(ctx context.Context, id string, quantity float64) (*domain.InventoryItem, error) {
	body := map[string]float64{"quantity": quantity}
	var out domain.InventoryItem
	if err := c.Do(ctx, http.MethodPut, "/inventory/"+id, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInventoryItem registers a new stock item.
func (c *Client) CreateInventoryItem(ctx context.Context, in domain.InventoryItem) (*domain.InventoryItem, error) {
	var out domain.InventoryItem
	if err := c.Do(ctx, http.MethodPost, "/inventory", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
