package client

import (
	"context"
	"net/http"

	"github.com/Bilalabbasid/CRM-sub000/internal/core/domain"
)

// ListMenu returns the full menu.
func (c *Client) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	if err := c.Do(ctx, http.MethodGet, "/menu", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMenuItem adds a dish to the menu.
func (c *Client) CreateMenuItem(ctx context.Context, in domain.MenuItem) (*domain.MenuItem, error) {
	var out domain.MenuItem
	if err := c.Do(ctx, http.MethodPost, "/menu", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMenuItem updates a dish and returns the stored record.
func (c *Client) UpdateMenuItem(ctx context.Context, id string, in domain.MenuItem) (*domain.MenuItem, error) {
	var out domain.MenuItem
	if err := c.Do(ctx, http.MethodPut, "/menu/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMenuItem removes a dish from the menu.
func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/menu/"+id, nil, nil)
}
