package client

import (
	"context"
	"net/http"

	"github.com/Bilalabbasid/CRM-sub000/internal/core/domain"
)

// ListCustomers returns all customer records.
func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	if err := c.Do(ctx, http.MethodGet, "/customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCustomer returns one customer by ID.
func (c *Client) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.Do(ctx, http.MethodGet, "/customers/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCustomer creates a customer and returns the stored record.
func (c *Client) CreateCustomer(ctx context.Context, in domain.Customer) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.Do(ctx, http.MethodPost, "/customers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCustomer updates a customer and returns the stored record.
func (c *Client) UpdateCustomer(ctx context.Context, id string, in domain.Customer) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.Do(ctx, http.MethodPut, "/customers/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCustomer removes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/customers/"+id, nil, nil)
}
