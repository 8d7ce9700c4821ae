package client

import (
	"context"
	"net/http"

	"github.com/Bilalabbasid/CRM-sub000/internal/core/domain"
)

// ListReservations returns upcoming reservations.
func (c *Client) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := c.Do(ctx, http.MethodGet, "/reservations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReservation books a table.
func (c *Client) CreateReservation(ctx context.Context, in domain.Reservation) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := c.Do(ctx, http.MethodPost, "/reservations", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelReservation cancels a booking.
func (c *Client) CancelReservation(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/reservations/"+id, nil, nil)
}
