package client

import (
	"context"
	"net/http"

	"github.com/Bilalabbasid/CRM-sub000/internal/core/domain"
)

// ListStaff returns all staff records.
func (c *Client) ListStaff(ctx context.Context) ([]domain.StaffMember, error) {
	var out []domain.StaffMember
	if err := c.Do(ctx, http.MethodGet, "/staff", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStaffMember adds an employee.
func (c *Client) CreateStaffMember(ctx context.Context, in domain.StaffMember) (*domain.StaffMember, error) {
	var out domain.StaffMember
	if err := c.Do(ctx, http.MethodPost, "/staff", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStaffMember updates an employee record.
func (c *Client) UpdateStaffMember(ctx context.Context, id string, in domain.StaffMember) (*domain.StaffMember, error) {
	var out domain.StaffMember
	if err := c.Do(ctx, http.MethodPut, "/staff/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStaffMember removes an employee record.
func (c *Client) DeleteStaffMember(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/staff/"+id, nil, nil)
}
