package client

import (
	"context"
	"net/http"

	"github.com/Bilalabbasid/CRM-sub000/internal/core/domain"
)

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin owner manager staff"`
}

type profileRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// authResponse mirrors the backend's login/register payload: {token, user}.
type authResponse struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}

// userResponse mirrors the backend's profile payload: {user}.
type userResponse struct {
	User domain.Identity `json:"user"`
}

// Login exchanges credentials for a bearer token and profile. It does not
// persist the token; the session manager decides that via SetToken.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	req := loginRequest{Email: email, Password: password}
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	var resp authResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &domain.AuthSession{Token: resp.Token, User: resp.User}, nil
}

// Register creates an account and returns the issued token and profile.
func (c *Client) Register(ctx context.Context, in domain.Registration) (*domain.AuthSession, error) {
	req := registerRequest{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Phone:    in.Phone,
		Role:     string(in.Role),
	}
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	var resp authResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &domain.AuthSession{Token: resp.Token, User: resp.User}, nil
}

// CurrentUser resolves the profile behind the held credential.
func (c *Client) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	var resp userResponse
	if err := c.Do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateProfile sends a partial profile mutation and returns the server's
// canonical profile, which callers must adopt wholesale.
func (c *Client) UpdateProfile(ctx context.Context, up domain.ProfileUpdate) (*domain.Identity, error) {
	req := profileRequest(up)
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	var resp userResponse
	if err := c.Do(ctx, http.MethodPut, "/auth/profile", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
