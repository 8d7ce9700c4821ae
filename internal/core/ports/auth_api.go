package ports

import (
	"context"

	"github.com/Bilalabbasid/CRM-sub000/internal/core/domain"
)

// AuthAPI is the slice of the backend gateway the session manager depends
// on. SetToken is the single mutation path into the credential store from
// outside the session's own flows: SetToken(token) persists, SetToken("")
// clears.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.AuthSession, error)
	Register(ctx context.Context, in domain.Registration) (*domain.AuthSession, error)
	CurrentUser(ctx context.Context) (*domain.Identity, error)
	UpdateProfile(ctx context.Context, up domain.ProfileUpdate) (*domain.Identity, error)
	SetToken(token string)
}
