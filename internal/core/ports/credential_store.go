package ports

import (
	"context"

	"github.com/gestaoclientes/gestor/internal/core/domain"
)

// CredentialStore owns login identities (email + password hash). Users
// reference their identity by sharing its ID.
type CredentialStore interface {
	CreateIdentity(ctx context.Context, email, password string) (*domain.Identity, error)
	GetIdentity(ctx context.Context, id string) (*domain.Identity, error)
	UpdateEmail(ctx context.Context, id, email string) error
	UpdatePassword(ctx context.Context, id, password string) error
	DeleteIdentity(ctx context.Context, id string) error
	// VerifyPassword signs in with email and password. Any mismatch returns
	// domain.ErrInvalidCredentials.
	VerifyPassword(ctx context.Context, email, password string) (*domain.Identity, error)
}
