package ports

import (
	"context"
	"time"

	"github.com/gestaoclientes/gestor/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Session   *domain.Session
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, s *domain.Session) error
	// Authenticate resolves a bearer token to its persisted session.
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}
