package ports

import (
	"context"
	"time"

	"github.com/gestaoclientes/gestor/internal/core/domain"
)

// SessionStore persists session contexts keyed by token id.
type SessionStore interface {
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error
	// Load returns domain.ErrUnauthenticated when no session exists for tokenID.
	Load(ctx context.Context, tokenID string) (*domain.Session, error)
	Delete(ctx context.Context, tokenID string) error
}
