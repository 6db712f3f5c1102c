package ports

import (
	"context"

	"github.com/gestaoclientes/gestor/internal/core/domain"
)

// UserRepository defines persistence operations for operator accounts.
// Username and email are unique; violations surface as domain.ErrConflict.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns all users ordered by name.
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role string) (int64, error)
}
