package ports

import (
	"context"

	"github.com/gestaoclientes/gestor/internal/core/domain"
)

// CreateUserInput carries everything needed to register an operator.
// A nil Permissions applies domain.DefaultPermissions for the role.
type CreateUserInput struct {
	Name        string
	Username    string
	Email       string
	Password    string
	Role        string
	Permissions *domain.Permissions
}

// UserPatch is a partial update. A nil Credential keeps the stored password.
type UserPatch struct {
	Name        *string
	Username    *string
	Email       *string
	Role        *string
	Permissions *domain.Permissions
	Credential  *domain.NewCredential
}

// UserService defines the user administration use cases. All of them
// require an administrator session.
type UserService interface {
	List(ctx context.Context, actor *domain.Session, query string) ([]domain.User, error)
	Get(ctx context.Context, actor *domain.Session, id string) (*domain.User, error)
	Create(ctx context.Context, actor *domain.Session, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor *domain.Session, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.Session, id string) error
}
