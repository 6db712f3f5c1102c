package ports

import (
	"context"

	"github.com/gestaoclientes/gestor/internal/core/domain"
)

// ClientFilter selects clients by lifecycle state. An empty Status matches all.
type ClientFilter struct {
	Status domain.ClientStatus
}

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	// CreateMany inserts the batch. A client refused by the unique tax id index
	// does not stop the others; its index in cs is returned in conflicts.
	CreateMany(ctx context.Context, cs []*domain.Client) (conflicts []int, err error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	// List returns the clients matching filter ordered by legal name ascending.
	List(ctx context.Context, filter ClientFilter) ([]domain.Client, error)
	// Update replaces the stored record with c. The last write wins.
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}
