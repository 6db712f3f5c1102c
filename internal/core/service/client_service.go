package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

type clientService struct {
	repo ports.ClientRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewClientService returns a ClientService implementation.
func NewClientService(repo ports.ClientRepository, log zerolog.Logger) ports.ClientService {
	return &clientService{repo: repo, log: log, now: time.Now}
}

func authorize(actor *domain.Session, c domain.Capability) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	if !domain.Can(actor, c) {
		return domain.ErrForbidden
	}
	return nil
}

func (s *clientService) ListActive(ctx context.Context, actor *domain.Session) ([]domain.Client, error) {
	return s.List(ctx, actor, ports.ListClientsInput{Status: domain.StatusActive})
}

func (s *clientService) ListInactive(ctx context.Context, actor *domain.Session) ([]domain.Client, error) {
	return s.List(ctx, actor, ports.ListClientsInput{Status: domain.StatusExClient})
}

// List fetches one lifecycle partition and narrows it with the search term.
func (s *clientService) List(ctx context.Context, actor *domain.Session, in ports.ListClientsInput) ([]domain.Client, error) {
	if err := authorize(actor, domain.CapView); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}
	if status != domain.StatusActive && status != domain.StatusExClient {
		return nil, domain.NewValidationError("status", "must be active or inactive")
	}

	corpus, err := s.repo.List(ctx, ports.ClientFilter{Status: status})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return domain.SearchClients(in.Query, corpus), nil
}

func (s *clientService) Get(ctx context.Context, actor *domain.Session, id string) (*domain.Client, error) {
	if err := authorize(actor, domain.CapView); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Create stores a new active client stamped with the acting user and time.
func (s *clientService) Create(ctx context.Context, actor *domain.Session, fields domain.ClientFields) (*domain.Client, error) {
	if err := authorize(actor, domain.CapCreate); err != nil {
		return nil, err
	}
	c, err := s.newClient(actor, fields)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.log.Info().Str("client_id", c.ID).Str("created_by", actor.UserID).Msg("client created")
	return s.repo.FindByID(ctx, c.ID)
}

func (s *clientService) newClient(actor *domain.Session, fields domain.ClientFields) (*domain.Client, error) {
	fields.LegalName = strings.TrimSpace(fields.LegalName)
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	return &domain.Client{
		ID:           uuid.NewString(),
		ClientFields: fields,
		CreatedBy:    actor.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Update applies a partial patch. The lifecycle date is never touched here.
func (s *clientService) Update(ctx context.Context, actor *domain.Session, id string, patch ports.ClientPatch) (*domain.Client, error) {
	if err := authorize(actor, domain.CapEdit); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, "update", func(c *domain.Client) error {
		patch.Apply(&c.ClientFields)
		c.LegalName = strings.TrimSpace(c.LegalName)
		return c.Validate()
	})
}

func (s *clientService) Deactivate(ctx context.Context, actor *domain.Session, id, endDate string) (*domain.Client, error) {
	if err := authorize(actor, domain.CapEdit); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, "deactivate", func(c *domain.Client) error {
		return c.Deactivate(endDate)
	})
}

func (s *clientService) Reactivate(ctx context.Context, actor *domain.Session, id string) (*domain.Client, error) {
	if err := authorize(actor, domain.CapEdit); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, "reactivate", func(c *domain.Client) error {
		return c.Reactivate()
	})
}

// mutate loads the record, applies fn, stores it and returns the stored state.
func (s *clientService) mutate(ctx context.Context, id, op string, fn func(*domain.Client) error) (*domain.Client, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s client: %w", op, err)
	}
	if err := fn(c); err != nil {
		return nil, fmt.Errorf("%s client: %w", op, err)
	}
	c.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("%s client: %w", op, err)
	}

	s.log.Info().Str("client_id", id).Str("op", op).Str("status", string(c.Status())).Msg("client updated")
	return s.repo.FindByID(ctx, id)
}

func (s *clientService) Delete(ctx context.Context, actor *domain.Session, id string) error {
	if err := authorize(actor, domain.CapDelete); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	s.log.Info().Str("client_id", id).Str("deleted_by", actor.UserID).Msg("client deleted")
	return nil
}
