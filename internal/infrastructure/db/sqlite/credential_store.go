package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/pkg/password"
)

type CredentialStore struct {
	db *gorm.DB
}

func NewCredentialStore(db *gorm.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

func (s *CredentialStore) CreateIdentity(ctx context.Context, email, plain string) (*domain.Identity, error) {
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	m := CredentialModel{ID: uuid.NewString(), Email: email, PasswordHash: hash}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, mapWriteErr("insert credential", err)
	}
	return &domain.Identity{ID: m.ID, Email: m.Email}, nil
}

func (s *CredentialStore) GetIdentity(ctx context.Context, id string) (*domain.Identity, error) {
	m, err := s.first(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}
	return &domain.Identity{ID: m.ID, Email: m.Email}, nil
}

func (s *CredentialStore) UpdateEmail(ctx context.Context, id, email string) error {
	return s.set(ctx, id, map[string]any{"email": email})
}

func (s *CredentialStore) UpdatePassword(ctx context.Context, id, plain string) error {
	hash, err := password.Hash(plain)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.set(ctx, id, map[string]any{"password_hash": hash})
}

func (s *CredentialStore) DeleteIdentity(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&CredentialModel{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete credential: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

func (s *CredentialStore) VerifyPassword(ctx context.Context, email, plain string) (*domain.Identity, error) {
	m, err := s.first(ctx, "email = ?", email)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.Compare(m.PasswordHash, plain); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify password: %w", err)
	}
	return &domain.Identity{ID: m.ID, Email: m.Email}, nil
}

func (s *CredentialStore) first(ctx context.Context, query string, arg any) (*CredentialModel, error) {
	var m CredentialModel
	if err := s.db.WithContext(ctx).First(&m, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return &m, nil
}

func (s *CredentialStore) set(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	res := s.db.WithContext(ctx).Model(&CredentialModel{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return mapWriteErr("update credential", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}
