package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

// CredentialJanitor retries the removal of credential identities that could
// not be deleted inline.
type CredentialJanitor interface {
	Enqueue(identityID string)
}

type userService struct {
	users   ports.UserRepository
	creds   ports.CredentialStore
	janitor CredentialJanitor
	log     zerolog.Logger
	now     func() time.Time
}

// NewUserService returns a UserService implementation.
func NewUserService(
	users ports.UserRepository,
	creds ports.CredentialStore,
	janitor CredentialJanitor,
	log zerolog.Logger,
) ports.UserService {
	return &userService{users: users, creds: creds, janitor: janitor, log: log, now: time.Now}
}

func requireAdmin(actor *domain.Session) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

func (s *userService) List(ctx context.Context, actor *domain.Session, query string) ([]domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	corpus, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return domain.SearchUsers(query, corpus), nil
}

func (s *userService) Get(ctx context.Context, actor *domain.Session, id string) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

// Create registers the credential identity first and then the user row that
// shares its id. A failed row insert removes the identity again; when that
// fails too the identity is queued for cleanup.
func (s *userService) Create(ctx context.Context, actor *domain.Session, in ports.CreateUserInput) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateNewUser(in); err != nil {
		return nil, err
	}

	perms := domain.DefaultPermissions(in.Role)
	if in.Permissions != nil {
		perms = *in.Permissions
	}

	ident, err := s.creds.CreateIdentity(ctx, in.Email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: identity: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:          ident.ID,
		Name:        in.Name,
		Username:    in.Username,
		Email:       in.Email,
		Role:        in.Role,
		Permissions: perms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.removeIdentity(ctx, ident.ID, "compensate failed user insert")
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Str("created_by", actor.UserID).Msg("user created")
	return user, nil
}

func validateNewUser(in ports.CreateUserInput) error {
	switch {
	case in.Name == "":
		return domain.NewValidationError("nome", "is required")
	case in.Username == "":
		return domain.NewValidationError("username", "is required")
	case in.Email == "":
		return domain.NewValidationError("email", "is required")
	case in.Password == "":
		return domain.NewValidationError("senha", "is required")
	case !domain.IsValidRole(in.Role):
		return domain.NewValidationError("tipo", "must be one of: "+strings.Join(domain.Roles, " "))
	}
	return nil
}

// Update applies a partial patch. Email and password changes are pushed to
// the credential identity before the row is written.
func (s *userService) Update(ctx context.Context, actor *domain.Session, id string, patch ports.UserPatch) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	original := *user

	if patch.Name != nil {
		if user.Name = strings.TrimSpace(*patch.Name); user.Name == "" {
			return nil, domain.NewValidationError("nome", "must not be empty")
		}
	}
	if patch.Username != nil {
		if user.Username = strings.TrimSpace(*patch.Username); user.Username == "" {
			return nil, domain.NewValidationError("username", "must not be empty")
		}
	}
	if patch.Role != nil {
		if !domain.IsValidRole(*patch.Role) {
			return nil, domain.NewValidationError("tipo", "must be one of: "+strings.Join(domain.Roles, " "))
		}
		user.Role = *patch.Role
	}
	if patch.Permissions != nil {
		user.Permissions = *patch.Permissions
	}

	if patch.Credential != nil && patch.Credential.Password == "" {
		return nil, domain.NewValidationError("senha", "must not be empty")
	}

	previousEmail := user.Email
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if email == "" {
			return nil, domain.NewValidationError("email", "must not be empty")
		}
		if email != user.Email {
			if err := s.creds.UpdateEmail(ctx, id, email); err != nil {
				return nil, fmt.Errorf("update user: identity email: %w", err)
			}
			user.Email = email
		}
	}

	user.UpdatedAt = s.now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		s.revertEmail(ctx, id, user.Email, previousEmail)
		return nil, fmt.Errorf("update user: %w", err)
	}

	// The password cannot be restored, so it is written last.
	if patch.Credential != nil {
		if err := s.creds.UpdatePassword(ctx, id, patch.Credential.Password); err != nil {
			if revertErr := s.users.Update(ctx, &original); revertErr != nil {
				s.log.Warn().Err(revertErr).Str("user_id", id).Msg("user row keeps update after password failure")
			}
			s.revertEmail(ctx, id, user.Email, previousEmail)
			return nil, fmt.Errorf("update user: identity password: %w", err)
		}
	}
	return s.users.FindByID(ctx, id)
}

func (s *userService) revertEmail(ctx context.Context, id, current, previous string) {
	if current == previous {
		return
	}
	if err := s.creds.UpdateEmail(ctx, id, previous); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("identity email diverges from user row")
	}
}

// Delete removes the user row and then its credential identity. Failing to
// remove the identity does not fail the call.
func (s *userService) Delete(ctx context.Context, actor *domain.Session, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if id == actor.UserID {
		return domain.NewValidationError("id", "cannot delete the current user")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.removeIdentity(ctx, id, "delete user identity")

	s.log.Info().Str("user_id", id).Str("deleted_by", actor.UserID).Msg("user deleted")
	return nil
}

func (s *userService) removeIdentity(ctx context.Context, id, reason string) {
	err := s.creds.DeleteIdentity(ctx, id)
	if err == nil || errors.Is(err, domain.ErrIdentityNotFound) {
		return
	}
	s.log.Warn().Err(err).Str("identity_id", id).Str("step", reason).Msg("credential identity left behind, queued for cleanup")
	if s.janitor != nil {
		s.janitor.Enqueue(id)
	}
}
