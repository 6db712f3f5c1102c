package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

const (
	defaultTokenTTL   = 8 * time.Hour
	bootstrapUsername = "admin"
	bootstrapEmail    = "admin@gestor.local"
)

// AuthService implements login, logout and token authentication. Sessions
// live in the session store; the JWT only carries the subject and token id.
type AuthService struct {
	users     ports.UserRepository
	creds     ports.CredentialStore
	sessions  ports.SessionStore
	jwtSecret []byte
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(
	users ports.UserRepository,
	creds ports.CredentialStore,
	sessions ports.SessionStore,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		users:     users,
		creds:     creds,
		sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
	}
}

// Login verifies username and password and opens a session. Unknown users,
// users without a credential identity and wrong passwords are all reported as
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	ident, err := s.creds.GetIdentity(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			s.log.Warn().Str("user_id", user.ID).Msg("user has no credential identity")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if _, err := s.creds.VerifyPassword(ctx, ident.Email, password); err != nil {
		return nil, err
	}

	expiresAt := s.now().Add(s.tokenTTL).UTC()
	session := domain.NewSession(user, uuid.NewString(), expiresAt)

	token, err := s.signToken(session)
	if err != nil {
		return nil, fmt.Errorf("login: sign token: %w", err)
	}
	if err := s.sessions.Save(ctx, session, s.tokenTTL); err != nil {
		return nil, fmt.Errorf("login: save session: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("login")
	return &ports.LoginResult{Token: token, ExpiresAt: expiresAt, Session: session}, nil
}

// Logout discards the session behind the token.
func (s *AuthService) Logout(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return domain.ErrUnauthenticated
	}
	if err := s.sessions.Delete(ctx, session.TokenID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Authenticate validates the token signature and expiry, loads the session it
// points to and refreshes it from the user row. A session whose user no longer
// exists is discarded.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || claims.ID == "" {
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.sessions.Load(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.Subject {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			if delErr := s.sessions.Delete(ctx, claims.ID); delErr != nil {
				s.log.Warn().Err(delErr).Str("user_id", claims.Subject).Msg("drop session of removed user")
			}
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return domain.NewSession(user, claims.ID, session.ExpiresAt), nil
}

// EnsureBootstrapAdmin creates the default administrator when no user with
// the administrator role exists. An empty password is replaced by a random
// one that is logged once.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, password string) error {
	n, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if n > 0 {
		return nil
	}

	generated := password == ""
	if generated {
		password = uuid.NewString()
	}

	ident, err := s.creds.CreateIdentity(ctx, bootstrapEmail, password)
	if err != nil {
		return fmt.Errorf("bootstrap admin: create identity: %w", err)
	}

	now := s.now().UTC()
	admin := &domain.User{
		ID:          ident.ID,
		Name:        "Administrador",
		Username:    bootstrapUsername,
		Email:       bootstrapEmail,
		Role:        domain.RoleAdmin,
		Permissions: domain.DefaultPermissions(domain.RoleAdmin),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		if delErr := s.creds.DeleteIdentity(ctx, ident.ID); delErr != nil {
			s.log.Warn().Err(delErr).Str("identity_id", ident.ID).Msg("failed to remove bootstrap identity")
		}
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	ev := s.log.Warn().Str("username", bootstrapUsername)
	if generated {
		ev = ev.Str("password", password)
	}
	ev.Msg("default administrator created")
	return nil
}

func (s *AuthService) signToken(session *domain.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   session.UserID,
		ID:        session.TokenID,
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.jwtSecret)
}
