package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubClientRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Client
	calls     int   // every repository call, for authorization-before-storage checks
	createErr error // if set, Create and CreateMany return this error
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{byID: make(map[string]*domain.Client)}
}

func cloneClient(c *domain.Client) *domain.Client {
	clone := *c
	if c.EndDate != nil {
		d := *c.EndDate
		clone.EndDate = &d
	}
	return &clone
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.byID {
		if c.TaxID != "" && existing.TaxID == c.TaxID {
			return domain.ErrConflict
		}
	}
	r.byID[c.ID] = cloneClient(c)
	return nil
}

func (r *stubClientRepo) CreateMany(ctx context.Context, cs []*domain.Client) ([]int, error) {
	var conflicts []int
	for i, c := range cs {
		if err := r.Create(ctx, c); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				conflicts = append(conflicts, i)
				continue
			}
			return nil, err
		}
	}
	return conflicts, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return cloneClient(c), nil
}

func (r *stubClientRepo) List(_ context.Context, f ports.ClientFilter) ([]domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	out := []domain.Client{}
	for _, c := range r.byID {
		if f.Status != "" && c.Status() != f.Status {
			continue
		}
		out = append(out, *cloneClient(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LegalName < out[j].LegalName })
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrClientNotFound
	}
	r.byID[c.ID] = cloneClient(c)
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.byID[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubUserRepo struct {
	byID      map[string]*domain.User
	calls     int
	createErr error
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.calls++
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.byID {
		if existing.Username == u.Username || existing.Email == u.Email {
			return domain.ErrConflict
		}
	}
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.calls++
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.calls++
	for _, u := range r.byID {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.calls++
	out := []domain.User{}
	for _, u := range r.byID {
		out = append(out, *cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	r.calls++
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.calls++
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range r.byID {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type stubIdentity struct {
	email    string
	password string
}

type stubCredentialStore struct {
	byID        map[string]*stubIdentity
	seq         int
	deleteErr   error
	passwordErr error
	deleted     []string
}

func newStubCredentialStore() *stubCredentialStore {
	return &stubCredentialStore{byID: make(map[string]*stubIdentity)}
}

func (s *stubCredentialStore) CreateIdentity(_ context.Context, email, password string) (*domain.Identity, error) {
	for _, i := range s.byID {
		if i.email == email {
			return nil, domain.ErrConflict
		}
	}
	s.seq++
	id := fmt.Sprintf("id-%d", s.seq)
	s.byID[id] = &stubIdentity{email: email, password: password}
	return &domain.Identity{ID: id, Email: email}, nil
}

func (s *stubCredentialStore) GetIdentity(_ context.Context, id string) (*domain.Identity, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return &domain.Identity{ID: id, Email: i.email}, nil
}

func (s *stubCredentialStore) UpdateEmail(_ context.Context, id, email string) error {
	i, ok := s.byID[id]
	if !ok {
		return domain.ErrIdentityNotFound
	}
	i.email = email
	return nil
}

func (s *stubCredentialStore) UpdatePassword(_ context.Context, id, password string) error {
	if s.passwordErr != nil {
		return s.passwordErr
	}
	i, ok := s.byID[id]
	if !ok {
		return domain.ErrIdentityNotFound
	}
	i.password = password
	return nil
}

func (s *stubCredentialStore) DeleteIdentity(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.byID[id]; !ok {
		return domain.ErrIdentityNotFound
	}
	delete(s.byID, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubCredentialStore) VerifyPassword(_ context.Context, email, password string) (*domain.Identity, error) {
	for id, i := range s.byID {
		if i.email == email && i.password == password {
			return &domain.Identity{ID: id, Email: email}, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

type stubSessionStore struct {
	byToken map[string]domain.Session
	ttl     time.Duration
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{byToken: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, sess *domain.Session, ttl time.Duration) error {
	s.byToken[sess.TokenID] = *sess
	s.ttl = ttl
	return nil
}

func (s *stubSessionStore) Load(_ context.Context, tokenID string) (*domain.Session, error) {
	sess, ok := s.byToken[tokenID]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return &sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, tokenID string) error {
	delete(s.byToken, tokenID)
	return nil
}

type stubJanitor struct {
	queued []string
}

func (j *stubJanitor) Enqueue(id string) {
	j.queued = append(j.queued, id)
}

func adminSession() *domain.Session {
	return &domain.Session{TokenID: "t-admin", UserID: "admin-1", Username: "admin", Role: domain.RoleAdmin}
}

func operatorSession(p domain.Permissions) *domain.Session {
	return &domain.Session{TokenID: "t-op", UserID: "op-1", Username: "op", Role: domain.RoleFiscal, Permissions: p}
}
