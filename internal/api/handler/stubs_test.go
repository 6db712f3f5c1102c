package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gestaoclientes/gestor/internal/api/middleware"
	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

type stubAuthService struct {
	loginFn   func(username, password string) (*ports.LoginResult, error)
	loggedOut *domain.Session
	logoutErr error
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(username, password)
}

func (s *stubAuthService) Logout(_ context.Context, sess *domain.Session) error {
	s.loggedOut = sess
	return s.logoutErr
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrUnauthenticated
}

type stubClientService struct {
	clients   []domain.Client
	err       error
	lastIn    ports.ListClientsInput
	lastPatch ports.ClientPatch
	lastDate  string
	imported  string
}

func (s *stubClientService) ListActive(ctx context.Context, a *domain.Session) ([]domain.Client, error) {
	return s.List(ctx, a, ports.ListClientsInput{Status: domain.StatusActive})
}

func (s *stubClientService) ListInactive(ctx context.Context, a *domain.Session) ([]domain.Client, error) {
	return s.List(ctx, a, ports.ListClientsInput{Status: domain.StatusExClient})
}

func (s *stubClientService) List(_ context.Context, _ *domain.Session, in ports.ListClientsInput) ([]domain.Client, error) {
	s.lastIn = in
	return s.clients, s.err
}

func (s *stubClientService) Get(_ context.Context, _ *domain.Session, id string) (*domain.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Client{ID: id}, nil
}

func (s *stubClientService) Create(_ context.Context, _ *domain.Session, f domain.ClientFields) (*domain.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Client{ID: "c-1", ClientFields: f}, nil
}

func (s *stubClientService) Update(_ context.Context, _ *domain.Session, id string, p ports.ClientPatch) (*domain.Client, error) {
	s.lastPatch = p
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Client{ID: id}, nil
}

func (s *stubClientService) Deactivate(_ context.Context, _ *domain.Session, id, endDate string) (*domain.Client, error) {
	s.lastDate = endDate
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Client{ID: id, EndDate: &endDate}, nil
}

func (s *stubClientService) Reactivate(_ context.Context, _ *domain.Session, id string) (*domain.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Client{ID: id}, nil
}

func (s *stubClientService) Delete(context.Context, *domain.Session, string) error {
	return s.err
}

func (s *stubClientService) ImportBatch(context.Context, *domain.Session, []ports.ImportRow) (*ports.ImportResult, error) {
	return &ports.ImportResult{Rejected: []ports.RejectedRow{}}, s.err
}

func (s *stubClientService) Import(_ context.Context, _ *domain.Session, r io.Reader) (*ports.ImportResult, error) {
	b, _ := io.ReadAll(r)
	s.imported = string(b)
	if s.err != nil {
		return nil, s.err
	}
	return &ports.ImportResult{Inserted: 2, Rejected: []ports.RejectedRow{{Line: 3, Reason: "razao_social is required"}}}, nil
}

func (s *stubClientService) Export(_ context.Context, _ *domain.Session, w io.Writer, in ports.ListClientsInput) error {
	s.lastIn = in
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, "Razão Social\nAcme\n")
	return err
}

type stubUserService struct {
	users     []domain.User
	err       error
	lastQuery string
	lastID    string
	lastInput ports.CreateUserInput
	lastPatch ports.UserPatch
}

func (s *stubUserService) List(_ context.Context, _ *domain.Session, q string) ([]domain.User, error) {
	s.lastQuery = q
	return s.users, s.err
}

func (s *stubUserService) Get(_ context.Context, _ *domain.Session, id string) (*domain.User, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: id}, nil
}

func (s *stubUserService) Create(_ context.Context, _ *domain.Session, in ports.CreateUserInput) (*domain.User, error) {
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: "u-1", Username: in.Username, Role: in.Role}, nil
}

func (s *stubUserService) Update(_ context.Context, _ *domain.Session, id string, p ports.UserPatch) (*domain.User, error) {
	s.lastID = id
	s.lastPatch = p
	if s.err != nil {
		return nil, s.err
	}
	u := &domain.User{ID: id}
	if p.Username != nil {
		u.Username = *p.Username
	}
	return u, nil
}

func (s *stubUserService) Delete(_ context.Context, _ *domain.Session, id string) error {
	s.lastID = id
	return s.err
}

var adminSession = &domain.Session{UserID: "admin-1", Username: "admin", Role: domain.RoleAdmin}

// newContext builds an echo context for method/target with an optional body
// and, when sess is non-nil, the session the Auth middleware would have set.
func newContext(method, target, body string, sess *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set(middleware.SessionKey, sess)
	}
	return c, rec
}

// httpCode extracts the status of an error returned by a handler.
func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
