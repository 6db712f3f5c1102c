package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
	"github.com/gestaoclientes/gestor/internal/infrastructure/http/handlers"
)

type routerAuth struct {
	sessions map[string]*domain.Session
}

func (a *routerAuth) Login(_ context.Context, username, password string) (*ports.LoginResult, error) {
	if username != "admin" || password != "pw" {
		return nil, domain.ErrInvalidCredentials
	}
	s := a.sessions["admin-token"]
	return &ports.LoginResult{Token: "admin-token", ExpiresAt: time.Now().Add(time.Hour), Session: s}, nil
}

func (a *routerAuth) Logout(context.Context, *domain.Session) error { return nil }

func (a *routerAuth) Authenticate(_ context.Context, token string) (*domain.Session, error) {
	if s, ok := a.sessions[token]; ok {
		return s, nil
	}
	return nil, domain.ErrUnauthenticated
}

// routerClients records whether any storage-facing method was reached.
type routerClients struct {
	ports.ClientService
	reached bool
}

func (c *routerClients) List(context.Context, *domain.Session, ports.ListClientsInput) ([]domain.Client, error) {
	c.reached = true
	return []domain.Client{}, nil
}

func (c *routerClients) Delete(context.Context, *domain.Session, string) error {
	c.reached = true
	return nil
}

type routerUsers struct {
	ports.UserService
}

func (routerUsers) List(context.Context, *domain.Session, string) ([]domain.User, error) {
	return []domain.User{{ID: "admin-1", Username: "admin"}}, nil
}

func newTestRouter(t *testing.T) (http.Handler, *routerClients) {
	t.Helper()
	auth := &routerAuth{sessions: map[string]*domain.Session{
		"admin-token":  {UserID: "admin-1", Username: "admin", Email: "admin@x.com", Role: domain.RoleAdmin},
		"viewer-token": {UserID: "u-2", Role: domain.RoleHR, Permissions: domain.Permissions{CanView: true}},
	}}
	clients := &routerClients{}
	e := NewRouter(Deps{
		Auth:        auth,
		Clients:     clients,
		Users:       routerUsers{},
		Checks:      map[string]handlers.Check{"sqlite": func(context.Context) error { return nil }},
		Log:         zerolog.New(io.Discard),
		CORSOrigins: []string{"https://app.example.com"},
		Registerer:  prometheus.NewRegistry(),
	})
	return e, clients
}

func do(h http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	h, _ := newTestRouter(t)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/health/ready", "", "").Code)
}

func TestRouter_LegacyPreflight(t *testing.T) {
	h, _ := newTestRouter(t)
	for _, path := range []string{"/login-username", "/usuarios", "/criar-usuario", "/atualizar-usuario", "/excluir-usuario"} {
		rec := do(h, http.MethodOptions, path, "", "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), path)
	}
}

func TestRouter_LegacyWrongMethod(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := do(h, http.MethodGet, "/excluir-usuario", "", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
}

func TestRouter_LegacyLoginAndAdminGate(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodPost, "/login-username", "", `{"username":"admin","senha":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	assert.Equal(t, http.StatusUnauthorized, do(h, http.MethodGet, "/usuarios", "", "").Code)
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodGet, "/usuarios", "viewer-token", "").Code)

	rec = do(h, http.MethodGet, "/usuarios", "admin-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestRouter_NativeLogin(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, rec.Body.String())

	rec = do(h, http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CapabilityCheckedBeforeService(t *testing.T) {
	h, clients := newTestRouter(t)

	rec := do(h, http.MethodDelete, "/api/v1/clients/c-1", "viewer-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, clients.reached)

	rec = do(h, http.MethodGet, "/api/v1/clients", "viewer-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, clients.reached)
}

func TestRouter_UsersRequireAdmin(t *testing.T) {
	h, _ := newTestRouter(t)
	assert.Equal(t, http.StatusUnauthorized, do(h, http.MethodGet, "/api/v1/users", "", "").Code)
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodGet, "/api/v1/users", "viewer-token", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/v1/users", "admin-token", "").Code)
}

func TestRouter_NativeCORSUsesConfiguredOrigins(t *testing.T) {
	h, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Authorization", "Bearer viewer-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
