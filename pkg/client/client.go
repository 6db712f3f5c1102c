// Package client is a Go SDK for the gestor HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

// Wire types shared with the server.
type (
	Record       = domain.Client
	ClientFields = domain.ClientFields
	User         = domain.User
	Permissions  = domain.Permissions
	Session      = domain.Session
	ImportResult = ports.ImportResult
	RejectedRow  = ports.RejectedRow
)

const defaultTimeout = 20 * time.Second

// ErrNotLoggedIn is returned by calls that need a token when none is set.
var ErrNotLoggedIn = errors.New("not logged in")

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, status int) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == status
}

type Client struct {
	httpClient *http.Client
	server     string

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(server string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		server:     strings.TrimRight(server, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, auth bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.server+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if auth {
		token := c.Token()
		if token == "" {
			return nil, ErrNotLoggedIn
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		defer func() { _ = resp.Body.Close() }()
		payload, _ := io.ReadAll(resp.Body)
		var env struct {
			Error string `json:"error"`
		}
		msg := strings.TrimSpace(string(payload))
		if json.Unmarshal(payload, &env) == nil && env.Error != "" {
			msg = env.Error
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}
	return resp, nil
}

func (c *Client) request(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	resp, err := c.do(ctx, method, path, body, "application/json", true)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// --- Auth ---

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *Session  `json:"user"`
}

// Login opens a session and keeps its token for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(map[string]string{"username": username, "password": password}); err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", buf, "application/json", false)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var out LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	c.setToken(out.Token)
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.request(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil); err != nil {
		return err
	}
	c.setToken("")
	return nil
}

func (c *Client) Me(ctx context.Context) (*Session, error) {
	var out Session
	if err := c.request(ctx, http.MethodGet, "/api/v1/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Clients ---

// ListParams filters client lists. Status is "active" (default) or "inactive".
type ListParams struct {
	Status string
	Query  string
}

func (p ListParams) encode() string {
	v := url.Values{}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) ListClients(ctx context.Context, p ListParams) ([]Record, error) {
	var out struct {
		Clients []Record `json:"clientes"`
	}
	if err := c.request(ctx, http.MethodGet, "/api/v1/clients"+p.encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Clients, nil
}

func (c *Client) GetClient(ctx context.Context, id string) (*Record, error) {
	var out Record
	if err := c.request(ctx, http.MethodGet, "/api/v1/clients/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateClient(ctx context.Context, f ClientFields) (*Record, error) {
	var out Record
	if err := c.request(ctx, http.MethodPost, "/api/v1/clients", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClient sends only the given fields, keyed by their JSON names.
func (c *Client) UpdateClient(ctx context.Context, id string, fields map[string]any) (*Record, error) {
	var out Record
	if err := c.request(ctx, http.MethodPatch, "/api/v1/clients/"+url.PathEscape(id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeactivateClient(ctx context.Context, id, endDate string) (*Record, error) {
	var out Record
	in := map[string]string{"data_saida": endDate}
	if err := c.request(ctx, http.MethodPost, "/api/v1/clients/"+url.PathEscape(id)+"/deactivate", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReactivateClient(ctx context.Context, id string) (*Record, error) {
	var out Record
	if err := c.request(ctx, http.MethodPost, "/api/v1/clients/"+url.PathEscape(id)+"/reactivate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/api/v1/clients/"+url.PathEscape(id), nil, nil)
}

// ImportClients uploads a semicolon separated sheet.
func (c *Client) ImportClients(ctx context.Context, r io.Reader) (*ImportResult, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/v1/clients/import", r, "text/csv", true)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var out ImportResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportClients streams the sheet into w.
func (c *Client) ExportClients(ctx context.Context, w io.Writer, p ListParams) error {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/clients/export"+p.encode(), nil, "", true)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, err = io.Copy(w, resp.Body)
	return err
}

// --- Users ---

type NewUser struct {
	Name        string       `json:"nome"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	Password    string       `json:"senha"`
	Role        string       `json:"tipo"`
	Permissions *Permissions `json:"permissoes,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context, query string) ([]User, error) {
	path := "/api/v1/users"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}
	var out struct {
		Users []User `json:"usuarios"`
	}
	if err := c.request(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var out User
	if err := c.request(ctx, http.MethodGet, "/api/v1/users/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, u NewUser) (*User, error) {
	var out User
	if err := c.request(ctx, http.MethodPost, "/api/v1/users", u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser sends only the given fields. An empty "senha" keeps the password.
func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]any) (*User, error) {
	var out User
	if err := c.request(ctx, http.MethodPatch, "/api/v1/users/"+url.PathEscape(id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/api/v1/users/"+url.PathEscape(id), nil, nil)
}

// Options fetches one of the fixed choice lists.
func (c *Client) Options(ctx context.Context, kind string) ([]string, error) {
	var out struct {
		Values []string `json:"values"`
	}
	if err := c.request(ctx, http.MethodGet, "/api/v1/options/"+url.PathEscape(kind), nil, &out); err != nil {
		return nil, err
	}
	return out.Values, nil
}
