package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/pkg/client"
)

const defaultServer = "http://127.0.0.1:8080"

var errNotLoggedIn = errors.New("not logged in: run `gestorctl login` first")

// localSession is what login persists between invocations.
type localSession struct {
	Server  string          `json:"server"`
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
}

func sessionPath() (string, error) {
	if p := os.Getenv("GESTOR_SESSION_FILE"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gestor", "session.json"), nil
}

func loadSession() (*localSession, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errNotLoggedIn
		}
		return nil, err
	}
	var s localSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("corrupt session file %s: %w", path, err)
	}
	if s.Token == "" || s.Session == nil {
		return nil, errNotLoggedIn
	}
	if s.Server == "" {
		s.Server = defaultServer
	}
	return &s, nil
}

func saveSession(s *localSession) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func clearSession() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// requireCap loads the session and checks the capability locally, so a denied
// action never reaches the network.
func requireCap(capability domain.Capability) (*localSession, *client.Client, error) {
	s, err := loadSession()
	if err != nil {
		return nil, nil, err
	}
	if !domain.Can(s.Session, capability) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrForbidden, capability)
	}
	return s, client.New(s.Server, client.WithToken(s.Token)), nil
}

func requireAdmin() (*localSession, *client.Client, error) {
	s, err := loadSession()
	if err != nil {
		return nil, nil, err
	}
	if !s.Session.IsAdmin() {
		return nil, nil, fmt.Errorf("%w: administrators only", domain.ErrForbidden)
	}
	return s, client.New(s.Server, client.WithToken(s.Token)), nil
}
