package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gestaoclientes/gestor/internal/core/domain"
)

// SessionKey is the echo.Context key holding the caller's *domain.Session.
const SessionKey = "session"

// Authenticator resolves a bearer token to a live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// Auth requires a bearer token whose session still exists and stores that
// session in the context.
func Auth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			session, err := auth.Authenticate(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				return err
			}

			c.Set(SessionKey, session)
			return next(c)
		}
	}
}

// SessionFrom returns the session stored by Auth, or nil.
func SessionFrom(c echo.Context) *domain.Session {
	s, _ := c.Get(SessionKey).(*domain.Session)
	return s
}
