package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gestaoclientes/gestor/internal/core/domain"
)

// RequireCapability lets the request through when the session may perform c.
// Services check the same policy again; this only fails fast.
func RequireCapability(c domain.Capability) echo.MiddlewareFunc {
	return guard(func(s *domain.Session) bool { return domain.Can(s, c) })
}

// RequireAdmin restricts a route to administrators.
func RequireAdmin() echo.MiddlewareFunc {
	return guard(func(s *domain.Session) bool { return s.IsAdmin() })
}

func guard(allowed func(*domain.Session) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := SessionFrom(c)
			if s == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
			}
			if !allowed(s) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
