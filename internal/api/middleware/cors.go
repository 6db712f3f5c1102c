package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LegacyCORS sets the permissive CORS headers the legacy handlers have always
// sent, whatever the configured origins.
func LegacyCORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
			h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")
			return next(c)
		}
	}
}

// PreflightOK answers OPTIONS with 200 and an empty body.
func PreflightOK(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
