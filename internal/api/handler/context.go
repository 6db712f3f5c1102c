package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gestaoclientes/gestor/internal/api/middleware"
	"github.com/gestaoclientes/gestor/internal/core/domain"
)

// ctxSession returns the session stored by the Auth middleware. Its absence
// means the route was registered without Auth, which is rejected with 401.
func ctxSession(c echo.Context) (*domain.Session, error) {
	s := middleware.SessionFrom(c)
	if s == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return s, nil
}

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
