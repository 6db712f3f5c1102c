package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gestaoclientes/gestor/internal/api/metrics"
	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates an operator and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		countLogin(err)
		return err
	}
	countLogin(nil)

	return c.JSON(http.StatusOK, loginResponse{Token: res.Token, ExpiresAt: res.ExpiresAt, User: res.Session})
}

// Logout ends the current session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the session context of the caller.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Session
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

func countLogin(err error) {
	switch {
	case err == nil:
		metrics.LoginsTotal.WithLabelValues("success").Inc()
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	default:
		metrics.LoginsTotal.WithLabelValues("error").Inc()
	}
}
