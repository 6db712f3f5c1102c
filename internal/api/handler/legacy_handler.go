package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gestaoclientes/gestor/internal/api/metrics"
	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

// LegacyHandler serves the flat routes consumed by the browser front end.
// Response bodies keep their historical shapes and bypass the central error
// handler.
type LegacyHandler struct {
	auth  ports.AuthService
	users ports.UserService
}

func NewLegacyHandler(auth ports.AuthService, users ports.UserService) *LegacyHandler {
	return &LegacyHandler{auth: auth, users: users}
}

type legacyLoginRequest struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
	Password string `json:"password"`
}

type legacyUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type legacyLoginResponse struct {
	User  legacyUser `json:"user"`
	Token string     `json:"token"`
}

type legacyUpdateRequest struct {
	ID          string              `json:"id"`
	Name        string              `json:"nome"`
	Username    string              `json:"username"`
	Role        string              `json:"tipo"`
	Permissions *domain.Permissions `json:"permissoes"`
}

type legacyDeleteRequest struct {
	ID string `json:"id"`
}

func legacyError(c echo.Context, status int, msg string) error {
	return c.JSON(status, errorResponse{Error: msg})
}

// LoginUsername handles POST /login-username.
//
// @Summary      Legacy login
// @Tags         legacy
// @Accept       json
// @Produce      json
// @Param        body  body      legacyLoginRequest  true  "username and senha"
// @Success      200   {object}  legacyLoginResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /login-username [post]
func (h *LegacyHandler) LoginUsername(c echo.Context) error {
	var req legacyLoginRequest
	if err := c.Bind(&req); err != nil {
		return legacyError(c, http.StatusUnauthorized, "invalid payload")
	}
	password := req.Senha
	if password == "" {
		password = req.Password
	}

	res, err := h.auth.Login(c.Request().Context(), req.Username, password)
	countLogin(err)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrValidation):
		return legacyError(c, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	case err != nil:
		return legacyError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, legacyLoginResponse{
		User: legacyUser{
			ID:       res.Session.UserID,
			Email:    res.Session.Email,
			Username: res.Session.Username,
		},
		Token: res.Token,
	})
}

// ListUsers handles GET /usuarios.
//
// @Summary      Legacy user list
// @Tags         legacy
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /usuarios [get]
func (h *LegacyHandler) ListUsers(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	users, err := h.users.List(c.Request().Context(), session, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success":  false,
			"error":    err.Error(),
			"usuarios": []domain.User{},
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "usuarios": users})
}

// CreateUser handles POST /criar-usuario.
//
// @Summary      Legacy user creation
// @Tags         legacy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  errorResponse
// @Router       /criar-usuario [post]
func (h *LegacyHandler) CreateUser(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return legacyError(c, http.StatusBadRequest, "invalid payload")
	}
	if _, err := h.users.Create(c.Request().Context(), session, req.toInput()); err != nil {
		return legacyError(c, http.StatusBadRequest, err.Error())
	}
	metrics.UserOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// UpdateUser handles PUT /atualizar-usuario.
//
// @Summary      Legacy user update
// @Tags         legacy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      legacyUpdateRequest  true  "id, nome, username, tipo, permissoes"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /atualizar-usuario [put]
func (h *LegacyHandler) UpdateUser(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req legacyUpdateRequest
	if err := c.Bind(&req); err != nil {
		return legacyError(c, http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.ID) == "" {
		return legacyError(c, http.StatusBadRequest, "id is required")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Role) == "" {
		return legacyError(c, http.StatusBadRequest, "nome, username and tipo are required")
	}

	patch := ports.UserPatch{
		Name:        &req.Name,
		Username:    &req.Username,
		Role:        &req.Role,
		Permissions: req.Permissions,
	}
	user, err := h.users.Update(c.Request().Context(), session, req.ID, patch)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return legacyError(c, http.StatusNotFound, err.Error())
	case err != nil:
		return legacyError(c, http.StatusBadRequest, err.Error())
	}
	metrics.UserOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"message": "user updated",
		"usuario": user,
	})
}

// DeleteUser handles DELETE /excluir-usuario.
//
// @Summary      Legacy user deletion
// @Tags         legacy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      legacyDeleteRequest  true  "id"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  errorResponse
// @Router       /excluir-usuario [delete]
func (h *LegacyHandler) DeleteUser(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req legacyDeleteRequest
	if err := c.Bind(&req); err != nil {
		return legacyError(c, http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.ID) == "" {
		return legacyError(c, http.StatusBadRequest, "id is required")
	}
	if err := h.users.Delete(c.Request().Context(), session, req.ID); err != nil {
		return legacyError(c, http.StatusBadRequest, err.Error())
	}
	metrics.UserOperationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "message": "user deleted"})
}
