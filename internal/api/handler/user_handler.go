package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gestaoclientes/gestor/internal/api/metrics"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

// UserHandler handles the administrator-only user management endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/v1/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Search term"
// @Success      200  {object}  userListResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	users, err := h.service.List(c.Request().Context(), session, c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: users, Count: len(users)})
}

// Get handles GET /api/v1/users/:id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	user, err := h.service.Get(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /api/v1/users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.service.Create(c.Request().Context(), session, req.toInput())
	if err != nil {
		return err
	}
	metrics.UserOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Update handles PATCH /api/v1/users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.service.Update(c.Request().Context(), session, c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	metrics.UserOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/v1/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id   path  string  true  "User id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), session, c.Param("id")); err != nil {
		return err
	}
	metrics.UserOperationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
