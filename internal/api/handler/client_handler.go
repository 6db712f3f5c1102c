package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gestaoclientes/gestor/internal/api/metrics"
	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

const maxImportBytes = 10 << 20

// ClientHandler handles HTTP requests for client records.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// listInput reads ?status=active|inactive&q=.
func listInput(c echo.Context) (ports.ListClientsInput, error) {
	in := ports.ListClientsInput{Query: c.QueryParam("q")}
	switch c.QueryParam("status") {
	case "", "active":
		in.Status = domain.StatusActive
	case "inactive", string(domain.StatusExClient):
		in.Status = domain.StatusExClient
	default:
		return in, echo.NewHTTPError(http.StatusBadRequest, "status must be active or inactive")
	}
	return in, nil
}

// List handles GET /api/v1/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "active (default) or inactive"
// @Param        q       query     string  false  "Search term"
// @Success      200     {object}  clientListResponse
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /api/v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	in, err := listInput(c)
	if err != nil {
		return err
	}
	clients, err := h.service.List(c.Request().Context(), session, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientListResponse{Clients: clients, Count: len(clients)})
}

// Get handles GET /api/v1/clients/:id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	client, err := h.service.Get(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Create handles POST /api/v1/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.ClientFields  true  "Client fields"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req domain.ClientFields
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	client, err := h.service.Create(c.Request().Context(), session, req)
	if err != nil {
		return err
	}
	metrics.ClientOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, client)
}

// Update handles PATCH /api/v1/clients/:id.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Client id"
// @Param        body  body      clientPatchRequest  true  "Fields to change"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/clients/{id} [patch]
func (h *ClientHandler) Update(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req clientPatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	client, err := h.service.Update(c.Request().Context(), session, c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	metrics.ClientOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, client)
}

// Deactivate handles POST /api/v1/clients/:id/deactivate.
//
// @Summary      Move a client to ex-client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Client id"
// @Param        body  body      deactivateRequest  true  "End date (YYYY-MM-DD or DD/MM/YYYY)"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/clients/{id}/deactivate [post]
func (h *ClientHandler) Deactivate(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req deactivateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	endDate := req.EndDate
	if iso, err := domain.DisplayToDate(endDate); err == nil {
		endDate = iso
	}
	client, err := h.service.Deactivate(c.Request().Context(), session, c.Param("id"), endDate)
	if err != nil {
		return err
	}
	metrics.ClientOperationsTotal.WithLabelValues("deactivate").Inc()
	return c.JSON(http.StatusOK, client)
}

// Reactivate handles POST /api/v1/clients/:id/reactivate.
//
// @Summary      Reactivate an ex-client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      422  {object}  errorResponse
// @Router       /api/v1/clients/{id}/reactivate [post]
func (h *ClientHandler) Reactivate(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	client, err := h.service.Reactivate(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return err
	}
	metrics.ClientOperationsTotal.WithLabelValues("reactivate").Inc()
	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /api/v1/clients/:id.
//
// @Summary      Delete a client permanently
// @Tags         clients
// @Security     BearerAuth
// @Param        id   path  string  true  "Client id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), session, c.Param("id")); err != nil {
		return err
	}
	metrics.ClientOperationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Import handles POST /api/v1/clients/import with a semicolon separated body.
//
// @Summary      Import clients from a sheet
// @Tags         clients
// @Accept       text/csv
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ImportResult
// @Failure      400  {object}  errorResponse
// @Router       /api/v1/clients/import [post]
func (h *ClientHandler) Import(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	body := http.MaxBytesReader(c.Response(), c.Request().Body, maxImportBytes)
	res, err := h.service.Import(c.Request().Context(), session, body)
	if err != nil {
		return err
	}
	metrics.ClientImportRowsTotal.WithLabelValues("inserted").Add(float64(res.Inserted))
	metrics.ClientImportRowsTotal.WithLabelValues("rejected").Add(float64(len(res.Rejected)))
	return c.JSON(http.StatusOK, res)
}

// Export handles GET /api/v1/clients/export.
//
// @Summary      Export clients as a sheet
// @Tags         clients
// @Produce      text/csv
// @Security     BearerAuth
// @Param        status  query  string  false  "active (default) or inactive"
// @Param        q       query  string  false  "Search term"
// @Success      200
// @Router       /api/v1/clients/export [get]
func (h *ClientHandler) Export(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	in, err := listInput(c)
	if err != nil {
		return err
	}

	// Render to memory first so a failure still produces a JSON error.
	var buf bytes.Buffer
	if err := h.service.Export(c.Request().Context(), session, &buf, in); err != nil {
		return err
	}
	name := fmt.Sprintf("clientes-%s-%s.csv", in.Status, time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
