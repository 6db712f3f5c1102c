package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gestaoclientes/gestor/internal/core/domain"
)

// Options handles GET /api/v1/options/:kind.
//
// @Summary      Fixed choice lists
// @Tags         options
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "regimes-tributarios, naturezas-juridicas, portes-empresa, modalidades or tipos-usuario"
// @Success      200   {object}  optionsResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/options/{kind} [get]
func Options(c echo.Context) error {
	kind := c.Param("kind")
	values, ok := domain.Options(kind)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown option list")
	}
	return c.JSON(http.StatusOK, optionsResponse{Kind: kind, Values: values})
}
