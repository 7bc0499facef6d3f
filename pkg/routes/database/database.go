package database

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/dashboard"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Handler serves the reconciled project table.
type Handler struct {
	service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the database endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/database", h.List)
	e.GET("/api/v1/database/export", h.Export)
}

func (h *Handler) List(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "database.List")
	defer span.End()

	return c.JSON(http.StatusOK, h.service.Database(ctx))
}

func (h *Handler) Export(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "database.Export")
	defer span.End()

	doc := h.service.DatabaseCSV(ctx)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="database.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(doc))
}
