package overview

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/dashboard"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Handler serves the dashboard overview.
type Handler struct {
	service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the overview endpoint
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/dashboard", h.Overview)
}

func (h *Handler) Overview(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "overview.Overview")
	defer span.End()

	return c.JSON(http.StatusOK, h.service.Overview(ctx))
}
