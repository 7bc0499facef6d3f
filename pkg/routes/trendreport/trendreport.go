package trendreport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/dashboard"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Handler serves AI trend summaries.
type Handler struct {
	service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the trend endpoint
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/trends", h.Summarize)
}

type SummarizeResponse struct {
	Trends string `json:"trends"`
}

func (h *Handler) Summarize(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "trendreport.Summarize")
	defer span.End()

	summary, err := h.service.Trends(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SummarizeResponse{Trends: summary})
}
