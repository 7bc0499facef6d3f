package projects

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/dashboard"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// Handler serves project search.
type Handler struct {
	service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the project endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/projects/search", h.Search)
}

type SearchRequest struct {
	Query string `query:"q" validate:"required"`
}

type SearchResponse struct {
	Query   string `json:"query"`
	Count   int    `json:"count"`
	Results any    `json:"results"`
}

func (h *Handler) Search(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "projects.Search")
	defer span.End()

	req, err := utils.BindRequest[SearchRequest](c)
	if err != nil {
		return err
	}

	results := h.service.Search(ctx, req.Query)
	return c.JSON(http.StatusOK, SearchResponse{
		Query:   req.Query,
		Count:   len(results),
		Results: results,
	})
}
