package quality

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/dashboard"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// Handler serves the data quality views.
type Handler struct {
	service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the data quality endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/quality/duplicates", h.Duplicates)
	e.GET("/api/v1/quality/unmapped", h.Unmapped)
	e.GET("/api/v1/quality/:view/export", h.Export)
}

func (h *Handler) Duplicates(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "quality.Duplicates")
	defer span.End()

	return c.JSON(http.StatusOK, h.service.Duplicates(ctx))
}

func (h *Handler) Unmapped(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "quality.Unmapped")
	defer span.End()

	return c.JSON(http.StatusOK, h.service.Unmapped(ctx))
}

type ExportRequest struct {
	View string `param:"view" validate:"required,oneof=duplicates unmapped"`
}

func (h *Handler) Export(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "quality.Export")
	defer span.End()

	req, err := utils.BindRequest[ExportRequest](c)
	if err != nil {
		return err
	}

	doc, err := h.service.QualityCSV(ctx, req.View)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("%s.csv", req.View)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(doc))
}
