// Package dashboard orchestrates a request's path from spreadsheet
// fetch through decode, dedup and reconciliation to the view shapes
// the routes return. Everything is computed fresh per request and
// discarded after the response; the service holds no mutable state.
package dashboard

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/dedupe"
	"github.com/Ramsey-B/fern/pkg/export"
	"github.com/Ramsey-B/fern/pkg/metrics"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/reconcile"
	"github.com/Ramsey-B/fern/pkg/sheets"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/trends"
)

// Quality view names accepted by the export endpoint.
const (
	ViewDuplicates = "duplicates"
	ViewUnmapped   = "unmapped"
)

// Overview is the dashboard landing payload.
type Overview struct {
	KPIs     models.KPI               `json:"kpis"`
	Projects []models.CombinedProject `json:"projects"`
	Charts   models.ChartData         `json:"charts"`
}

// QualitySection is one feed's slice of a data quality view.
type QualitySection struct {
	Feed    models.Feed `json:"feed"`
	Label   string      `json:"label"`
	Count   int         `json:"count"`
	Records any         `json:"records"`
}

// QualityView is a labelled per feed data quality report.
type QualityView struct {
	View     string           `json:"view"`
	Sections []QualitySection `json:"sections"`
}

// Service wires the fetch boundary to the pure core.
type Service struct {
	sheets *sheets.Service
	trends *trends.Client
	logger ectologger.Logger
	now    func() time.Time
}

// NewService creates a new dashboard service.
func NewService(sheetService *sheets.Service, trendsClient *trends.Client, logger ectologger.Logger) *Service {
	return &Service{
		sheets: sheetService,
		trends: trendsClient,
		logger: logger,
		now:    time.Now,
	}
}

// Overview returns KPIs, the combined project list and chart series.
func (s *Service) Overview(ctx context.Context) Overview {
	ctx, span := tracing.StartSpan(ctx, "dashboard.Overview")
	defer span.End()

	cleaned := s.fetchCleaned(ctx)
	projects := metrics.Combine(cleaned, s.now())

	return Overview{
		KPIs:     metrics.KPIs(projects),
		Projects: projects,
		Charts:   metrics.Charts(projects, s.now()),
	}
}

// Database returns the full reconciled table in first seen order.
func (s *Service) Database(ctx context.Context) []models.DatabaseRow {
	ctx, span := tracing.StartSpan(ctx, "dashboard.Database")
	defer span.End()

	return reconcile.Rows(s.fetchCleaned(ctx))
}

// DatabaseCSV renders the reconciled table as a CSV document.
func (s *Service) DatabaseCSV(ctx context.Context) string {
	return export.Database(s.Database(ctx))
}

// Duplicates returns the per feed duplicate sets over the raw feeds.
func (s *Service) Duplicates(ctx context.Context) QualityView {
	ctx, span := tracing.StartSpan(ctx, "dashboard.Duplicates")
	defer span.End()

	return qualityView(ViewDuplicates, reconcile.Duplicates(s.sheets.FetchAll(ctx)))
}

// Unmapped returns the per feed unmapped sets over the raw feeds.
func (s *Service) Unmapped(ctx context.Context) QualityView {
	ctx, span := tracing.StartSpan(ctx, "dashboard.Unmapped")
	defer span.End()

	return qualityView(ViewUnmapped, reconcile.Unmapped(s.sheets.FetchAll(ctx)))
}

// QualityCSV renders one data quality view as a CSV document.
func (s *Service) QualityCSV(ctx context.Context, view string) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "dashboard.QualityCSV")
	defer span.End()

	switch view {
	case ViewDuplicates:
		return export.Quality(reconcile.Duplicates(s.sheets.FetchAll(ctx))), nil
	case ViewUnmapped:
		return export.Quality(reconcile.Unmapped(s.sheets.FetchAll(ctx))), nil
	default:
		return "", httperror.NewHTTPErrorf(http.StatusNotFound, "unknown quality view: %s", view)
	}
}

// Search filters combined projects by a case insensitive substring
// match on identifier, name and client.
func (s *Service) Search(ctx context.Context, query string) []models.CombinedProject {
	ctx, span := tracing.StartSpan(ctx, "dashboard.Search")
	defer span.End()

	projects := metrics.Combine(s.fetchCleaned(ctx), s.now())
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return projects
	}

	matched := make([]models.CombinedProject, 0)
	for _, project := range projects {
		haystack := strings.ToLower(project.ID + " " + project.Name + " " + project.Client)
		if strings.Contains(haystack, needle) {
			matched = append(matched, project)
		}
	}
	return matched
}

// Trends runs the AI trend summary over the six raw feeds.
func (s *Service) Trends(ctx context.Context) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "dashboard.Trends")
	defer span.End()

	return s.trends.Summarize(ctx, s.sheets.FetchAll(ctx))
}

// Ready reports whether the sheet endpoint is reachable.
func (s *Service) Ready(ctx context.Context) error {
	return s.sheets.Ping(ctx)
}

func (s *Service) fetchCleaned(ctx context.Context) models.AllSubmissions {
	raw := s.sheets.FetchAll(ctx)
	return models.AllSubmissions{
		NewProjects:     dedupe.ByProjectID(raw.NewProjects),
		VersionUpgrades: dedupe.ByProjectID(raw.VersionUpgrades),
		Estimations:     dedupe.ByProjectID(raw.Estimations),
		Approvals:       dedupe.ByProjectID(raw.Approvals),
		Deliveries:      dedupe.ByProjectID(raw.Deliveries),
		Feedbacks:       dedupe.ByProjectID(raw.Feedbacks),
	}
}

func qualityView(view string, feeds models.AllSubmissions) QualityView {
	return QualityView{
		View: view,
		Sections: []QualitySection{
			section(models.FeedNewProject, len(feeds.NewProjects), feeds.NewProjects),
			section(models.FeedVersionUpgrade, len(feeds.VersionUpgrades), feeds.VersionUpgrades),
			section(models.FeedEstimation, len(feeds.Estimations), feeds.Estimations),
			section(models.FeedApproval, len(feeds.Approvals), feeds.Approvals),
			section(models.FeedDelivery, len(feeds.Deliveries), feeds.Deliveries),
			section(models.FeedFeedback, len(feeds.Feedbacks), feeds.Feedbacks),
		},
	}
}

func section(feed models.Feed, count int, records any) QualitySection {
	return QualitySection{
		Feed:    feed,
		Label:   feed.Label(),
		Count:   count,
		Records: records,
	}
}
