package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/decode"
	"github.com/Ramsey-B/fern/pkg/fieldmap"
	"github.com/Ramsey-B/fern/pkg/httpclient"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/sheets"
	"github.com/Ramsey-B/fern/pkg/trends"
)

var feedCSVs = map[string]string{
	// New project: P1 twice (older row loses), P2 once.
	"100": "Timestamp,Normalized Name,Project Name,Client Name\n" +
		"2024-01-01T00:00:00Z,P1,Alpha old,Acme\n" +
		"2024-01-05T00:00:00Z,P1,Alpha,Acme\n" +
		"2024-01-02T00:00:00Z,P2,Beta,Globex",
	"200": "Timestamp,Project ID,Version,New Requirements\n" +
		"2024-01-06T00:00:00Z,P1,1.1,More reports",
	"300": "Timestamp,Project ID,Estimated Hours,Estimated Cost\n" +
		"2024-01-07T00:00:00Z,P1,80,9000",
	"400": "Timestamp,Project ID,Approved By,Approval Date,Expected Delivery Date,Delivery Method\n" +
		"2024-01-08T00:00:00Z,P1,Dana,2024-01-08T00:00:00Z,2024-01-20T00:00:00Z,Agile",
	"500": "Timestamp,Project ID,Delivery Date,Delivered By,Notes\n" +
		"2024-01-18T00:00:00Z,P1,2024-01-18T00:00:00Z,Dev Team A,",
	// Feedback for P9, which no other feed knows.
	"600": "Timestamp,Project ID,Satisfaction Score (1-5),Feedback,Client Contact\n" +
		"2024-01-19T00:00:00Z,P9,3,fine,client@acme.test",
}

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feedCSVs[r.URL.Query().Get("gid")]))
	}))

	logger := ectologger.NewEctoLogger(func(msg ectologger.EctoLogMessage) {})
	client := httpclient.NewClient(httpclient.DefaultConfig(), logger)

	profile, err := fieldmap.GetProfile(fieldmap.DefaultProfileName)
	require.NoError(t, err)

	sheetService := sheets.NewService(sheets.Config{
		BaseURL: server.URL,
		SheetID: "sheet-1",
		GIDs: map[models.Feed]string{
			models.FeedNewProject:     "100",
			models.FeedVersionUpgrade: "200",
			models.FeedEstimation:     "300",
			models.FeedApproval:       "400",
			models.FeedDelivery:       "500",
			models.FeedFeedback:       "600",
		},
	}, client, decode.NewDecoder(profile), logger)

	trendsClient := trends.NewClient(trends.Config{Enabled: false}, client, logger)

	return NewService(sheetService, trendsClient, logger), server.Close
}

func TestServiceDatabase(t *testing.T) {
	service, done := newTestService(t)
	defer done()

	rows := service.Database(context.Background())
	require.Len(t, rows, 3)

	assert.Equal(t, "P1", rows[0].ProjectID)
	require.NotNil(t, rows[0].NewProject)
	assert.Equal(t, "Alpha", rows[0].NewProject.ProjectName, "deduplication keeps the latest row")
	require.NotNil(t, rows[0].VersionUpgrade)
	require.NotNil(t, rows[0].Estimation)
	require.NotNil(t, rows[0].Approval)
	require.NotNil(t, rows[0].Delivery)
	assert.Nil(t, rows[0].Feedback)

	assert.Equal(t, "P2", rows[1].ProjectID)
	assert.Nil(t, rows[1].Estimation)

	assert.Equal(t, "P9", rows[2].ProjectID)
	require.NotNil(t, rows[2].Feedback)
}

func TestServiceOverview(t *testing.T) {
	service, done := newTestService(t)
	defer done()

	overview := service.Overview(context.Background())

	assert.Equal(t, 2, overview.KPIs.TotalProjects, "only new project rows become combined projects")
	assert.Equal(t, 100.0, overview.KPIs.OnTimeDeliveryRate, "P1 delivered before its expected date")
	require.Len(t, overview.Projects, 2)
	assert.Equal(t, models.StatusDelivered, overview.Projects[0].Status)
	assert.Equal(t, models.StatusPlanning, overview.Projects[1].Status)
	assert.Len(t, overview.Charts.Satisfaction, 5)
	assert.Len(t, overview.Charts.MonthlyCompletions, 7)
}

func TestServiceQualityViews(t *testing.T) {
	service, done := newTestService(t)
	defer done()

	t.Run("duplicates", func(t *testing.T) {
		view := service.Duplicates(context.Background())
		assert.Equal(t, ViewDuplicates, view.View)
		require.Len(t, view.Sections, 6)

		newProjects := view.Sections[0]
		assert.Equal(t, models.FeedNewProject, newProjects.Feed)
		assert.Equal(t, "New Project Submissions", newProjects.Label)
		assert.Equal(t, 2, newProjects.Count, "both colliding P1 rows are reported")

		assert.Equal(t, 0, view.Sections[2].Count)
	})

	t.Run("unmapped", func(t *testing.T) {
		view := service.Unmapped(context.Background())
		require.Len(t, view.Sections, 6)

		feedback := view.Sections[5]
		assert.Equal(t, models.FeedFeedback, feedback.Feed)
		assert.Equal(t, 1, feedback.Count, "P9 feedback has no delivery upstream")

		// P1's chain is intact all the way down, so approval and
		// delivery report nothing.
		assert.Equal(t, 0, view.Sections[3].Count)
		assert.Equal(t, 0, view.Sections[4].Count)
	})

	t.Run("export", func(t *testing.T) {
		doc, err := service.QualityCSV(context.Background(), ViewUnmapped)
		require.NoError(t, err)
		assert.Contains(t, doc, "Project Feedback Submissions")
		assert.Contains(t, doc, "P9")

		_, err = service.QualityCSV(context.Background(), "nonsense")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, httperror.GetStatusCode(err))
	})
}

func TestServiceSearch(t *testing.T) {
	service, done := newTestService(t)
	defer done()

	t.Run("matches client name case insensitively", func(t *testing.T) {
		results := service.Search(context.Background(), "globex")
		require.Len(t, results, 1)
		assert.Equal(t, "P2", results[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, service.Search(context.Background(), "zzz"))
	})

	t.Run("blank query returns everything", func(t *testing.T) {
		assert.Len(t, service.Search(context.Background(), "  "), 2)
	})
}

func TestServiceDatabaseCSV(t *testing.T) {
	service, done := newTestService(t)
	defer done()

	doc := service.DatabaseCSV(context.Background())
	lines := strings.Split(doc, "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "P1,Alpha,Acme,"))
}

func TestServiceTrendsDisabled(t *testing.T) {
	service, done := newTestService(t)
	defer done()

	_, err := service.Trends(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, httperror.GetStatusCode(err))
}
