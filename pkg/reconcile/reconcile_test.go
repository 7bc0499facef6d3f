package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

func TestRows(t *testing.T) {
	t.Run("one row per distinct identifier with all matching records", func(t *testing.T) {
		data := models.AllSubmissions{
			NewProjects: []models.NewProjectSubmission{
				{ProjectID: "P1", Timestamp: "2024-01-01T00:00:00Z", ProjectName: "Alpha"},
				{ProjectID: "P2", Timestamp: "2024-01-02T00:00:00Z", ProjectName: "Beta"},
			},
			Estimations: []models.EstimationSubmission{
				{ProjectID: "P1", Timestamp: "2024-01-03T00:00:00Z", EstimatedHours: 40},
			},
			Feedbacks: []models.FeedbackSubmission{
				{ProjectID: "P3", Timestamp: "2024-01-04T00:00:00Z", SatisfactionScore: 5},
			},
		}

		rows := Rows(data)
		require.Len(t, rows, 3)

		assert.Equal(t, "P1", rows[0].ProjectID)
		require.NotNil(t, rows[0].NewProject)
		assert.Equal(t, "Alpha", rows[0].NewProject.ProjectName)
		require.NotNil(t, rows[0].Estimation)
		assert.Equal(t, float64(40), rows[0].Estimation.EstimatedHours)
		assert.Nil(t, rows[0].Approval)

		assert.Equal(t, "P2", rows[1].ProjectID)
		assert.Nil(t, rows[1].Estimation)

		assert.Equal(t, "P3", rows[2].ProjectID)
		require.NotNil(t, rows[2].Feedback)
		assert.Nil(t, rows[2].NewProject)
	})

	t.Run("empty identifiers are skipped", func(t *testing.T) {
		rows := Rows(models.AllSubmissions{
			Deliveries: []models.DeliverySubmission{
				{ProjectID: "", Timestamp: "2024-01-01T00:00:00Z"},
				{ProjectID: "P1", Timestamp: "2024-01-01T00:00:00Z"},
			},
		})
		require.Len(t, rows, 1)
		assert.Equal(t, "P1", rows[0].ProjectID)
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		assert.Empty(t, Rows(models.AllSubmissions{}))
	})
}

func TestDuplicates(t *testing.T) {
	t.Run("returns all colliding records and excludes singletons", func(t *testing.T) {
		raw := models.AllSubmissions{
			Estimations: []models.EstimationSubmission{
				{ProjectID: "A", Timestamp: "2024-01-01T00:00:00Z"},
				{ProjectID: "A", Timestamp: "2024-01-02T00:00:00Z"},
				{ProjectID: "B", Timestamp: "2024-01-03T00:00:00Z"},
			},
		}

		dupes := Duplicates(raw)
		require.Len(t, dupes.Estimations, 2)
		assert.Equal(t, "A", dupes.Estimations[0].ProjectID)
		assert.Equal(t, "A", dupes.Estimations[1].ProjectID)
		assert.Empty(t, dupes.NewProjects)
	})

	t.Run("empty identifiers never collide", func(t *testing.T) {
		dupes := Duplicates(models.AllSubmissions{
			Feedbacks: []models.FeedbackSubmission{
				{ProjectID: "", Timestamp: "2024-01-01T00:00:00Z"},
				{ProjectID: "", Timestamp: "2024-01-02T00:00:00Z"},
			},
		})
		assert.Empty(t, dupes.Feedbacks)
	})
}

func TestUnmapped(t *testing.T) {
	t.Run("identifier in exactly one feed is unmapped", func(t *testing.T) {
		unmapped := Unmapped(models.AllSubmissions{
			NewProjects: []models.NewProjectSubmission{
				{ProjectID: "Lonely", Timestamp: "2024-01-01T00:00:00Z"},
				{ProjectID: "Shared", Timestamp: "2024-01-01T00:00:00Z"},
			},
			VersionUpgrades: []models.VersionUpgradeSubmission{
				{ProjectID: "Shared", Timestamp: "2024-01-02T00:00:00Z"},
			},
		})

		require.Len(t, unmapped.NewProjects, 1)
		assert.Equal(t, "Lonely", unmapped.NewProjects[0].ProjectID)
		assert.Empty(t, unmapped.VersionUpgrades)
	})

	t.Run("approval without estimation is unmapped even when not unique", func(t *testing.T) {
		unmapped := Unmapped(models.AllSubmissions{
			Approvals: []models.ApprovalSubmission{
				{ProjectID: "P1", Timestamp: "2024-01-01T00:00:00Z"},
			},
			Deliveries: []models.DeliverySubmission{
				{ProjectID: "P1", Timestamp: "2024-01-02T00:00:00Z"},
			},
		})

		require.Len(t, unmapped.Approvals, 1)
		assert.Equal(t, "P1", unmapped.Approvals[0].ProjectID)
		// The delivery has an approval upstream, so only the approval
		// itself is flagged.
		assert.Empty(t, unmapped.Deliveries)
	})

	t.Run("missing prerequisites propagate down the chain", func(t *testing.T) {
		unmapped := Unmapped(models.AllSubmissions{
			NewProjects: []models.NewProjectSubmission{
				{ProjectID: "P1", Timestamp: "2024-01-01T00:00:00Z"},
			},
			VersionUpgrades: []models.VersionUpgradeSubmission{
				{ProjectID: "P1", Timestamp: "2024-01-02T00:00:00Z"},
			},
			Estimations: []models.EstimationSubmission{
				{ProjectID: "P1", Timestamp: "2024-01-03T00:00:00Z"},
			},
			Deliveries: []models.DeliverySubmission{
				{ProjectID: "P1", Timestamp: "2024-01-04T00:00:00Z"},
			},
			Feedbacks: []models.FeedbackSubmission{
				{ProjectID: "P1", Timestamp: "2024-01-05T00:00:00Z"},
			},
		})

		// No approval: the delivery lacks its prerequisite; the
		// feedback has a delivery upstream so it passes.
		assert.Empty(t, unmapped.NewProjects)
		assert.Empty(t, unmapped.Estimations)
		require.Len(t, unmapped.Deliveries, 1)
		assert.Empty(t, unmapped.Feedbacks)
	})

	t.Run("deduplicates each feed before checking", func(t *testing.T) {
		unmapped := Unmapped(models.AllSubmissions{
			Feedbacks: []models.FeedbackSubmission{
				{ProjectID: "P1", Timestamp: "2024-01-01T00:00:00Z", Feedback: "older"},
				{ProjectID: "P1", Timestamp: "2024-01-02T00:00:00Z", Feedback: "newer"},
			},
		})

		require.Len(t, unmapped.Feedbacks, 1)
		assert.Equal(t, "newer", unmapped.Feedbacks[0].Feedback)
	})

	t.Run("fully chained project is never unmapped", func(t *testing.T) {
		ts := "2024-01-01T00:00:00Z"
		unmapped := Unmapped(models.AllSubmissions{
			NewProjects:     []models.NewProjectSubmission{{ProjectID: "P1", Timestamp: ts}},
			VersionUpgrades: []models.VersionUpgradeSubmission{{ProjectID: "P1", Timestamp: ts}},
			Estimations:     []models.EstimationSubmission{{ProjectID: "P1", Timestamp: ts}},
			Approvals:       []models.ApprovalSubmission{{ProjectID: "P1", Timestamp: ts}},
			Deliveries:      []models.DeliverySubmission{{ProjectID: "P1", Timestamp: ts}},
			Feedbacks:       []models.FeedbackSubmission{{ProjectID: "P1", Timestamp: ts}},
		})

		assert.Empty(t, unmapped.NewProjects)
		assert.Empty(t, unmapped.VersionUpgrades)
		assert.Empty(t, unmapped.Estimations)
		assert.Empty(t, unmapped.Approvals)
		assert.Empty(t, unmapped.Deliveries)
		assert.Empty(t, unmapped.Feedbacks)
	})
}
