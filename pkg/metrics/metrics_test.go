package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

var clock = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestCombine(t *testing.T) {
	t.Run("joins feeds onto each new project", func(t *testing.T) {
		data := models.AllSubmissions{
			NewProjects: []models.NewProjectSubmission{
				{ProjectID: "P1", ProjectName: "Alpha", ClientName: "Acme"},
			},
			Estimations: []models.EstimationSubmission{
				{ProjectID: "P1", EstimatedHours: 80},
			},
			Approvals: []models.ApprovalSubmission{
				{ProjectID: "P1", ApprovalDate: "2024-05-01T00:00:00Z", ExpectedDeliveryDate: "2024-05-20T00:00:00Z"},
			},
			Deliveries: []models.DeliverySubmission{
				{ProjectID: "P1", DeliveryDate: "2024-05-18T00:00:00Z"},
			},
			Feedbacks: []models.FeedbackSubmission{
				{ProjectID: "P1", SatisfactionScore: 5, Feedback: "great"},
			},
		}

		combined := Combine(data, clock)
		require.Len(t, combined, 1)

		project := combined[0]
		assert.Equal(t, "P1", project.ID)
		assert.Equal(t, "Alpha", project.Name)
		assert.Equal(t, "Acme", project.Client)
		assert.Equal(t, float64(80), project.EstimatedHours)
		require.NotNil(t, project.Satisfaction)
		assert.Equal(t, float64(5), *project.Satisfaction)
		assert.Equal(t, "great", project.Feedback)
		assert.Equal(t, models.StatusDelivered, project.Status)
	})

	t.Run("status rules", func(t *testing.T) {
		cases := []struct {
			name     string
			approval *models.ApprovalSubmission
			delivery *models.DeliverySubmission
			want     models.ProjectStatus
		}{
			{"no approval or delivery is planning", nil, nil, models.StatusPlanning},
			{
				"delivered beats everything",
				&models.ApprovalSubmission{ProjectID: "P1", ApprovalDate: "2024-01-01T00:00:00Z", ExpectedDeliveryDate: "2024-02-01T00:00:00Z"},
				&models.DeliverySubmission{ProjectID: "P1", DeliveryDate: "2024-03-01T00:00:00Z"},
				models.StatusDelivered,
			},
			{
				"expected date in the future is in progress",
				&models.ApprovalSubmission{ProjectID: "P1", ApprovalDate: "2024-06-01T00:00:00Z", ExpectedDeliveryDate: "2024-09-01T00:00:00Z"},
				nil,
				models.StatusInProgress,
			},
			{
				"expected date in the past is delayed",
				&models.ApprovalSubmission{ProjectID: "P1", ApprovalDate: "2024-01-01T00:00:00Z", ExpectedDeliveryDate: "2024-02-01T00:00:00Z"},
				nil,
				models.StatusDelayed,
			},
			{
				"approval without a parsable expected date is approved",
				&models.ApprovalSubmission{ProjectID: "P1", ApprovalDate: "2024-06-01T00:00:00Z", ExpectedDeliveryDate: "TBC"},
				nil,
				models.StatusApproved,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				data := models.AllSubmissions{
					NewProjects: []models.NewProjectSubmission{{ProjectID: "P1"}},
				}
				if tc.approval != nil {
					data.Approvals = []models.ApprovalSubmission{*tc.approval}
				}
				if tc.delivery != nil {
					data.Deliveries = []models.DeliverySubmission{*tc.delivery}
				}

				combined := Combine(data, clock)
				require.Len(t, combined, 1)
				assert.Equal(t, tc.want, combined[0].Status)
			})
		}
	})

	t.Run("unparsable dates leave nil pointers", func(t *testing.T) {
		combined := Combine(models.AllSubmissions{
			NewProjects: []models.NewProjectSubmission{{ProjectID: "P1"}},
			Approvals: []models.ApprovalSubmission{
				{ProjectID: "P1", ApprovalDate: "soon", ExpectedDeliveryDate: ""},
			},
		}, clock)
		require.Len(t, combined, 1)
		assert.Nil(t, combined[0].ApprovalDate)
		assert.Equal(t, models.StatusPlanning, combined[0].Status)
	})
}

func instant(value string) *time.Time {
	at, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &at
}

func TestKPIs(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		kpi := KPIs(nil)
		assert.Equal(t, 0, kpi.TotalProjects)
		assert.Equal(t, 0.0, kpi.OnTimeDeliveryRate)
		assert.Equal(t, 0.0, kpi.AvgSatisfaction)
		assert.Equal(t, 100.0, kpi.EstimationAccuracy)
	})

	t.Run("on time delivery rate counts delivered only", func(t *testing.T) {
		score := 4.0
		kpi := KPIs([]models.CombinedProject{
			{
				Status:           models.StatusDelivered,
				ExpectedDelivery: instant("2024-05-20T00:00:00Z"),
				ActualDelivery:   instant("2024-05-18T00:00:00Z"),
				Satisfaction:     &score,
			},
			{
				Status:           models.StatusDelivered,
				ExpectedDelivery: instant("2024-05-20T00:00:00Z"),
				ActualDelivery:   instant("2024-05-25T00:00:00Z"),
			},
			{Status: models.StatusInProgress},
		})

		assert.Equal(t, 3, kpi.TotalProjects)
		assert.Equal(t, 50.0, kpi.OnTimeDeliveryRate)
		assert.Equal(t, 4.0, kpi.AvgSatisfaction)
	})

	t.Run("estimation accuracy uses eight hour days", func(t *testing.T) {
		// 80 estimated hours is ten working days; actual span is
		// twelve days, a 20 percent deviation.
		kpi := KPIs([]models.CombinedProject{
			{
				Status:         models.StatusDelivered,
				EstimatedHours: 80,
				ApprovalDate:   instant("2024-05-01T00:00:00Z"),
				ActualDelivery: instant("2024-05-13T00:00:00Z"),
			},
		})
		assert.Equal(t, 80.0, kpi.EstimationAccuracy)
	})

	t.Run("delivery before approval truncates toward zero", func(t *testing.T) {
		// 8 estimated hours is one working day; delivery landed a day
		// and a half before approval was recorded, which counts as
		// minus one whole day, not minus two.
		kpi := KPIs([]models.CombinedProject{
			{
				Status:         models.StatusDelivered,
				EstimatedHours: 8,
				ApprovalDate:   instant("2024-05-10T00:00:00Z"),
				ActualDelivery: instant("2024-05-08T12:00:00Z"),
			},
		})
		assert.Equal(t, -100.0, kpi.EstimationAccuracy)
	})

	t.Run("rates round to one decimal", func(t *testing.T) {
		scores := []float64{5, 4, 4}
		projects := make([]models.CombinedProject, 0, len(scores))
		for i := range scores {
			projects = append(projects, models.CombinedProject{Satisfaction: &scores[i]})
		}
		kpi := KPIs(projects)
		assert.Equal(t, 4.3, kpi.AvgSatisfaction)
	})
}

func TestCharts(t *testing.T) {
	t.Run("monthly completions cover trailing seven months", func(t *testing.T) {
		series := MonthlyCompletions([]models.CombinedProject{
			{ActualDelivery: instant("2024-05-18T00:00:00Z")},
			{ActualDelivery: instant("2024-05-02T00:00:00Z")},
			{ActualDelivery: instant("2024-01-10T00:00:00Z")},
			{ActualDelivery: instant("2023-06-10T00:00:00Z")}, // outside window
			{}, // undelivered
		}, clock)

		require.Len(t, series, 7)
		assert.Equal(t, models.MonthlyCount{Month: "2023-12", Count: 0}, series[0])
		assert.Equal(t, models.MonthlyCount{Month: "2024-01", Count: 1}, series[1])
		assert.Equal(t, models.MonthlyCount{Month: "2024-05", Count: 2}, series[5])
		assert.Equal(t, models.MonthlyCount{Month: "2024-06", Count: 0}, series[6])
	})

	t.Run("satisfaction distribution buckets whole ratings", func(t *testing.T) {
		scores := []float64{5, 5, 3, 1}
		projects := make([]models.CombinedProject, 0, len(scores)+1)
		for i := range scores {
			projects = append(projects, models.CombinedProject{Satisfaction: &scores[i]})
		}
		projects = append(projects, models.CombinedProject{}) // no feedback

		distribution := SatisfactionDistribution(projects)
		require.Len(t, distribution, 5)
		assert.Equal(t, models.ScoreCount{Rating: 1, Count: 1}, distribution[0])
		assert.Equal(t, models.ScoreCount{Rating: 3, Count: 1}, distribution[2])
		assert.Equal(t, models.ScoreCount{Rating: 5, Count: 2}, distribution[4])
	})
}
