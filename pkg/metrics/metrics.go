// Package metrics derives the dashboard figures from reconciled feed
// data: per project status, summary KPIs, and the chart series.
package metrics

import (
	"math"
	"time"

	"github.com/Ramsey-B/fern/pkg/models"
)

const hoursPerWorkingDay = 8

// Combine flattens each new project submission with its estimation,
// approval, delivery and feedback counterparts, deriving a lifecycle
// status. Input lists are expected to be deduplicated already; on
// duplicate identifiers the first match wins. now anchors the
// in progress versus delayed decision so callers and tests share one
// clock.
func Combine(data models.AllSubmissions, now time.Time) []models.CombinedProject {
	estimations := indexByID(data.Estimations)
	approvals := indexByID(data.Approvals)
	deliveries := indexByID(data.Deliveries)
	feedbacks := indexByID(data.Feedbacks)

	combined := make([]models.CombinedProject, 0, len(data.NewProjects))
	for _, newProject := range data.NewProjects {
		project := models.CombinedProject{
			ID:     newProject.ProjectID,
			Name:   newProject.ProjectName,
			Client: newProject.ClientName,
			Status: models.StatusPlanning,
		}

		if approval, ok := approvals[newProject.ProjectID]; ok {
			project.ApprovalDate = parseInstant(approval.ApprovalDate)
			project.ExpectedDelivery = parseInstant(approval.ExpectedDeliveryDate)
		}
		if delivery, ok := deliveries[newProject.ProjectID]; ok {
			project.ActualDelivery = parseInstant(delivery.DeliveryDate)
		}
		if estimation, ok := estimations[newProject.ProjectID]; ok {
			project.EstimatedHours = estimation.EstimatedHours
		}
		if feedback, ok := feedbacks[newProject.ProjectID]; ok {
			score := feedback.SatisfactionScore
			project.Satisfaction = &score
			project.Feedback = feedback.Feedback
		}

		switch {
		case project.ActualDelivery != nil:
			project.Status = models.StatusDelivered
		case project.ApprovalDate != nil:
			switch {
			case project.ExpectedDelivery != nil && now.Before(*project.ExpectedDelivery):
				project.Status = models.StatusInProgress
			case project.ExpectedDelivery != nil && now.After(*project.ExpectedDelivery):
				project.Status = models.StatusDelayed
			default:
				project.Status = models.StatusApproved
			}
		}

		combined = append(combined, project)
	}
	return combined
}

// KPIs computes the dashboard summary figures over combined projects.
// On time delivery rate counts delivered projects whose actual date is
// not after the expected one. Estimation accuracy compares actual
// delivery duration in days against estimated hours at eight hours per
// working day. All rates are rounded to one decimal.
func KPIs(projects []models.CombinedProject) models.KPI {
	kpi := models.KPI{TotalProjects: len(projects)}

	delivered := 0
	onTime := 0
	for _, project := range projects {
		if project.Status != models.StatusDelivered {
			continue
		}
		delivered++
		if project.ActualDelivery != nil && project.ExpectedDelivery != nil &&
			!project.ActualDelivery.After(*project.ExpectedDelivery) {
			onTime++
		}
	}
	if delivered > 0 {
		kpi.OnTimeDeliveryRate = round1(float64(onTime) / float64(delivered) * 100)
	}

	withFeedback := 0
	totalSatisfaction := 0.0
	for _, project := range projects {
		if project.Satisfaction != nil {
			withFeedback++
			totalSatisfaction += *project.Satisfaction
		}
	}
	if withFeedback > 0 {
		kpi.AvgSatisfaction = round1(totalSatisfaction / float64(withFeedback))
	}

	measurable := 0
	totalDeviation := 0.0
	for _, project := range projects {
		if project.EstimatedHours == 0 || project.ApprovalDate == nil || project.ActualDelivery == nil {
			continue
		}
		measurable++
		actualDays := daysBetween(*project.ApprovalDate, *project.ActualDelivery)
		estimatedDays := project.EstimatedHours / hoursPerWorkingDay
		totalDeviation += math.Abs(actualDays-estimatedDays) / estimatedDays
	}
	avgDeviation := 0.0
	if measurable > 0 {
		avgDeviation = totalDeviation / float64(measurable)
	}
	kpi.EstimationAccuracy = round1((1 - avgDeviation) * 100)

	return kpi
}

func indexByID[T models.Record](records []T) map[string]T {
	index := make(map[string]T, len(records))
	for _, record := range records {
		id := record.GetProjectID()
		if _, seen := index[id]; id != "" && !seen {
			index[id] = record
		}
	}
	return index
}

func parseInstant(value string) *time.Time {
	if value == "" {
		return nil
	}
	at, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &at
}

// daysBetween counts whole days, truncating toward zero so a partial
// day in a negative span does not round away from it.
func daysBetween(from, to time.Time) float64 {
	return math.Trunc(to.Sub(from).Hours() / 24)
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
