package metrics

import (
	"time"

	"github.com/Ramsey-B/fern/pkg/models"
)

const velocityMonths = 6

// Charts builds the dashboard chart series from combined projects.
func Charts(projects []models.CombinedProject, now time.Time) models.ChartData {
	return models.ChartData{
		MonthlyCompletions: MonthlyCompletions(projects, now),
		Satisfaction:       SatisfactionDistribution(projects),
	}
}

// MonthlyCompletions counts delivered projects per calendar month over
// the trailing six months plus the current one. Months with no
// deliveries still appear with a zero count so chart axes stay stable.
func MonthlyCompletions(projects []models.CombinedProject, now time.Time) []models.MonthlyCount {
	counts := make(map[string]int)
	for _, project := range projects {
		if project.ActualDelivery == nil {
			continue
		}
		counts[project.ActualDelivery.UTC().Format("2006-01")]++
	}

	// Anchor on the first of the month so stepping back never
	// normalizes across month boundaries.
	anchor := time.Date(now.UTC().Year(), now.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)

	series := make([]models.MonthlyCount, 0, velocityMonths+1)
	for offset := velocityMonths; offset >= 0; offset-- {
		month := anchor.AddDate(0, -offset, 0).Format("2006-01")
		series = append(series, models.MonthlyCount{Month: month, Count: counts[month]})
	}
	return series
}

// SatisfactionDistribution counts projects per whole satisfaction
// score, one bucket per rating from one to five. Fractional scores are
// counted toward their truncated rating; projects without feedback are
// skipped.
func SatisfactionDistribution(projects []models.CombinedProject) []models.ScoreCount {
	counts := make(map[int]int)
	for _, project := range projects {
		if project.Satisfaction == nil {
			continue
		}
		rating := int(*project.Satisfaction)
		if rating >= 1 && rating <= 5 {
			counts[rating]++
		}
	}

	distribution := make([]models.ScoreCount, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		distribution = append(distribution, models.ScoreCount{Rating: rating, Count: counts[rating]})
	}
	return distribution
}
