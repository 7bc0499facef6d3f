package models

import "time"

// ProjectStatus is the derived lifecycle state of a project.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusApproved   ProjectStatus = "Approved"
	StatusInProgress ProjectStatus = "In Progress"
	StatusDelayed    ProjectStatus = "Delayed"
	StatusDelivered  ProjectStatus = "Delivered"
)

// CombinedProject flattens a project's submissions into the shape the
// dashboard table and KPI calculations consume. Date pointers are nil
// when the backing feed is absent or its value never parsed.
type CombinedProject struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Client           string        `json:"client"`
	ApprovalDate     *time.Time    `json:"approvalDate,omitempty"`
	ExpectedDelivery *time.Time    `json:"expectedDelivery,omitempty"`
	ActualDelivery   *time.Time    `json:"actualDelivery,omitempty"`
	EstimatedHours   float64       `json:"estimatedHours,omitempty"`
	Satisfaction     *float64      `json:"satisfaction,omitempty"`
	Feedback         string        `json:"feedback,omitempty"`
	Status           ProjectStatus `json:"status"`
}

// KPI holds the dashboard summary figures, rounded to one decimal.
type KPI struct {
	TotalProjects      int     `json:"totalProjects"`
	OnTimeDeliveryRate float64 `json:"onTimeDeliveryRate"`
	AvgSatisfaction    float64 `json:"avgSatisfaction"`
	EstimationAccuracy float64 `json:"estimationAccuracy"`
}

// MonthlyCount is one point in a monthly trend series.
type MonthlyCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// ScoreCount is one bar of the satisfaction score distribution.
type ScoreCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// ChartData bundles the dashboard chart series.
type ChartData struct {
	MonthlyCompletions []MonthlyCount `json:"monthlyCompletions"`
	Satisfaction       []ScoreCount   `json:"satisfactionDistribution"`
}
