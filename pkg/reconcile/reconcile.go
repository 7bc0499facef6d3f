// Package reconcile joins the six deduplicated feed lists into the
// per-project database view and derives the data quality views from
// the raw lists. Every function is a pure projection; callers get
// fresh output slices and the inputs are never mutated.
package reconcile

import (
	"github.com/Ramsey-B/fern/pkg/models"
)

// Rows performs the six way outer join on project identifier. Feeds
// are applied in the fixed order new project, version upgrade,
// estimation, approval, delivery, feedback; output rows appear in
// first seen order across that sequence. Records with an empty
// identifier are skipped.
func Rows(data models.AllSubmissions) []models.DatabaseRow {
	rows := make([]models.DatabaseRow, 0)
	index := make(map[string]int)

	at := func(projectID string) int {
		if pos, ok := index[projectID]; ok {
			return pos
		}
		rows = append(rows, models.DatabaseRow{ProjectID: projectID})
		index[projectID] = len(rows) - 1
		return len(rows) - 1
	}

	for i := range data.NewProjects {
		record := data.NewProjects[i]
		if record.ProjectID == "" {
			continue
		}
		rows[at(record.ProjectID)].NewProject = &record
	}
	for i := range data.VersionUpgrades {
		record := data.VersionUpgrades[i]
		if record.ProjectID == "" {
			continue
		}
		rows[at(record.ProjectID)].VersionUpgrade = &record
	}
	for i := range data.Estimations {
		record := data.Estimations[i]
		if record.ProjectID == "" {
			continue
		}
		rows[at(record.ProjectID)].Estimation = &record
	}
	for i := range data.Approvals {
		record := data.Approvals[i]
		if record.ProjectID == "" {
			continue
		}
		rows[at(record.ProjectID)].Approval = &record
	}
	for i := range data.Deliveries {
		record := data.Deliveries[i]
		if record.ProjectID == "" {
			continue
		}
		rows[at(record.ProjectID)].Delivery = &record
	}
	for i := range data.Feedbacks {
		record := data.Feedbacks[i]
		if record.ProjectID == "" {
			continue
		}
		rows[at(record.ProjectID)].Feedback = &record
	}

	return rows
}
