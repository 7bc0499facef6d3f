package reconcile

import (
	"github.com/Ramsey-B/fern/pkg/models"
)

// Duplicates returns, per feed, every record whose identifier occurs
// two or more times within that same feed. All colliding records are
// returned, including the one deduplication would keep. Inputs are the
// raw (pre dedup) lists.
func Duplicates(raw models.AllSubmissions) models.AllSubmissions {
	return models.AllSubmissions{
		NewProjects:     duplicatesOf(raw.NewProjects),
		VersionUpgrades: duplicatesOf(raw.VersionUpgrades),
		Estimations:     duplicatesOf(raw.Estimations),
		Approvals:       duplicatesOf(raw.Approvals),
		Deliveries:      duplicatesOf(raw.Deliveries),
		Feedbacks:       duplicatesOf(raw.Feedbacks),
	}
}

func duplicatesOf[T models.Record](records []T) []T {
	counts := make(map[string]int)
	for _, record := range records {
		if id := record.GetProjectID(); id != "" {
			counts[id]++
		}
	}

	colliding := make([]T, 0)
	for _, record := range records {
		id := record.GetProjectID()
		if id != "" && counts[id] > 1 {
			colliding = append(colliding, record)
		}
	}
	return colliding
}
