package reconcile

import (
	"github.com/Gobusters/ectolinq"

	"github.com/Ramsey-B/fern/pkg/dedupe"
	"github.com/Ramsey-B/fern/pkg/models"
)

type idSet map[string]struct{}

func (s idSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

func idsOf[T models.Record](records []T) idSet {
	set := make(idSet, len(records))
	for _, id := range ectolinq.Map(records, func(record T) string { return record.GetProjectID() }) {
		set[id] = struct{}{}
	}
	return set
}

// Unmapped returns, per feed, the records the reconciliation graph
// cannot place coherently. Each feed is deduplicated internally first.
// A record is unmapped when its identifier appears in exactly one feed
// overall, or when a prerequisite feed lacks the identifier:
// estimations require both a new project and a version upgrade entry,
// approvals require an estimation, deliveries an approval, feedback a
// delivery. The two intake feeds only use the single feed rule.
func Unmapped(raw models.AllSubmissions) models.AllSubmissions {
	deduped := models.AllSubmissions{
		NewProjects:     dedupe.ByProjectID(raw.NewProjects),
		VersionUpgrades: dedupe.ByProjectID(raw.VersionUpgrades),
		Estimations:     dedupe.ByProjectID(raw.Estimations),
		Approvals:       dedupe.ByProjectID(raw.Approvals),
		Deliveries:      dedupe.ByProjectID(raw.Deliveries),
		Feedbacks:       dedupe.ByProjectID(raw.Feedbacks),
	}

	newProjectIDs := idsOf(deduped.NewProjects)
	versionUpgradeIDs := idsOf(deduped.VersionUpgrades)
	estimationIDs := idsOf(deduped.Estimations)
	approvalIDs := idsOf(deduped.Approvals)
	deliveryIDs := idsOf(deduped.Deliveries)
	feedbackIDs := idsOf(deduped.Feedbacks)

	all := []idSet{newProjectIDs, versionUpgradeIDs, estimationIDs, approvalIDs, deliveryIDs, feedbackIDs}

	onlyInOneFeed := func(id string) bool {
		present := 0
		for _, set := range all {
			if set.has(id) {
				present++
			}
		}
		return present == 1
	}

	missingAny := func(id string, required ...idSet) bool {
		for _, set := range required {
			if !set.has(id) {
				return true
			}
		}
		return false
	}

	return models.AllSubmissions{
		NewProjects: filterRecords(deduped.NewProjects, func(id string) bool {
			return onlyInOneFeed(id)
		}),
		VersionUpgrades: filterRecords(deduped.VersionUpgrades, func(id string) bool {
			return onlyInOneFeed(id)
		}),
		Estimations: filterRecords(deduped.Estimations, func(id string) bool {
			return missingAny(id, newProjectIDs, versionUpgradeIDs) || onlyInOneFeed(id)
		}),
		Approvals: filterRecords(deduped.Approvals, func(id string) bool {
			return missingAny(id, estimationIDs) || onlyInOneFeed(id)
		}),
		Deliveries: filterRecords(deduped.Deliveries, func(id string) bool {
			return missingAny(id, approvalIDs) || onlyInOneFeed(id)
		}),
		Feedbacks: filterRecords(deduped.Feedbacks, func(id string) bool {
			return missingAny(id, deliveryIDs) || onlyInOneFeed(id)
		}),
	}
}

func filterRecords[T models.Record](records []T, unmapped func(id string) bool) []T {
	out := make([]T, 0)
	for _, record := range records {
		if unmapped(record.GetProjectID()) {
			out = append(out, record)
		}
	}
	return out
}
