// Package dedupe collapses repeated submissions for the same project
// down to the most recent one.
package dedupe

import (
	"time"

	"github.com/Ramsey-B/fern/pkg/models"
)

// ByProjectID returns at most one record per distinct non-empty
// project identifier, keeping the record with the greatest canonical
// timestamp. A timestamp that is not an RFC 3339 instant counts as the
// minimum possible value. Equal timestamps keep the later record in
// input order (last-write-wins; the duplicates view still surfaces
// every colliding row for review). Records with an empty identifier
// are dropped entirely. Output preserves first-seen identifier order,
// which makes the operation idempotent.
func ByProjectID[T models.Record](records []T) []T {
	if len(records) == 0 {
		return nil
	}

	order := make([]string, 0, len(records))
	best := make(map[string]T, len(records))
	bestAt := make(map[string]time.Time, len(records))

	for _, record := range records {
		id := record.GetProjectID()
		if id == "" {
			continue
		}

		at := parseInstant(record.GetTimestamp())
		if _, seen := best[id]; !seen {
			order = append(order, id)
			best[id] = record
			bestAt[id] = at
			continue
		}

		if !at.Before(bestAt[id]) {
			best[id] = record
			bestAt[id] = at
		}
	}

	deduped := make([]T, 0, len(order))
	for _, id := range order {
		deduped = append(deduped, best[id])
	}
	return deduped
}

func parseInstant(value string) time.Time {
	at, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return at
}
