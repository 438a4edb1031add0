// Package aggregate merges normalized per-source event lists into one
// deterministically ordered timeline.
package aggregate

import (
	"sort"

	"events.ourphilly.org/internal/models"
)

// Merge concatenates per-source lists, drops same-source same-id collisions
// (last write wins) and sorts by (source priority, start date, start time,
// title). Events from different sources are never deduplicated against each
// other; two tables describing the same real-world event stay distinct.
func Merge(order models.SourceOrder, lists ...[]models.Event) []models.Event {
	if order == nil {
		order = models.DefaultSourceOrder
	}

	total := 0
	for _, list := range lists {
		total += len(list)
	}

	byID := make(map[string]int, total)
	merged := make([]models.Event, 0, total)
	for _, list := range lists {
		for _, ev := range list {
			if idx, seen := byID[ev.ID]; seen {
				merged[idx] = ev
				continue
			}
			byID[ev.ID] = len(merged)
			merged = append(merged, ev)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]

		if ra, rb := order.Rank(a.SourceTable), order.Rank(b.SourceTable); ra != rb {
			return ra < rb
		}
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		// Absent times sort as "" and therefore first.
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.Title < b.Title
	})

	return merged
}

// CountBySource tallies the merged timeline per source table.
func CountBySource(events []models.Event) map[models.SourceTable]int {
	counts := map[models.SourceTable]int{}
	for _, ev := range events {
		counts[ev.SourceTable]++
	}
	return counts
}
