// Package query applies view filters to an enriched timeline. Filters only
// remove; ordering is inherited from the aggregator and never changed here.
package query

import (
	"strings"

	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/timeutil"
)

// Apply returns the events satisfying every set field of q. Filters commute:
// they are independent predicates combined with AND.
func Apply(events []models.Event, q models.Query) []models.Event {
	out := make([]models.Event, 0, len(events))
	search := strings.ToLower(strings.TrimSpace(q.SearchText))

	for _, ev := range events {
		if !matchesDateRange(ev, q.DateRange) {
			continue
		}
		if !matchesTags(ev, q.TagSlugs, q.TagMatch) {
			continue
		}
		if !matchesArea(ev, q.AreaID) {
			continue
		}
		if !matchesBounds(ev, q.Bounds) {
			continue
		}
		if !matchesSearch(ev, search) {
			continue
		}
		out = append(out, ev)
	}

	return out
}

func matchesDateRange(ev models.Event, r *models.DateRange) bool {
	if r == nil {
		return true
	}
	return timeutil.Overlaps(ev.StartDate, timeutil.EndOfDay(ev.EndDate), r.Start, r.End)
}

func matchesTags(ev models.Event, slugs []string, mode models.TagMatch) bool {
	if len(slugs) == 0 {
		return true
	}

	have := make(map[string]struct{}, len(ev.Tags))
	for _, tag := range ev.Tags {
		have[tag.Slug] = struct{}{}
	}

	switch mode {
	case models.MatchAll:
		for _, slug := range slugs {
			if _, ok := have[slug]; !ok {
				return false
			}
		}
		return true
	case models.MatchAny:
		fallthrough
	default:
		for _, slug := range slugs {
			if _, ok := have[slug]; ok {
				return true
			}
		}
		return false
	}
}

func matchesArea(ev models.Event, areaID string) bool {
	if areaID == "" {
		return true
	}
	// An active area filter excludes events without an area.
	return ev.Location != nil && ev.Location.AreaID == areaID
}

func matchesBounds(ev models.Event, bounds *models.MapBounds) bool {
	if bounds == nil {
		return true
	}
	// An active bounds filter excludes events without coordinates.
	if !ev.HasCoordinates() {
		return false
	}
	return bounds.Contains(*ev.Location.Latitude, *ev.Location.Longitude)
}

func matchesSearch(ev models.Event, search string) bool {
	if search == "" {
		return true
	}

	var venueName string
	if ev.Location != nil {
		venueName = ev.Location.VenueName
	}
	haystack := strings.ToLower(ev.Title + " " + venueName + " " + ev.Description)
	return strings.Contains(haystack, search)
}
