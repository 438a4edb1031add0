// Package routing resolves the site-internal detail path for an event-like
// record. The engine calls it but does not own the routing table; paths here
// mirror the site's router.
package routing

import (
	"fmt"
	"strings"

	"events.ourphilly.org/internal/models"
)

// Target carries the fields path resolution keys on. Unused fields stay
// empty; resolution degrades to "" when the required pieces are missing.
type Target struct {
	Table          models.SourceTable
	Slug           string
	ID             string
	ParentSlug     string // owning group's slug for group events
	VenueSlug      string
	OccurrenceDate string // ISO date of a recurring occurrence
}

// DetailPath maps a target to a site path, or "" when no route exists.
func DetailPath(t Target) string {
	switch t.Table {
	case models.SourceSports:
		slug := firstNonEmpty(t.Slug, t.ID)
		if slug == "" {
			return ""
		}
		return normalize("/sports/" + slug)

	case models.SourceGroupEvent:
		if t.ParentSlug == "" || t.ID == "" {
			return ""
		}
		return normalize(fmt.Sprintf("/groups/%s/events/%s", t.ParentSlug, t.ID))

	case models.SourceRecurring:
		if t.Slug == "" {
			return ""
		}
		if t.OccurrenceDate != "" {
			return normalize(fmt.Sprintf("/series/%s/%s", t.Slug, t.OccurrenceDate))
		}
		return normalize("/series/" + t.Slug)

	case models.SourceBigBoard:
		if t.Slug == "" {
			return ""
		}
		return normalize("/big-board/" + t.Slug)

	case models.SourceTradition:
		if t.Slug == "" {
			return ""
		}
		return normalize("/events/" + t.Slug)

	case models.SourcePlainEvent:
		if t.Slug == "" {
			return ""
		}
		if t.VenueSlug != "" {
			return normalize(fmt.Sprintf("/%s/%s", t.VenueSlug, t.Slug))
		}
		return normalize("/events/" + t.Slug)

	default:
		return ""
	}
}

func normalize(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return trimmed
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
