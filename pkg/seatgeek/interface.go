package seatgeek

import "context"

type Client interface {
	// GetEvents lists upcoming events for one performer slug in one city,
	// sorted by local start time.
	GetEvents(ctx context.Context, performerSlug string, city string) ([]Event, error)
}
