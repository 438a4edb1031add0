package query_test

import (
	"testing"
	"time"

	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/query"
	"events.ourphilly.org/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func civil(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func floatPtr(v float64) *float64 {
	return &v
}

func fixtures() []models.Event {
	return []models.Event{
		{
			ID: "event-1", SourceTable: models.SourcePlainEvent,
			Title: "Jazz Night", Description: "Live sets",
			StartDate: civil(5), EndDate: civil(5),
			Tags: []models.Tag{{Name: "music", Slug: "music"}},
			Location: &models.Location{
				VenueName: "The Foundry",
				AreaID:    "a1",
				Latitude:  floatPtr(39.95),
				Longitude: floatPtr(-75.16),
			},
		},
		{
			ID: "trad-2", SourceTable: models.SourceTradition,
			Title: "Night Market",
			StartDate: civil(6), EndDate: civil(8),
			Tags: []models.Tag{
				{Name: "markets", Slug: "markets"},
				{Name: "family", Slug: "family"},
			},
			Location: &models.Location{AreaID: "a2"},
		},
		{
			ID: "sg-3", SourceTable: models.SourceSports,
			Title: "Phillies vs Mets",
			StartDate: civil(7), EndDate: civil(7),
			Tags: []models.Tag{},
		},
	}
}

func TestDateRangeBoundaryInclusive(t *testing.T) {
	// Weekend window Friday..Sunday; June 6 2025 is a Friday.
	window := &models.DateRange{
		Start: civil(6),
		End:   timeutil.EndOfDay(civil(8)),
	}

	thursdayToFriday := models.Event{
		ID: "x", StartDate: civil(5), EndDate: civil(6), Tags: []models.Tag{},
	}
	endsThursday := models.Event{
		ID: "y", StartDate: civil(4), EndDate: civil(5), Tags: []models.Tag{},
	}

	got := query.Apply(
		[]models.Event{thursdayToFriday, endsThursday},
		models.Query{DateRange: window},
	)
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].ID)
}

func TestTagFilterAnyVsAll(t *testing.T) {
	events := fixtures()

	anyMatch := query.Apply(events, models.Query{
		TagSlugs: []string{"music", "markets"},
		TagMatch: models.MatchAny,
	})
	assert.Len(t, anyMatch, 2)

	allMatch := query.Apply(events, models.Query{
		TagSlugs: []string{"markets", "family"},
		TagMatch: models.MatchAll,
	})
	require.Len(t, allMatch, 1)
	assert.Equal(t, "trad-2", allMatch[0].ID)
}

func TestAreaFilterExcludesUnareaed(t *testing.T) {
	got := query.Apply(fixtures(), models.Query{AreaID: "a1"})
	require.Len(t, got, 1)
	assert.Equal(t, "event-1", got[0].ID)
}

func TestBoundsFilterExcludesUnlocated(t *testing.T) {
	got := query.Apply(fixtures(), models.Query{
		Bounds: &models.MapBounds{MinLat: 39.9, MaxLat: 40.0, MinLng: -75.2, MaxLng: -75.1},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "event-1", got[0].ID)
}

func TestSearchTextMatchesTitleVenueDescription(t *testing.T) {
	byVenue := query.Apply(fixtures(), models.Query{SearchText: "foundry"})
	require.Len(t, byVenue, 1)
	assert.Equal(t, "event-1", byVenue[0].ID)

	byDescription := query.Apply(fixtures(), models.Query{SearchText: "LIVE SETS"})
	assert.Len(t, byDescription, 1)

	assert.Empty(t, query.Apply(fixtures(), models.Query{SearchText: "nothing here"}))
}

func TestFiltersCommute(t *testing.T) {
	events := fixtures()
	window := &models.DateRange{Start: civil(5), End: timeutil.EndOfDay(civil(7))}
	tags := []string{"music", "markets"}

	dateFirst := query.Apply(
		query.Apply(events, models.Query{DateRange: window}),
		models.Query{TagSlugs: tags},
	)
	tagsFirst := query.Apply(
		query.Apply(events, models.Query{TagSlugs: tags}),
		models.Query{DateRange: window},
	)

	assert.Equal(t, dateFirst, tagsFirst)
}

func TestEmptyQueryKeepsAllInOrder(t *testing.T) {
	events := fixtures()
	got := query.Apply(events, models.Query{})
	assert.Equal(t, events, got)
}
