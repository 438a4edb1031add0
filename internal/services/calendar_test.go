package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/services"
	"events.ourphilly.org/internal/timeutil"
)

func newCalendarService(t *testing.T) *services.CalendarService {
	t.Helper()

	loc := timeutil.LoadLocation("America/New_York")

	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return services.NewCalendarService(
		"https://ourphilly.org",
		loc,
		func() time.Time { return stamp },
	)
}

func TestCalendarFeedTimedEvent(t *testing.T) {
	service := newCalendarService(t)
	loc := timeutil.LoadLocation("America/New_York")

	day := time.Date(2025, 6, 7, 0, 0, 0, 0, loc)
	feed := string(service.Feed("This Weekend", []models.Event{
		{
			ID:          "event-41",
			Title:       "Jazz Night",
			StartDate:   day,
			EndDate:     day,
			StartTime:   "20:00",
			EndTime:     "23:00",
			DetailPath:  "/events/jazz-night",
			Description: "Live jazz.",
		},
	}))

	assert.Contains(t, feed, "BEGIN:VCALENDAR")
	assert.Contains(t, feed, "SUMMARY:Jazz Night")
	assert.Contains(t, feed, "UID:event-41@ourphilly.org")
	assert.Contains(t, feed, "URL:https://ourphilly.org/events/jazz-night")
	assert.Contains(t, feed, "DTSTART:20250608T000000Z")
	assert.Contains(t, feed, "DTEND:20250608T030000Z")
}

func TestCalendarFeedAllDayEvent(t *testing.T) {
	service := newCalendarService(t)
	loc := timeutil.LoadLocation("America/New_York")

	feed := string(service.Feed("Traditions", []models.Event{
		{
			ID:        "trad-7",
			Title:     "Odunde Festival",
			StartDate: time.Date(2025, 6, 8, 0, 0, 0, 0, loc),
			EndDate:   time.Date(2025, 6, 8, 0, 0, 0, 0, loc),
		},
	}))

	assert.Contains(t, feed, "DTSTART;VALUE=DATE:20250608")
	// All-day DTEND is exclusive, so a one-day event ends the next day.
	assert.Contains(t, feed, "DTEND;VALUE=DATE:20250609")
}

func TestCalendarFeedExternalURLWins(t *testing.T) {
	service := newCalendarService(t)
	loc := timeutil.LoadLocation("America/New_York")

	day := time.Date(2025, 6, 7, 0, 0, 0, 0, loc)
	feed := string(service.Feed("Sports", []models.Event{
		{
			ID:          "sg-1",
			Title:       "Phillies vs Mets",
			StartDate:   day,
			EndDate:     day,
			StartTime:   "19:05",
			DetailPath:  "/sports/phillies",
			ExternalURL: "https://seatgeek.com/e/1",
		},
	}))

	assert.Contains(t, feed, "URL:https://seatgeek.com/e/1")
	assert.Equal(t, 1, strings.Count(feed, "BEGIN:VEVENT"))
}
