package services

import (
	"strings"
	"time"

	"events.ourphilly.org/internal/models"
	ics "github.com/arran4/golang-ical"
)

// CalendarService renders event timelines as iCalendar feeds so a window or
// a saved view can be subscribed to from any calendar app.
type CalendarService struct {
	webURL string
	loc    *time.Location
	now    func() time.Time
}

func NewCalendarService(
	webURL string,
	loc *time.Location,
	now func() time.Time,
) *CalendarService {
	if now == nil {
		now = time.Now
	}
	return &CalendarService{
		webURL: webURL,
		loc:    loc,
		now:    now,
	}
}

// Feed serializes events as a VCALENDAR. Events with a start clock become
// timed entries; the rest become all-day entries spanning their civil dates.
func (s *CalendarService) Feed(name string, events []models.Event) []byte {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(name)
	cal.SetXWRTimezone(s.loc.String())

	stamp := s.now().UTC()
	for _, ev := range events {
		entry := cal.AddEvent(ev.ID + "@ourphilly.org")
		entry.SetDtStampTime(stamp)
		entry.SetSummary(ev.Title)

		if ev.Description != "" {
			entry.SetDescription(ev.Description)
		}
		if location := icsLocation(ev.Location); location != "" {
			entry.SetLocation(location)
		}
		if url := s.eventURL(ev); url != "" {
			entry.SetURL(url)
		}

		start, timed := s.startOf(ev)
		if timed {
			entry.SetStartAt(start)
			if end, ok := s.endOf(ev, start); ok {
				entry.SetEndAt(end)
			}
		} else {
			entry.SetAllDayStartAt(ev.StartDate)
			// DTEND of all-day entries is exclusive.
			entry.SetAllDayEndAt(ev.EndDate.AddDate(0, 0, 1))
		}
	}

	return []byte(cal.Serialize())
}

func (s *CalendarService) eventURL(ev models.Event) string {
	if ev.ExternalURL != "" {
		return ev.ExternalURL
	}
	if ev.DetailPath != "" {
		return s.webURL + ev.DetailPath
	}
	return ""
}

func (s *CalendarService) startOf(ev models.Event) (time.Time, bool) {
	clock, ok := parseClock(ev.StartTime)
	if !ok {
		return time.Time{}, false
	}
	d := ev.StartDate
	return time.Date(
		d.Year(), d.Month(), d.Day(),
		clock.hour, clock.minute, 0, 0,
		s.loc,
	), true
}

func (s *CalendarService) endOf(ev models.Event, start time.Time) (time.Time, bool) {
	clock, ok := parseClock(ev.EndTime)
	if !ok {
		return time.Time{}, false
	}
	d := ev.EndDate
	end := time.Date(
		d.Year(), d.Month(), d.Day(),
		clock.hour, clock.minute, 0, 0,
		s.loc,
	)
	if end.Before(start) {
		return time.Time{}, false
	}
	return end, true
}

type clockTime struct {
	hour   int
	minute int
}

func parseClock(raw string) (clockTime, bool) {
	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		return clockTime{}, false
	}
	return clockTime{hour: parsed.Hour(), minute: parsed.Minute()}, true
}

func icsLocation(location *models.Location) string {
	if location == nil {
		return ""
	}

	parts := []string{}
	for _, part := range []string{
		location.VenueName,
		location.Address,
		location.City,
		location.State,
	} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
