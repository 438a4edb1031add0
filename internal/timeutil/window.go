package timeutil

import (
	"strings"
	"time"
)

// Range is an inclusive window of instants, usually spanning whole civil days.
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// DayWindow is the window covering a single civil day.
func DayWindow(day time.Time) Range {
	return Range{Start: StartOfDay(day), End: EndOfDay(day)}
}

// WeekendWindow returns Friday 00:00 through Sunday 23:59:59 of the weekend
// now belongs to. Monday through Thursday look ahead to the coming Friday;
// Saturday and Sunday refer back to the Friday of the weekend already in
// progress.
func WeekendWindow(now time.Time) Range {
	friday := StartOfDay(now)

	switch wd := now.Weekday(); {
	case wd >= time.Monday && wd <= time.Thursday:
		friday = friday.AddDate(0, 0, int(time.Friday-wd))
	case wd == time.Saturday:
		friday = friday.AddDate(0, 0, -1)
	case wd == time.Sunday:
		friday = friday.AddDate(0, 0, -2)
	}

	sunday := friday.AddDate(0, 0, 2)
	return Range{Start: friday, End: EndOfDay(sunday)}
}

// MonthWindow covers the named calendar month in loc.
func MonthWindow(year int, month time.Month, loc *time.Location) Range {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	return Range{Start: first, End: EndOfDay(last)}
}

// monthSlugs maps URL month slugs onto calendar months.
//
//nolint:gochecknoglobals //ok
var monthSlugs = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// MonthFromSlug resolves a lowercase month slug ("march") to its month.
func MonthFromSlug(slug string) (time.Month, bool) {
	slug = strings.ToLower(slug)
	for i, s := range monthSlugs {
		if s == slug {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// MonthSlug is the inverse of MonthFromSlug.
func MonthSlug(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return monthSlugs[month-1]
}
