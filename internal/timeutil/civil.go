package timeutil

import (
	"strings"
	"time"
)

// DefaultZone is the single civil timezone the whole system operates in.
const DefaultZone = "America/New_York"

// LoadLocation resolves the named IANA zone, falling back to DefaultZone and
// finally UTC. Binaries import time/tzdata so lookup never depends on the
// host zone database.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc, err = time.LoadLocation(DefaultZone)
		if err != nil {
			return time.UTC
		}
	}
	return loc
}

// ParseCivilDate turns a raw date string into a civil date (midnight in loc).
// Supported inputs:
//   - ISO "YYYY-MM-DD", or an ISO timestamp whose date prefix is used
//   - US "MM/DD/YYYY", possibly embedded in a free-text range such as
//     "5/1/2025 through 5/4/2025" (only the first token counts)
//
// Malformed input returns false. It never falls back to the current day.
func ParseCivilDate(raw string, loc *time.Location) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}

	if isISODatePrefix(trimmed) {
		return parseISO(trimmed[:10], loc)
	}

	return parseSlash(trimmed, loc)
}

func isISODatePrefix(s string) bool {
	if len(s) < 10 {
		return false
	}
	if s[4] != '-' || s[7] != '-' {
		return false
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 8, 9} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	// Either a bare date or a timestamp continuing with 'T' or a space.
	return len(s) == 10 || s[10] == 'T' || s[10] == ' '
}

func parseISO(s string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// rangeSeparators split free-text ranges; only the leading token is a date.
//
//nolint:gochecknoglobals //ok
var rangeSeparators = []string{"through", "–", "-"}

func parseSlash(s string, loc *time.Location) (time.Time, bool) {
	first := s
	for _, sep := range rangeSeparators {
		if idx := strings.Index(first, sep); idx >= 0 {
			first = first[:idx]
		}
	}

	parts := strings.Split(strings.TrimSpace(first), "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	month, ok1 := atoi(parts[0])
	day, ok2 := atoi(parts[1])
	year, ok3 := atoi(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date normalizes out-of-range components; reject those.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// StartOfDay zeroes the time components in t's own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay maxes the time components in t's own location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		23, 59, 59, int(time.Second-time.Nanosecond), //nolint:mnd //inclusive day end
		t.Location(),
	)
}

// ZonedNow projects the current instant into loc.
func ZonedNow(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// ISODate formats a civil date as "YYYY-MM-DD".
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// Overlaps is the single overlap predicate used everywhere: two inclusive
// ranges share at least one instant.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// SpanDays counts the calendar days an inclusive civil-date span covers.
// Computed on the calendar, not on elapsed time, so DST shifts don't skew it.
func SpanDays(start, end time.Time) int {
	if end.Before(start) {
		return 1
	}
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1 //nolint:mnd //hours per day
}
