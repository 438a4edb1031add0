package timeutil_test

import (
	"testing"
	"time"

	"events.ourphilly.org/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestParseCivilDateISO(t *testing.T) {
	loc := newYork(t)

	parsed, ok := timeutil.ParseCivilDate("2025-01-04", loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 4, 0, 0, 0, 0, loc), parsed)

	parsed, ok = timeutil.ParseCivilDate("2025-01-04T19:30:00Z", loc)
	require.True(t, ok)
	assert.Equal(t, "2025-01-04", timeutil.ISODate(parsed))
}

func TestParseCivilDateSlash(t *testing.T) {
	loc := newYork(t)

	parsed, ok := timeutil.ParseCivilDate("5/1/2025", loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, loc), parsed)

	parsed, ok = timeutil.ParseCivilDate("5/1/2025 through 5/4/2025", loc)
	require.True(t, ok)
	assert.Equal(t, "2025-05-01", timeutil.ISODate(parsed))

	parsed, ok = timeutil.ParseCivilDate("5/1/2025 – 5/4/2025", loc)
	require.True(t, ok)
	assert.Equal(t, "2025-05-01", timeutil.ISODate(parsed))
}

func TestParseCivilDateMalformed(t *testing.T) {
	loc := newYork(t)

	for _, raw := range []string{
		"",
		"   ",
		"not-a-date",
		"13/45/2025",
		"2025-13-40",
		"5/2025",
		"tbd",
	} {
		_, ok := timeutil.ParseCivilDate(raw, loc)
		assert.False(t, ok, raw)
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	loc := newYork(t)
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, loc)
	}

	cases := []struct {
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{day(1), day(3), day(3), day(5), true},
		{day(1), day(2), day(3), day(5), false},
		{day(1), day(10), day(4), day(5), true},
		{day(5), day(5), day(5), day(5), true},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, timeutil.Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd))
		// Swapping which range is "event" and which is "window" must not
		// change the answer.
		assert.Equal(t, c.want, timeutil.Overlaps(c.bStart, c.bEnd, c.aStart, c.aEnd))
	}
}

func TestWeekendWindow(t *testing.T) {
	loc := newYork(t)

	// 2025-06-06 is a Friday.
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, loc)

	for _, now := range []time.Time{
		time.Date(2025, 6, 2, 9, 0, 0, 0, loc),  // Monday
		time.Date(2025, 6, 5, 23, 0, 0, 0, loc), // Thursday
		time.Date(2025, 6, 6, 12, 0, 0, 0, loc), // Friday itself
		time.Date(2025, 6, 7, 8, 0, 0, 0, loc),  // Saturday
		time.Date(2025, 6, 8, 20, 0, 0, 0, loc), // Sunday
	} {
		window := timeutil.WeekendWindow(now)
		assert.Equal(t, friday, window.Start, now.String())
		assert.Equal(t, "2025-06-08", timeutil.ISODate(window.End), now.String())
		assert.Equal(t, 23, window.End.Hour())

		// Idempotent for the same now.
		again := timeutil.WeekendWindow(now)
		assert.Equal(t, window, again)
	}

	// A Monday looks ahead, never back.
	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, loc)
	next := timeutil.WeekendWindow(monday)
	assert.Equal(t, "2025-06-13", timeutil.ISODate(next.Start))
}

func TestSpanDays(t *testing.T) {
	loc := newYork(t)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, loc)
	assert.Equal(t, 1, timeutil.SpanDays(start, start))
	assert.Equal(t, 3, timeutil.SpanDays(start, start.AddDate(0, 0, 2)))

	// Across the November fall-back DST shift.
	dstStart := time.Date(2025, 10, 31, 0, 0, 0, 0, loc)
	dstEnd := time.Date(2025, 11, 3, 0, 0, 0, 0, loc)
	assert.Equal(t, 4, timeutil.SpanDays(dstStart, dstEnd))
}

func TestMonthWindow(t *testing.T) {
	loc := newYork(t)

	window := timeutil.MonthWindow(2025, time.February, loc)
	assert.Equal(t, "2025-02-01", timeutil.ISODate(window.Start))
	assert.Equal(t, "2025-02-28", timeutil.ISODate(window.End))

	month, ok := timeutil.MonthFromSlug("february")
	require.True(t, ok)
	assert.Equal(t, time.February, month)
	assert.Equal(t, "february", timeutil.MonthSlug(time.February))
}
