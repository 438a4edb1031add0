package normalize

import (
	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/timeutil"
)

// RetainInWindow decides whether an event belongs in a requested view
// window. Short events are kept on plain overlap; events spanning more than
// maxSpanDays are kept only when their start date falls inside the window.
// The same policy applies to every source.
func RetainInWindow(ev *models.Event, window timeutil.Range, maxSpanDays int) bool {
	if ev == nil {
		return false
	}
	if maxSpanDays <= 0 {
		maxSpanDays = DefaultMaxSpanDays
	}

	if !timeutil.Overlaps(ev.StartDate, timeutil.EndOfDay(ev.EndDate), window.Start, window.End) {
		return false
	}

	if timeutil.SpanDays(ev.StartDate, ev.EndDate) <= maxSpanDays {
		return true
	}

	return window.Contains(ev.StartDate)
}
