// Package expand turns recurring-series records into concrete single-day
// occurrences within a bounded horizon.
package expand

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/normalize"
	"events.ourphilly.org/internal/routing"
	"events.ourphilly.org/internal/timeutil"
	"github.com/teambition/rrule-go"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

// defaultMaxOccurrencesPerSeries guards against pathological rules producing
// enormous expansions inside one horizon.
const defaultMaxOccurrencesPerSeries = 500

var ErrUnboundedHorizon = errors.New("expand: horizon must be bounded on both ends")

// Expander expands series against horizons. A bad rule skips that series
// only; one broken record must never abort expansion of the others.
type Expander struct {
	logger       *slog.Logger
	loc          *time.Location
	images       normalize.ImageResolver
	areaName     normalize.AreaNamer
	maxPerSeries int
}

func New(
	logger *slog.Logger,
	loc *time.Location,
	images normalize.ImageResolver,
	areaName normalize.AreaNamer,
) *Expander {
	if areaName == nil {
		areaName = func(string) string { return "" }
	}
	return &Expander{
		logger:       logger,
		loc:          loc,
		images:       images,
		areaName:     areaName,
		maxPerSeries: defaultMaxOccurrencesPerSeries,
	}
}

// ExpandAll expands every series, skipping the ones that fail.
func (e *Expander) ExpandAll(
	series []models.SeriesRow,
	horizon timeutil.Range,
) []models.Event {
	events := []models.Event{}
	for _, s := range series {
		occurrences, err := e.Expand(s, horizon)
		if err != nil {
			e.logger.Warn(
				"skipping recurring series",
				slog.Int64("series_id", s.ID),
				logging.ErrAttr(err),
			)
			continue
		}
		events = append(events, occurrences...)
	}
	return events
}

// Expand enumerates the occurrences of one series intersecting the horizon,
// both ends inclusive. The horizon is mandatory: rules without an end date
// would otherwise enumerate forever.
func (e *Expander) Expand(
	s models.SeriesRow,
	horizon timeutil.Range,
) ([]models.Event, error) {
	if horizon.Start.IsZero() || horizon.End.IsZero() {
		return nil, ErrUnboundedHorizon
	}
	if horizon.End.Before(horizon.Start) {
		return nil, fmt.Errorf("expand: horizon end %s before start %s",
			timeutil.ISODate(horizon.End), timeutil.ISODate(horizon.Start))
	}

	anchor, ok := e.seriesAnchor(s)
	if !ok {
		return nil, fmt.Errorf("expand: series %d has unparsable start date %q", s.ID, s.StartDate)
	}

	rule, err := rrule.StrToRRule(s.RRule)
	if err != nil {
		return nil, fmt.Errorf("expand: series %d rule %q: %w", s.ID, s.RRule, err)
	}
	rule.DTStart(anchor)

	if s.EndDate != "" {
		until, untilOK := timeutil.ParseCivilDate(s.EndDate, e.loc)
		if untilOK {
			rule.Until(timeutil.EndOfDay(until))
		}
	}

	times := rule.Between(horizon.Start, horizon.End, true)
	if len(times) > e.maxPerSeries {
		e.logger.Warn(
			"truncating series occurrences",
			slog.Int64("series_id", s.ID),
			slog.Int("cap", e.maxPerSeries),
		)
		times = times[:e.maxPerSeries]
	}

	occurrences := make([]models.Event, 0, len(times))
	seen := map[string]struct{}{}
	for _, t := range times {
		ev := e.occurrence(s, t.In(e.loc))
		if _, dup := seen[ev.ID]; dup {
			continue
		}
		seen[ev.ID] = struct{}{}
		occurrences = append(occurrences, ev)
	}

	return occurrences, nil
}

// seriesAnchor is the rule's DTSTART: the series start date at its start
// time, midnight when no time is given.
func (e *Expander) seriesAnchor(s models.SeriesRow) (time.Time, bool) {
	day, ok := timeutil.ParseCivilDate(s.StartDate, e.loc)
	if !ok {
		return time.Time{}, false
	}

	clock, err := time.Parse("15:04", clockOf(s.StartTime))
	if err != nil {
		return day, true
	}
	return day.Add(
		time.Duration(clock.Hour())*time.Hour +
			time.Duration(clock.Minute())*time.Minute,
	), true
}

func clockOf(raw string) string {
	if len(raw) >= 5 { //nolint:mnd //"HH:MM" prefix
		return raw[:5]
	}
	return raw
}

func (e *Expander) occurrence(s models.SeriesRow, t time.Time) models.Event {
	day := timeutil.StartOfDay(t)
	iso := timeutil.ISODate(day)
	seriesID := strconv.FormatInt(s.ID, 10)

	location := &models.Location{
		Address:   s.Address,
		AreaID:    s.AreaID,
		AreaName:  e.areaName(s.AreaID),
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
	}
	if *location == (models.Location{}) {
		location = nil
	}

	return models.Event{
		ID:          seriesID + "::" + iso,
		SourceTable: models.SourceRecurring,
		SourceID:    seriesID,
		Title:       s.Name,
		Description: s.Description,
		ImageURL:    e.images.PublicURL("big-board", s.ImageKey),
		StartDate:   day,
		EndDate:     day,
		StartTime:   clockOf(s.StartTime),
		EndTime:     clockOf(s.EndTime),
		Location:    location,
		Tags:        []models.Tag{},
		DetailPath: routing.DetailPath(routing.Target{
			Table:          models.SourceRecurring,
			Slug:           s.Slug,
			OccurrenceDate: iso,
		}),
		ExternalURL: s.Link,
		Badges:      []string{models.SourceRecurring.Badge()},
	}
}
