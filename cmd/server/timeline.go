package main

import (
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"events.ourphilly.org/internal/dtos"
	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/services"
	"events.ourphilly.org/internal/timeutil"
)

// defaultLookaheadDays bounds /api/events when no explicit range is given.
const defaultLookaheadDays = 30

func (app *Application) timelineRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/events", app.eventsHandler)
	mux.HandleFunc("GET /api/events/day/{date}", app.dayHandler)
	mux.HandleFunc("GET /api/events/weekend", app.weekendHandler)
	mux.HandleFunc("GET /api/events/month/{month}", app.monthHandler)
	mux.HandleFunc("GET /api/areas", app.areasHandler)
}

func (app *Application) eventsHandler(w http.ResponseWriter, r *http.Request) {
	dto, errs := filterFromQuery(r.URL.Query())
	if len(errs) > 0 {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	if ok, errs := dto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	loc := app.services.Location
	window := app.windowFor(*dto)

	timeline, err := app.services.Timeline.Query(
		r.Context(),
		window,
		dto.ToQuery(loc),
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeTimeline(w, r, timeline)
}

func (app *Application) dayHandler(w http.ResponseWriter, r *http.Request) {
	rawDate, err := parse.URLParam[string](r, "date", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	day, ok := timeutil.ParseCivilDate(rawDate, app.services.Location)
	if !ok {
		httptools.FailedValidationResponse(w, r, map[string]string{
			"date": "must be an ISO date",
		})
		return
	}

	timeline, err := app.services.Timeline.Day(r.Context(), day)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeTimeline(w, r, timeline)
}

func (app *Application) weekendHandler(w http.ResponseWriter, r *http.Request) {
	timeline, err := app.services.Timeline.Weekend(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeTimeline(w, r, timeline)
}

func (app *Application) monthHandler(w http.ResponseWriter, r *http.Request) {
	slug, err := parse.URLParam[string](r, "month", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	month, ok := timeutil.MonthFromSlug(slug)
	if !ok {
		httptools.FailedValidationResponse(w, r, map[string]string{
			"month": "must be a month name",
		})
		return
	}

	loc := app.services.Location
	year := timeutil.ZonedNow(loc).Year()
	if rawYear := r.URL.Query().Get("year"); rawYear != "" {
		year, err = strconv.Atoi(rawYear)
		if err != nil {
			httptools.FailedValidationResponse(w, r, map[string]string{
				"year": "must be a number",
			})
			return
		}
	}

	timeline, err := app.services.Timeline.Collect(
		r.Context(),
		timeutil.MonthWindow(year, month, loc),
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeTimeline(w, r, timeline)
}

func (app *Application) areasHandler(w http.ResponseWriter, r *http.Request) {
	areas, err := app.repositories.Areas.GetAll(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, areas, nil)
	if err != nil {
		httptools.HandleError(w, r, err)
	}
}

func (app *Application) writeTimeline(
	w http.ResponseWriter,
	r *http.Request,
	timeline *services.Timeline,
) {
	err := httptools.WriteJSON(w, http.StatusOK, app.timelineDto(timeline), nil)
	if err != nil {
		httptools.HandleError(w, r, err)
	}
}

func (app *Application) timelineDto(timeline *services.Timeline) dtos.TimelineDto {
	degraded := []string{}
	for table := range timeline.SourceErrors {
		degraded = append(degraded, string(table))
	}
	sort.Strings(degraded)

	return dtos.TimelineDto{
		Start:    timeutil.ISODate(timeline.Window.Start),
		End:      timeutil.ISODate(timeline.Window.End),
		Events:   timeline.Events,
		Degraded: degraded,
	}
}

// windowFor derives the fetch window of /api/events from the filter's date
// range; without one it looks ahead a fixed number of days from today.
func (app *Application) windowFor(dto dtos.FilterDto) timeutil.Range {
	loc := app.services.Location

	start, startOK := timeutil.ParseCivilDate(dto.Start, loc)
	if !startOK {
		today := timeutil.StartOfDay(timeutil.ZonedNow(loc))
		return timeutil.Range{
			Start: today,
			End:   timeutil.EndOfDay(today.AddDate(0, 0, defaultLookaheadDays)),
		}
	}

	end, endOK := timeutil.ParseCivilDate(dto.End, loc)
	if !endOK || end.Before(start) {
		end = start
	}
	return timeutil.Range{
		Start: timeutil.StartOfDay(start),
		End:   timeutil.EndOfDay(end),
	}
}

// windowForQuery derives a fetch window from an already-built query.
func (app *Application) windowForQuery(q models.Query) timeutil.Range {
	if q.DateRange != nil {
		return timeutil.Range{Start: q.DateRange.Start, End: q.DateRange.End}
	}

	loc := app.services.Location
	today := timeutil.StartOfDay(timeutil.ZonedNow(loc))
	return timeutil.Range{
		Start: today,
		End:   timeutil.EndOfDay(today.AddDate(0, 0, defaultLookaheadDays)),
	}
}

func filterFromQuery(values url.Values) (*dtos.FilterDto, map[string]string) {
	dto := dtos.FilterDto{
		Start:  values.Get("start"),
		End:    values.Get("end"),
		Tags:   values["tags"],
		Match:  values.Get("match"),
		AreaID: values.Get("areaId"),
		Search: values.Get("search"),
	}

	errs := map[string]string{}
	for key, target := range map[string]**float64{
		"minLat": &dto.MinLat,
		"maxLat": &dto.MaxLat,
		"minLng": &dto.MinLng,
		"maxLng": &dto.MaxLng,
	} {
		raw := values.Get(key)
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs[key] = "must be a number"
			continue
		}
		*target = &parsed
	}

	return &dto, errs
}
