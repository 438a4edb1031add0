package main

import (
	"net/http"
	"strings"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"events.ourphilly.org/internal/timeutil"
)

func (app *Application) calendarRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /calendar/weekend.ics", app.weekendFeedHandler)
	mux.HandleFunc("GET /calendar/day/{date}", app.dayFeedHandler)
	mux.HandleFunc("GET /calendar/views/{id}", app.viewFeedHandler)
}

func (app *Application) weekendFeedHandler(w http.ResponseWriter, r *http.Request) {
	timeline, err := app.services.Timeline.Weekend(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeFeed(w, app.services.Calendar.Feed("This Weekend", timeline.Events))
}

func (app *Application) dayFeedHandler(w http.ResponseWriter, r *http.Request) {
	rawDate, err := parse.URLParam[string](r, "date", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}
	rawDate = strings.TrimSuffix(rawDate, ".ics")

	day, ok := timeutil.ParseCivilDate(rawDate, app.services.Location)
	if !ok {
		http.Error(w, "Invalid feed URL", http.StatusBadRequest)
		return
	}

	timeline, err := app.services.Timeline.Day(r.Context(), day)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeFeed(w, app.services.Calendar.Feed(rawDate, timeline.Events))
}

func (app *Application) viewFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}
	id = strings.TrimSuffix(id, ".ics")

	view, err := app.services.Views.Get(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	timeline, err := app.services.Timeline.Query(
		r.Context(),
		app.windowForQuery(view.Query),
		view.Query,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeFeed(w, app.services.Calendar.Feed(view.Name, timeline.Events))
}

func (app *Application) writeFeed(w http.ResponseWriter, feed []byte) {
	w.Header().Set("Content-Type", "text/calendar")
	_, err := w.Write(feed)
	if err != nil {
		app.logger.Error("failed to write calendar feed", logging.ErrAttr(err))
	}
}
