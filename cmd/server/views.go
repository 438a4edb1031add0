package main

import (
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"events.ourphilly.org/internal/dtos"
)

func (app *Application) viewRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/views", app.createViewHandler)
	mux.HandleFunc("GET /api/views/{id}", app.getViewHandler)
	mux.HandleFunc("GET /api/views/{id}/events", app.viewEventsHandler)
}

func (app *Application) createViewHandler(w http.ResponseWriter, r *http.Request) {
	var dto dtos.SaveViewDto

	err := httptools.ReadJSON(r.Body, &dto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := dto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	view, err := app.services.Views.Save(
		r.Context(),
		dto.Name,
		dto.Filter.ToQuery(app.services.Location),
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusCreated, view, nil)
	if err != nil {
		httptools.HandleError(w, r, err)
	}
}

func (app *Application) getViewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	view, err := app.services.Views.Get(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, view, nil)
	if err != nil {
		httptools.HandleError(w, r, err)
	}
}

// viewEventsHandler runs a saved view's query against the window it names,
// falling back to the default lookahead when the view has no date range.
func (app *Application) viewEventsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

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

	app.writeTimeline(w, r, timeline)
}
