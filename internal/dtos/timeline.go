package dtos

import (
	"time"

	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/timeutil"
)

// TimelineDto is the JSON shape of one assembled window. Degraded lists the
// source tables that failed and contributed nothing.
type TimelineDto struct {
	Start    string         `json:"start"`
	End      string         `json:"end"`
	Events   []models.Event `json:"events"`
	Degraded []string       `json:"degraded,omitempty"`
}

// FilterDto is the wire shape of a timeline filter, shared between query
// strings and saved views. Dates are ISO civil dates.
type FilterDto struct {
	Start  string   `json:"start"  schema:"start"`
	End    string   `json:"end"    schema:"end"`
	Tags   []string `json:"tags"   schema:"tags"`
	Match  string   `json:"match"  schema:"match"`
	AreaID string   `json:"areaId" schema:"areaId"`
	Search string   `json:"search" schema:"search"`
	MinLat *float64 `json:"minLat" schema:"minLat"`
	MaxLat *float64 `json:"maxLat" schema:"maxLat"`
	MinLng *float64 `json:"minLng" schema:"minLng"`
	MaxLng *float64 `json:"maxLng" schema:"maxLng"`
}

func (dto *FilterDto) Validate() (bool, map[string]string) {
	errors := make(map[string]string)

	if dto.Match != "" && dto.Match != "any" && dto.Match != "all" {
		errors["match"] = "must be 'any' or 'all'"
	}
	if dto.Start != "" && !isISODate(dto.Start) {
		errors["start"] = "must be an ISO date"
	}
	if dto.End != "" && !isISODate(dto.End) {
		errors["end"] = "must be an ISO date"
	}

	boundsSet := 0
	for _, b := range []*float64{dto.MinLat, dto.MaxLat, dto.MinLng, dto.MaxLng} {
		if b != nil {
			boundsSet++
		}
	}
	if boundsSet != 0 && boundsSet != 4 {
		errors["bounds"] = "minLat, maxLat, minLng and maxLng must be set together"
	}

	return len(errors) == 0, errors
}

// ToQuery converts the dto into the filter the query engine consumes.
// Validate must have passed first.
func (dto FilterDto) ToQuery(loc *time.Location) models.Query {
	q := models.Query{
		TagSlugs:   dto.Tags,
		AreaID:     dto.AreaID,
		SearchText: dto.Search,
	}

	if dto.Match == "all" {
		q.TagMatch = models.MatchAll
	}

	start, startOK := timeutil.ParseCivilDate(dto.Start, loc)
	end, endOK := timeutil.ParseCivilDate(dto.End, loc)
	if startOK {
		if !endOK || end.Before(start) {
			end = start
		}
		q.DateRange = &models.DateRange{
			Start: start,
			End:   timeutil.EndOfDay(end),
		}
	}

	if dto.MinLat != nil && dto.MaxLat != nil &&
		dto.MinLng != nil && dto.MaxLng != nil {
		q.Bounds = &models.MapBounds{
			MinLat: *dto.MinLat,
			MaxLat: *dto.MaxLat,
			MinLng: *dto.MinLng,
			MaxLng: *dto.MaxLng,
		}
	}

	return q
}

func isISODate(raw string) bool {
	_, err := time.Parse("2006-01-02", raw)
	return err == nil
}
