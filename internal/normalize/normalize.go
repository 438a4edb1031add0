// Package normalize maps raw per-source records into the canonical Event
// shape. It is the only place dynamic per-source field layouts are
// interpreted; everything downstream sees models.Event. Normalizers perform
// no I/O and return nil for records without a usable start date.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/routing"
	"events.ourphilly.org/internal/timeutil"
)

// DefaultMaxSpanDays caps how long a multi-day listing may run before it is
// only shown on its start day. Open-ended multi-week listings should not
// dominate every day's view just because they technically overlap.
const DefaultMaxSpanDays = 10

// ImageResolver turns a stored object key into a public URL.
type ImageResolver interface {
	PublicURL(bucket, key string) string
}

// AreaNamer annotates an area id with its display name; "" when unknown.
type AreaNamer func(areaID string) string

// Normalizer converts raw rows from every source table into Events.
type Normalizer struct {
	loc      *time.Location
	images   ImageResolver
	areaName AreaNamer
}

func New(loc *time.Location, images ImageResolver, areaName AreaNamer) Normalizer {
	if areaName == nil {
		areaName = func(string) string { return "" }
	}
	return Normalizer{
		loc:      loc,
		images:   images,
		areaName: areaName,
	}
}

// PlainEvent normalizes a row of the all_events table.
func (n Normalizer) PlainEvent(row models.EventRow) *models.Event {
	start, ok := timeutil.ParseCivilDate(row.StartDate, n.loc)
	if !ok {
		return nil
	}
	end := endOrStart(row.EndDate, start, n.loc)

	var venueSlug string
	location := &models.Location{}
	if row.Venue != nil {
		venueSlug = row.Venue.Slug
		location.VenueName = row.Venue.Name
	}
	location.AreaID = firstNonEmpty(row.AreaID, venueAreaID(row.Venue))
	location.AreaName = n.areaName(location.AreaID)
	location.Latitude, location.Longitude = pickCoordinates(
		row.Latitude, row.Longitude, row.Venue,
	)

	sourceID := strconv.FormatInt(row.ID, 10)
	return &models.Event{
		ID:          "event-" + sourceID,
		SourceTable: models.SourcePlainEvent,
		SourceID:    sourceID,
		Title:       row.Name,
		Description: row.Description,
		ImageURL:    row.Image,
		StartDate:   start,
		EndDate:     end,
		StartTime:   cleanTime(row.StartTime),
		EndTime:     cleanTime(row.EndTime),
		Location:    emptyToNil(location),
		Tags:        []models.Tag{},
		DetailPath: routing.DetailPath(routing.Target{
			Table:     models.SourcePlainEvent,
			Slug:      row.Slug,
			VenueSlug: venueSlug,
		}),
		ExternalURL: row.Link,
		Badges:      []string{models.SourcePlainEvent.Badge()},
	}
}

// Tradition normalizes a row of the legacy events table, whose dates are US
// slash strings possibly embedded in a free-text range.
func (n Normalizer) Tradition(row models.TraditionRow) *models.Event {
	start, ok := timeutil.ParseCivilDate(row.Dates, n.loc)
	if !ok {
		return nil
	}
	end := endOrStart(row.EndDate, start, n.loc)

	location := &models.Location{
		AreaID:    row.AreaID,
		AreaName:  n.areaName(row.AreaID),
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
	}

	sourceID := strconv.FormatInt(row.ID, 10)
	return &models.Event{
		ID:          "trad-" + sourceID,
		SourceTable: models.SourceTradition,
		SourceID:    sourceID,
		Title:       row.Name,
		Description: row.Description,
		ImageURL:    row.Image,
		StartDate:   start,
		EndDate:     end,
		StartTime:   cleanTime(row.StartTime),
		Location:    emptyToNil(location),
		Tags:        []models.Tag{},
		DetailPath: routing.DetailPath(routing.Target{
			Table: models.SourceTradition,
			Slug:  row.Slug,
		}),
		Badges: []string{models.SourceTradition.Badge()},
	}
}

// BigBoard normalizes a user-submitted big board event. The flyer image
// lives on the linked post as a storage key.
func (n Normalizer) BigBoard(row models.BigBoardRow) *models.Event {
	start, ok := timeutil.ParseCivilDate(row.StartDate, n.loc)
	if !ok {
		return nil
	}
	end := endOrStart(row.EndDate, start, n.loc)

	location := &models.Location{
		AreaID:    row.AreaID,
		AreaName:  n.areaName(row.AreaID),
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
	}

	return &models.Event{
		ID:          "big-" + row.ID,
		SourceTable: models.SourceBigBoard,
		SourceID:    row.ID,
		Title:       row.Title,
		Description: row.Description,
		ImageURL:    n.images.PublicURL("big-board", row.ImageKey),
		StartDate:   start,
		EndDate:     end,
		StartTime:   cleanTime(row.StartTime),
		EndTime:     cleanTime(row.EndTime),
		Location:    emptyToNil(location),
		Tags:        []models.Tag{},
		DetailPath: routing.DetailPath(routing.Target{
			Table: models.SourceBigBoard,
			Slug:  row.Slug,
		}),
		Badges: []string{models.SourceBigBoard.Badge()},
	}
}

// GroupEvent normalizes a club/group event joined with its parent group.
func (n Normalizer) GroupEvent(row models.GroupEventRow) *models.Event {
	start, ok := timeutil.ParseCivilDate(row.StartDate, n.loc)
	if !ok {
		return nil
	}
	end := endOrStart(row.EndDate, start, n.loc)

	var groupSlug string
	imageURL := n.images.PublicURL("big-board", row.ImageKey)
	badges := []string{models.SourceGroupEvent.Badge()}
	if row.Group != nil {
		groupSlug = row.Group.Slug
		if imageURL == "" {
			imageURL = row.Group.ImageURL
		}
		if strings.EqualFold(row.Group.Status, "home") {
			badges = append(badges, "Featured")
		}
	}

	location := &models.Location{
		AreaID:    row.AreaID,
		AreaName:  n.areaName(row.AreaID),
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
	}

	sourceID := strconv.FormatInt(row.ID, 10)
	return &models.Event{
		ID:          "group-" + sourceID,
		SourceTable: models.SourceGroupEvent,
		SourceID:    sourceID,
		Title:       row.Title,
		Description: row.Description,
		ImageURL:    imageURL,
		StartDate:   start,
		EndDate:     end,
		StartTime:   cleanTime(row.StartTime),
		EndTime:     cleanTime(row.EndTime),
		Location:    emptyToNil(location),
		Tags:        []models.Tag{},
		DetailPath: routing.DetailPath(routing.Target{
			Table:      models.SourceGroupEvent,
			ParentSlug: groupSlug,
			ID:         sourceID,
		}),
		Badges: badges,
	}
}

func endOrStart(raw string, start time.Time, loc *time.Location) time.Time {
	end, ok := timeutil.ParseCivilDate(raw, loc)
	if !ok || end.Before(start) {
		return start
	}
	return end
}

func cleanTime(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 5 { //nolint:mnd //"HH:MM" prefix of "HH:MM:SS"
		return raw[:5]
	}
	return raw
}

func venueAreaID(venue *models.VenueRow) string {
	if venue == nil {
		return ""
	}
	return venue.AreaID
}

func pickCoordinates(
	lat, lng *float64,
	venue *models.VenueRow,
) (*float64, *float64) {
	if venue != nil {
		if lat == nil {
			lat = venue.Latitude
		}
		if lng == nil {
			lng = venue.Longitude
		}
	}
	if lat == nil || lng == nil {
		return nil, nil
	}
	return lat, lng
}

func emptyToNil(location *models.Location) *models.Location {
	if location == nil {
		return nil
	}
	if *location == (models.Location{}) {
		return nil
	}
	return location
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
