package models

import "time"

// Event is the canonical, read-only shape every source normalizes into.
// Instances are built fresh on every aggregation run and discarded with it.
type Event struct {
	ID          string      `json:"id"`
	SourceTable SourceTable `json:"sourceTable"`
	SourceID    string      `json:"sourceId"`

	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`

	// StartDate and EndDate are civil dates (midnight in the configured
	// timezone). EndDate is never before StartDate.
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	// StartTime and EndTime are wall-clock "HH:MM" strings local to the
	// event's civil date, or empty when unknown.
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`

	Location *Location `json:"location,omitempty"`

	// Tags is populated by the enricher. It is empty, never nil.
	Tags []Tag `json:"tags"`

	DetailPath  string `json:"detailPath,omitempty"`
	ExternalURL string `json:"externalUrl,omitempty"`

	Badges []string `json:"badges,omitempty"`
}

type Tag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Location struct {
	VenueName string   `json:"venueName,omitempty"`
	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	Postal    string   `json:"postal,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	AreaID    string   `json:"areaId,omitempty"`
	AreaName  string   `json:"areaName,omitempty"`
}

// HasCoordinates reports whether the event can be placed on a map.
func (e Event) HasCoordinates() bool {
	return e.Location != nil &&
		e.Location.Latitude != nil &&
		e.Location.Longitude != nil
}

// TagKey is the join key used by the tag enricher.
func (e Event) TagKey() string {
	return string(e.SourceTable) + ":" + e.SourceID
}
