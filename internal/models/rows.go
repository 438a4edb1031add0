package models

// Raw record shapes as returned by the record store, one per source table.
// Field names and quirks (legacy quoted columns, free-text date ranges,
// storage keys instead of URLs) follow the store schema; the normalizers in
// internal/normalize are the only place these shapes are interpreted.

// VenueRow is the joined venue of a plain event.
type VenueRow struct {
	Name      string
	Slug      string
	AreaID    string
	Latitude  *float64
	Longitude *float64
}

// EventRow is a row of the all_events table.
type EventRow struct {
	ID          int64
	Name        string
	Description string
	Link        string
	Image       string
	StartDate   string // ISO date, possibly a full timestamp
	EndDate     string
	StartTime   string
	EndTime     string
	Slug        string
	AreaID      string
	Latitude    *float64
	Longitude   *float64
	Venue       *VenueRow
}

// TraditionRow is a row of the legacy events table. Dates and EndDate hold
// US slash dates, Dates possibly a free-text range ("5/1/2025 through
// 5/4/2025").
type TraditionRow struct {
	ID          int64
	Name        string
	Description string
	Dates       string
	EndDate     string
	Image       string
	Slug        string
	StartTime   string
	AreaID      string
	Latitude    *float64
	Longitude   *float64
}

// BigBoardRow is a user-submitted big board event joined with its post,
// which owns the flyer image as a storage key.
type BigBoardRow struct {
	ID          string
	Title       string
	Description string
	StartDate   string
	EndDate     string
	StartTime   string
	EndTime     string
	Slug        string
	AreaID      string
	Latitude    *float64
	Longitude   *float64
	ImageKey    string
}

// GroupRow is the joined parent group of a group event.
type GroupRow struct {
	Name     string
	ImageURL string
	Slug     string
	Status   string
}

// GroupEventRow is a row of the group_events table.
type GroupEventRow struct {
	ID          int64
	Title       string
	Description string
	StartDate   string
	EndDate     string
	StartTime   string
	EndTime     string
	ImageKey    string // storage key or absolute URL
	AreaID      string
	Latitude    *float64
	Longitude   *float64
	Group       *GroupRow
}

// SeriesRow is an active recurring series with its RRULE.
type SeriesRow struct {
	ID          int64
	Name        string
	Description string
	Address     string
	Link        string
	Slug        string
	StartDate   string // ISO date
	EndDate     string // ISO date, empty for open-ended series
	StartTime   string
	EndTime     string
	RRule       string
	ImageKey    string
	AreaID      string
	Latitude    *float64
	Longitude   *float64
}

// AreaRow is a row of the areas table.
type AreaRow struct {
	ID   string
	Name string
}
