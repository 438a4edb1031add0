package models

import "time"

// TagMatch selects how a multi-tag filter combines its slugs.
type TagMatch int

const (
	// MatchAny keeps events carrying at least one requested tag.
	MatchAny TagMatch = iota
	// MatchAll keeps events carrying every requested tag.
	MatchAll
)

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MapBounds is an inclusive geographic bounding box.
type MapBounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

func (b MapBounds) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lng >= b.MinLng && lng <= b.MaxLng
}

// Query is the filter a view requests against the enriched timeline.
// Nil or zero fields place no constraint; set fields compose as AND.
type Query struct {
	DateRange  *DateRange `json:"dateRange,omitempty"`
	TagSlugs   []string   `json:"tagSlugs,omitempty"`
	TagMatch   TagMatch   `json:"tagMatch,omitempty"`
	AreaID     string     `json:"areaId,omitempty"`
	Bounds     *MapBounds `json:"bounds,omitempty"`
	SearchText string     `json:"searchText,omitempty"`
}
