package seatgeek

type EventsResponse struct {
	Events []Event `json:"events"`
}

type Event struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	ShortTitle    string      `json:"short_title"`
	URL           string      `json:"url"`
	DatetimeLocal string      `json:"datetime_local"`
	Performers    []Performer `json:"performers"`
	Venue         Venue       `json:"venue"`
}

type Performer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	HomeTeam bool   `json:"home_team"`
}

type Venue struct {
	Name     string   `json:"name"`
	City     string   `json:"city"`
	State    string   `json:"state"`
	Postal   string   `json:"postal_code"`
	Address  string   `json:"address"`
	Location Geo      `json:"location"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
}

type Geo struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// Coordinates picks the first usable lat/lon pair the feed exposes; the API
// duplicates coordinates across fields and some are zeroed.
func (v Venue) Coordinates() (*float64, *float64) {
	lat := pickCoordinate(v.Location.Lat, v.Lat)
	lon := pickCoordinate(v.Location.Lon, v.Lon)
	if lat == nil || lon == nil {
		return nil, nil
	}
	return lat, lon
}

func pickCoordinate(values ...*float64) *float64 {
	for _, v := range values {
		if v == nil {
			continue
		}
		abs := *v
		if abs < 0 {
			abs = -abs
		}
		if abs > 0.001 { //nolint:mnd //zeroed coordinates come through as ~0
			return v
		}
	}
	return nil
}
