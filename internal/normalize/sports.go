package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/routing"
	"events.ourphilly.org/internal/timeutil"
	"events.ourphilly.org/pkg/seatgeek"
)

// SportsEvent normalizes one ticketing-feed event. The feed reports a local
// start timestamp; a game is always a single civil day.
func (n Normalizer) SportsEvent(ev seatgeek.Event) *models.Event {
	start, ok := timeutil.ParseCivilDate(ev.DatetimeLocal, n.loc)
	if !ok {
		return nil
	}

	home, away := splitPerformers(ev.Performers)

	title := ev.ShortTitle
	if title == "" && home != nil {
		title = versusTitle(home, away, ev.Venue.City)
	}
	if title == "" {
		title = ev.Title
	}

	var imageURL string
	if home != nil {
		imageURL = home.Image
	}
	if imageURL == "" && away != nil {
		imageURL = away.Image
	}

	lat, lng := ev.Venue.Coordinates()
	location := &models.Location{
		VenueName: ev.Venue.Name,
		Address:   ev.Venue.Address,
		City:      ev.Venue.City,
		State:     ev.Venue.State,
		Postal:    ev.Venue.Postal,
		Latitude:  lat,
		Longitude: lng,
	}

	sourceID := strconv.FormatInt(ev.ID, 10)
	return &models.Event{
		ID:          "sg-" + sourceID,
		SourceTable: models.SourceSports,
		SourceID:    sourceID,
		Title:       title,
		StartDate:   start,
		EndDate:     start,
		StartTime:   localClock(ev.DatetimeLocal),
		Location:    emptyToNil(location),
		Tags:        []models.Tag{},
		DetailPath: routing.DetailPath(routing.Target{
			Table: models.SourceSports,
			ID:    sourceID,
		}),
		ExternalURL: ev.URL,
		Badges:      []string{models.SourceSports.Badge()},
	}
}

func splitPerformers(performers []seatgeek.Performer) (*seatgeek.Performer, *seatgeek.Performer) {
	if len(performers) == 0 {
		return nil, nil
	}

	home := &performers[0]
	for i := range performers {
		if performers[i].HomeTeam {
			home = &performers[i]
			break
		}
	}

	for i := range performers {
		if performers[i].ID != home.ID {
			return home, &performers[i]
		}
	}
	return home, nil
}

func versusTitle(home, away *seatgeek.Performer, city string) string {
	if away == nil {
		return shortTeamName(home.Name, city)
	}
	return fmt.Sprintf(
		"%s vs %s",
		shortTeamName(home.Name, city),
		shortTeamName(away.Name, city),
	)
}

// shortTeamName drops the home-city prefix so titles read "Phillies vs Mets".
func shortTeamName(name, city string) string {
	if city == "" {
		return name
	}
	return strings.TrimPrefix(name, city+" ")
}

// localClock extracts "HH:MM" from an ISO local timestamp, "" when absent.
func localClock(datetimeLocal string) string {
	const clockStart, clockEnd = 11, 16
	if len(datetimeLocal) < clockEnd {
		return ""
	}
	return datetimeLocal[clockStart:clockEnd]
}
