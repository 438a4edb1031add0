package repositories

import (
	"context"

	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/timeutil"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

const eventFetchLimit = 5000

type EventRepository struct {
	db postgres.DB
}

// GetForWindow returns all_events rows that can intersect the window. The
// date predicate is pushed down: rows starting after the window, or ending
// before it, never leave the database.
func (repo *EventRepository) GetForWindow(
	ctx context.Context,
	window timeutil.Range,
) ([]models.EventRow, error) {
	query := `
		SELECT e.id, e.name, e.description, e.link, e.image,
		e.start_date, e.end_date, e.start_time, e.end_time,
		e.slug, e.area_id, e.latitude, e.longitude,
		v.name, v.slug, v.area_id, v.latitude, v.longitude
		FROM all_events e
		LEFT JOIN venues v ON v.id = e.venue_id
		WHERE e.start_date <= $2
		AND (
			e.end_date >= $1
			OR (e.end_date IS NULL AND e.start_date >= $1)
		)
		ORDER BY e.start_date ASC
		LIMIT $3
	`

	rows, err := repo.db.Query(
		ctx,
		query,
		timeutil.ISODate(window.Start),
		timeutil.ISODate(window.End),
		eventFetchLimit,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	events := []models.EventRow{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		event := models.EventRow{}
		var description, link, image, endDate, startTime, endTime, slug, areaID *string
		var venueName, venueSlug, venueAreaID *string
		var venueLat, venueLng *float64

		err = rows.Scan(
			&event.ID,
			&event.Name,
			&description,
			&link,
			&image,
			&event.StartDate,
			&endDate,
			&startTime,
			&endTime,
			&slug,
			&areaID,
			&event.Latitude,
			&event.Longitude,
			&venueName,
			&venueSlug,
			&venueAreaID,
			&venueLat,
			&venueLng,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		event.Description = derefStr(description)
		event.Link = derefStr(link)
		event.Image = derefStr(image)
		event.EndDate = derefStr(endDate)
		event.StartTime = derefStr(startTime)
		event.EndTime = derefStr(endTime)
		event.Slug = derefStr(slug)
		event.AreaID = derefStr(areaID)

		if venueName != nil || venueSlug != nil {
			event.Venue = &models.VenueRow{
				Name:      derefStr(venueName),
				Slug:      derefStr(venueSlug),
				AreaID:    derefStr(venueAreaID),
				Latitude:  venueLat,
				Longitude: venueLng,
			}
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return events, nil
}
