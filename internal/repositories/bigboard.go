package repositories

import (
	"context"

	"events.ourphilly.org/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type BigBoardRepository struct {
	db postgres.DB
}

// GetAll returns user-submitted big board events with the flyer storage key
// of their originating post.
func (repo *BigBoardRepository) GetAll(
	ctx context.Context,
) ([]models.BigBoardRow, error) {
	query := `
		SELECT e.id, e.title, e.description,
		e.start_date, e.end_date, e.start_time, e.end_time,
		e.slug, e.area_id, e.latitude, e.longitude,
		p.image_url
		FROM big_board_events e
		LEFT JOIN big_board_posts p ON p.event_id = e.id
		ORDER BY e.start_date ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	events := []models.BigBoardRow{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		event := models.BigBoardRow{}
		var description, endDate, startTime, endTime, slug, areaID, imageKey *string

		err = rows.Scan(
			&event.ID,
			&event.Title,
			&description,
			&event.StartDate,
			&endDate,
			&startTime,
			&endTime,
			&slug,
			&areaID,
			&event.Latitude,
			&event.Longitude,
			&imageKey,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		event.Description = derefStr(description)
		event.EndDate = derefStr(endDate)
		event.StartTime = derefStr(startTime)
		event.EndTime = derefStr(endTime)
		event.Slug = derefStr(slug)
		event.AreaID = derefStr(areaID)
		event.ImageKey = derefStr(imageKey)

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return events, nil
}
