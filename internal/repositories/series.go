package repositories

import (
	"context"

	"events.ourphilly.org/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type SeriesRepository struct {
	db postgres.DB
}

// GetActive returns recurring series that are active and carry a recurrence
// rule. Rows without a rule can never expand, so they are filtered here.
func (repo *SeriesRepository) GetActive(
	ctx context.Context,
) ([]models.SeriesRow, error) {
	query := `
		SELECT id, name, description, address, link, slug,
		start_date, end_date, start_time, end_time,
		rrule, image_url, area_id, latitude, longitude
		FROM recurring_events
		WHERE is_active AND rrule IS NOT NULL AND rrule <> ''
		ORDER BY id ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	series := []models.SeriesRow{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		s := models.SeriesRow{}
		var description, address, link, slug *string
		var endDate, startTime, endTime, imageKey, areaID *string

		err = rows.Scan(
			&s.ID,
			&s.Name,
			&description,
			&address,
			&link,
			&slug,
			&s.StartDate,
			&endDate,
			&startTime,
			&endTime,
			&s.RRule,
			&imageKey,
			&areaID,
			&s.Latitude,
			&s.Longitude,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		s.Description = derefStr(description)
		s.Address = derefStr(address)
		s.Link = derefStr(link)
		s.Slug = derefStr(slug)
		s.EndDate = derefStr(endDate)
		s.StartTime = derefStr(startTime)
		s.EndTime = derefStr(endTime)
		s.ImageKey = derefStr(imageKey)
		s.AreaID = derefStr(areaID)

		series = append(series, s)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return series, nil
}
