package repositories

import (
	"context"

	"events.ourphilly.org/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type TraditionRepository struct {
	db postgres.DB
}

// GetAll returns every curated tradition. The legacy table keeps its dates
// as free-text US slash strings, so date filtering happens after parsing,
// not in SQL.
func (repo *TraditionRepository) GetAll(
	ctx context.Context,
) ([]models.TraditionRow, error) {
	query := `
		SELECT id, "E Name", "E Description", "Dates", "End Date", "E Image",
		slug, start_time, area_id, latitude, longitude
		FROM events
		ORDER BY "Dates" ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	traditions := []models.TraditionRow{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		tradition := models.TraditionRow{}
		var description, dates, endDate, image, slug, startTime, areaID *string

		err = rows.Scan(
			&tradition.ID,
			&tradition.Name,
			&description,
			&dates,
			&endDate,
			&image,
			&slug,
			&startTime,
			&areaID,
			&tradition.Latitude,
			&tradition.Longitude,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		tradition.Description = derefStr(description)
		tradition.Dates = derefStr(dates)
		tradition.EndDate = derefStr(endDate)
		tradition.Image = derefStr(image)
		tradition.Slug = derefStr(slug)
		tradition.StartTime = derefStr(startTime)
		tradition.AreaID = derefStr(areaID)

		traditions = append(traditions, tradition)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return traditions, nil
}
