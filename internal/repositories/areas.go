package repositories

import (
	"context"

	"events.ourphilly.org/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type AreaRepository struct {
	db postgres.DB
}

func (repo *AreaRepository) GetAll(ctx context.Context) ([]models.AreaRow, error) {
	query := `
		SELECT id, name
		FROM areas
		ORDER BY name ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	areas := []models.AreaRow{}
	for rows.Next() {
		var area models.AreaRow

		err = rows.Scan(&area.ID, &area.Name)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		areas = append(areas, area)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return areas, nil
}
