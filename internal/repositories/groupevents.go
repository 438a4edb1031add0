package repositories

import (
	"context"

	"events.ourphilly.org/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type GroupEventRepository struct {
	db postgres.DB
}

// GetAll returns group events joined with their parent group. Events whose
// group was deleted still come back, with a nil Group.
func (repo *GroupEventRepository) GetAll(
	ctx context.Context,
) ([]models.GroupEventRow, error) {
	query := `
		SELECT e.id, e.title, e.description,
		e.start_date, e.end_date, e.start_time, e.end_time,
		e.image_url, e.area_id, e.latitude, e.longitude,
		g.name, g.img_url, g.slug, g.status
		FROM group_events e
		LEFT JOIN groups g ON g.id = e.group_id
		ORDER BY e.start_date ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	events := []models.GroupEventRow{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		event := models.GroupEventRow{}
		var description, endDate, startTime, endTime *string
		var imageKey, areaID *string
		var groupName, groupImage, groupSlug, groupStatus *string

		err = rows.Scan(
			&event.ID,
			&event.Title,
			&description,
			&event.StartDate,
			&endDate,
			&startTime,
			&endTime,
			&imageKey,
			&areaID,
			&event.Latitude,
			&event.Longitude,
			&groupName,
			&groupImage,
			&groupSlug,
			&groupStatus,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		event.Description = derefStr(description)
		event.EndDate = derefStr(endDate)
		event.StartTime = derefStr(startTime)
		event.EndTime = derefStr(endTime)
		event.ImageKey = derefStr(imageKey)
		event.AreaID = derefStr(areaID)

		if groupSlug != nil {
			event.Group = &models.GroupRow{
				Name:     derefStr(groupName),
				ImageURL: derefStr(groupImage),
				Slug:     *groupSlug,
				Status:   derefStr(groupStatus),
			}
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return events, nil
}
