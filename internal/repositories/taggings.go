package repositories

import (
	"context"

	"events.ourphilly.org/internal/enrich"
	"events.ourphilly.org/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type TaggingRepository struct {
	db postgres.DB
}

// AssociationsFor returns the tag associations of the given records in one
// round trip per table. Legacy taggings spell the type in singular form, so
// every known alias is matched.
func (repo *TaggingRepository) AssociationsFor(
	ctx context.Context,
	table models.SourceTable,
	ids []string,
) ([]enrich.Association, error) {
	query := `
		SELECT tg.taggable_id, t.name, t.slug
		FROM taggings tg
		JOIN tags t ON t.id = tg.tag_id
		WHERE tg.taggable_type = ANY($1) AND tg.taggable_id = ANY($2)
	`

	rows, err := repo.db.Query(
		ctx,
		query,
		models.TaggableTypeAliases(table),
		ids,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	associations := []enrich.Association{}
	for rows.Next() {
		var association enrich.Association

		err = rows.Scan(
			&association.TaggableID,
			&association.Tag.Name,
			&association.Tag.Slug,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		associations = append(associations, association)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return associations, nil
}
