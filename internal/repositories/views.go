package repositories

import (
	"context"
	"encoding/json"

	"events.ourphilly.org/internal/models"
	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type SavedViewRepository struct {
	db postgres.DB
}

// Create stores a filter query under a fresh share token.
func (repo *SavedViewRepository) Create(
	ctx context.Context,
	name string,
	filterQuery models.Query,
) (*models.SavedView, error) {
	view := models.SavedView{
		ID:    uuid.NewString(),
		Name:  name,
		Query: filterQuery,
	}

	payload, err := json.Marshal(filterQuery)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO saved_views (id, name, query)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err = repo.db.QueryRow(
		ctx,
		query,
		view.ID,
		view.Name,
		payload,
	).Scan(&view.CreatedAt)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &view, nil
}

func (repo *SavedViewRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.SavedView, error) {
	query := `
		SELECT name, query, created_at
		FROM saved_views
		WHERE id = $1
	`

	view := models.SavedView{
		ID: id,
	}
	var payload []byte

	err := repo.db.QueryRow(ctx, query, id).
		Scan(&view.Name, &payload, &view.CreatedAt)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	err = json.Unmarshal(payload, &view.Query)
	if err != nil {
		return nil, err
	}

	return &view, nil
}
