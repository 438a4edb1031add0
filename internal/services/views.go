package services

import (
	"context"

	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/repositories"
)

// ViewService stores filter queries under share tokens so a curated view of
// the timeline can be linked or subscribed to.
type ViewService struct {
	views *repositories.SavedViewRepository
}

func (s *ViewService) Save(
	ctx context.Context,
	name string,
	q models.Query,
) (*models.SavedView, error) {
	return s.views.Create(ctx, name, q)
}

func (s *ViewService) Get(
	ctx context.Context,
	id string,
) (*models.SavedView, error) {
	return s.views.GetByID(ctx, id)
}
