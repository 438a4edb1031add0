package repositories

import (
	"context"

	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/timeutil"
)

// The methods below satisfy services.RecordStore so the service layer can be
// tested against an in-memory store without a database.

func (r *Repositories) GetPlainEvents(
	ctx context.Context,
	window timeutil.Range,
) ([]models.EventRow, error) {
	return r.Events.GetForWindow(ctx, window)
}

func (r *Repositories) GetTraditions(
	ctx context.Context,
) ([]models.TraditionRow, error) {
	return r.Traditions.GetAll(ctx)
}

func (r *Repositories) GetBigBoardEvents(
	ctx context.Context,
) ([]models.BigBoardRow, error) {
	return r.BigBoard.GetAll(ctx)
}

func (r *Repositories) GetGroupEvents(
	ctx context.Context,
) ([]models.GroupEventRow, error) {
	return r.Groups.GetAll(ctx)
}

func (r *Repositories) GetRecurringSeries(
	ctx context.Context,
) ([]models.SeriesRow, error) {
	return r.Series.GetActive(ctx)
}
