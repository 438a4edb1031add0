package jobs

import (
	"context"
	"log/slog"
	"time"

	"events.ourphilly.org/internal/services"
)

// AreaRefreshJob keeps the area name cache warm so requests never pay for a
// cold refresh.
type AreaRefreshJob struct {
	areaService *services.AreaService
	runEvery    time.Duration
}

func NewAreaRefreshJob(
	areaService *services.AreaService,
	runEvery time.Duration,
) AreaRefreshJob {
	return AreaRefreshJob{
		areaService: areaService,
		runEvery:    runEvery,
	}
}

func (j AreaRefreshJob) ID() string {
	return "area-refresh"
}

func (j AreaRefreshJob) RunEvery() time.Duration {
	return j.runEvery
}

func (j AreaRefreshJob) Run(ctx context.Context, logger *slog.Logger) error {
	logger.Debug("refreshing area names")
	return j.areaService.Refresh(ctx)
}
