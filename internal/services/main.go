package services

import (
	"log/slog"
	"time"

	"events.ourphilly.org/internal/config"
	"events.ourphilly.org/internal/enrich"
	"events.ourphilly.org/internal/expand"
	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/normalize"
	"events.ourphilly.org/internal/repositories"
	"events.ourphilly.org/internal/storage"
	"events.ourphilly.org/internal/timeutil"
	"events.ourphilly.org/pkg/seatgeek"
	"github.com/xhit/go-str2duration/v2"
)

type Services struct {
	Timeline *TimelineService
	Areas    *AreaService
	Calendar *CalendarService
	Views    *ViewService
	Location *time.Location
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	repositories *repositories.Repositories,
	sportsClient seatgeek.Client,
) (*Services, error) {
	loc := timeutil.LoadLocation(cfg.Timezone)

	areaTTL, err := str2duration.ParseDuration(cfg.AreaCacheTTL)
	if err != nil {
		return nil, err
	}

	sportsTimeout, err := str2duration.ParseDuration(cfg.SportsTimeout)
	if err != nil {
		return nil, err
	}

	areas := NewAreaService(logger, repositories.Areas, areaTTL, time.Now)

	images := storage.NewURLResolver(cfg.StorageURL)
	normalizer := normalize.New(loc, images, areas.NameOf)
	expander := expand.New(logger, loc, images, areas.NameOf)
	enricher := enrich.New(logger, repositories.Taggings)

	timeline := NewTimelineService(logger, TimelineDeps{
		Store:         repositories,
		Sports:        sportsClient,
		Normalizer:    normalizer,
		Expander:      expander,
		Enricher:      enricher,
		Location:      loc,
		Order:         models.DefaultSourceOrder,
		MaxSpanDays:   cfg.MaxSpanDays,
		SportsTimeout: sportsTimeout,
		Performer:     cfg.SeatGeekPerformer,
		City:          cfg.City,
	})

	return &Services{
		Timeline: timeline,
		Areas:    areas,
		Calendar: NewCalendarService(cfg.WebURL, loc, time.Now),
		Views:    &ViewService{views: repositories.Views},
		Location: loc,
	}, nil
}
