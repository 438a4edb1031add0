package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"events.ourphilly.org/internal/aggregate"
	"events.ourphilly.org/internal/enrich"
	"events.ourphilly.org/internal/expand"
	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/normalize"
	"events.ourphilly.org/internal/query"
	"events.ourphilly.org/internal/timeutil"
	"events.ourphilly.org/pkg/seatgeek"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
)

// RecordStore is the record-fetch surface of the database, one batched read
// per source table. *repositories.Repositories satisfies it.
type RecordStore interface {
	GetPlainEvents(
		ctx context.Context,
		window timeutil.Range,
	) ([]models.EventRow, error)
	GetTraditions(ctx context.Context) ([]models.TraditionRow, error)
	GetBigBoardEvents(ctx context.Context) ([]models.BigBoardRow, error)
	GetGroupEvents(ctx context.Context) ([]models.GroupEventRow, error)
	GetRecurringSeries(ctx context.Context) ([]models.SeriesRow, error)
}

// Timeline is one assembled window: every source fetched, normalized,
// merged, deduplicated and tagged. SourceErrors records which sources
// degraded; their events are simply absent.
type Timeline struct {
	Window       timeutil.Range
	Events       []models.Event
	SourceErrors map[models.SourceTable]error
}

// TimelineService fetches all sources concurrently and assembles the
// canonical event timeline. A failing source never fails the timeline.
type TimelineService struct {
	logger        *slog.Logger
	store         RecordStore
	sports        seatgeek.Client
	normalizer    normalize.Normalizer
	expander      *expand.Expander
	enricher      *enrich.Enricher
	loc           *time.Location
	order         models.SourceOrder
	maxSpanDays   int
	sportsTimeout time.Duration
	performer     string
	city          string
}

// TimelineDeps bundles the collaborators of the timeline service.
type TimelineDeps struct {
	Store         RecordStore
	Sports        seatgeek.Client
	Normalizer    normalize.Normalizer
	Expander      *expand.Expander
	Enricher      *enrich.Enricher
	Location      *time.Location
	Order         models.SourceOrder
	MaxSpanDays   int
	SportsTimeout time.Duration
	Performer     string
	City          string
}

func NewTimelineService(logger *slog.Logger, deps TimelineDeps) *TimelineService {
	if deps.Order == nil {
		deps.Order = models.DefaultSourceOrder
	}
	if deps.MaxSpanDays == 0 {
		deps.MaxSpanDays = normalize.DefaultMaxSpanDays
	}
	return &TimelineService{
		logger:        logger,
		store:         deps.Store,
		sports:        deps.Sports,
		normalizer:    deps.Normalizer,
		expander:      deps.Expander,
		enricher:      deps.Enricher,
		loc:           deps.Location,
		order:         deps.Order,
		maxSpanDays:   deps.MaxSpanDays,
		sportsTimeout: deps.SportsTimeout,
		performer:     deps.Performer,
		city:          deps.City,
	}
}

// Collect assembles the timeline for one window. Each source is fetched and
// normalized in its own worker; a source that errors is recorded in
// SourceErrors and contributes nothing. The sports feed additionally runs
// under its own timeout so a slow upstream cannot stall the whole window.
func (s *TimelineService) Collect(
	ctx context.Context,
	window timeutil.Range,
) (*Timeline, error) {
	perSource := map[models.SourceTable][]models.Event{}
	sourceErrors := map[models.SourceTable]error{}
	mu := sync.Mutex{}

	fetchers := map[models.SourceTable]func(context.Context) ([]models.Event, error){
		models.SourcePlainEvent: func(ctx context.Context) ([]models.Event, error) {
			return s.fetchPlainEvents(ctx, window)
		},
		models.SourceTradition: func(ctx context.Context) ([]models.Event, error) {
			return s.fetchTraditions(ctx, window)
		},
		models.SourceBigBoard: func(ctx context.Context) ([]models.Event, error) {
			return s.fetchBigBoard(ctx, window)
		},
		models.SourceGroupEvent: func(ctx context.Context) ([]models.Event, error) {
			return s.fetchGroupEvents(ctx, window)
		},
		models.SourceRecurring: func(ctx context.Context) ([]models.Event, error) {
			return s.fetchRecurring(ctx, window)
		},
		models.SourceSports: func(ctx context.Context) ([]models.Event, error) {
			return s.fetchSports(ctx, window)
		},
	}

	workerPool := threading.NewWorkerPool(s.logger, len(fetchers), len(fetchers))
	for table, fetch := range fetchers {
		workerPool.EnqueueWork(func(_ context.Context, logger *slog.Logger) error {
			events, err := fetch(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Warn(
					"source degraded, timeline continues without it",
					slog.String("source", string(table)),
					logging.ErrAttr(err),
				)
				sourceErrors[table] = err
				return nil
			}
			perSource[table] = events
			return nil
		})
	}
	workerPool.WaitUntilDone()

	// A cancelled request must not pay for merge and tag enrichment.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := aggregate.Merge(
		s.order,
		perSource[models.SourcePlainEvent],
		perSource[models.SourceTradition],
		perSource[models.SourceBigBoard],
		perSource[models.SourceGroupEvent],
		perSource[models.SourceRecurring],
		perSource[models.SourceSports],
	)

	return &Timeline{
		Window:       window,
		Events:       s.enricher.Enrich(ctx, merged),
		SourceErrors: sourceErrors,
	}, nil
}

// Query assembles the window and applies the filter on top, preserving the
// timeline's ordering.
func (s *TimelineService) Query(
	ctx context.Context,
	window timeutil.Range,
	q models.Query,
) (*Timeline, error) {
	timeline, err := s.Collect(ctx, window)
	if err != nil {
		return nil, err
	}

	timeline.Events = query.Apply(timeline.Events, q)
	return timeline, nil
}

// Day assembles the timeline of a single civil date.
func (s *TimelineService) Day(
	ctx context.Context,
	date time.Time,
) (*Timeline, error) {
	return s.Collect(ctx, timeutil.DayWindow(date))
}

// Weekend assembles the upcoming Friday through Sunday window.
func (s *TimelineService) Weekend(ctx context.Context) (*Timeline, error) {
	return s.Collect(ctx, timeutil.WeekendWindow(timeutil.ZonedNow(s.loc)))
}

func (s *TimelineService) fetchPlainEvents(
	ctx context.Context,
	window timeutil.Range,
) ([]models.Event, error) {
	rows, err := s.store.GetPlainEvents(ctx, window)
	if err != nil {
		return nil, err
	}

	events := []models.Event{}
	for _, row := range rows {
		ev := s.normalizer.PlainEvent(row)
		if ev == nil {
			continue
		}
		if normalize.RetainInWindow(ev, window, s.maxSpanDays) {
			events = append(events, *ev)
		}
	}
	return events, nil
}

func (s *TimelineService) fetchTraditions(
	ctx context.Context,
	window timeutil.Range,
) ([]models.Event, error) {
	rows, err := s.store.GetTraditions(ctx)
	if err != nil {
		return nil, err
	}

	events := []models.Event{}
	for _, row := range rows {
		ev := s.normalizer.Tradition(row)
		if ev == nil {
			continue
		}
		if normalize.RetainInWindow(ev, window, s.maxSpanDays) {
			events = append(events, *ev)
		}
	}
	return events, nil
}

func (s *TimelineService) fetchBigBoard(
	ctx context.Context,
	window timeutil.Range,
) ([]models.Event, error) {
	rows, err := s.store.GetBigBoardEvents(ctx)
	if err != nil {
		return nil, err
	}

	events := []models.Event{}
	for _, row := range rows {
		ev := s.normalizer.BigBoard(row)
		if ev == nil {
			continue
		}
		if normalize.RetainInWindow(ev, window, s.maxSpanDays) {
			events = append(events, *ev)
		}
	}
	return events, nil
}

func (s *TimelineService) fetchGroupEvents(
	ctx context.Context,
	window timeutil.Range,
) ([]models.Event, error) {
	rows, err := s.store.GetGroupEvents(ctx)
	if err != nil {
		return nil, err
	}

	events := []models.Event{}
	for _, row := range rows {
		ev := s.normalizer.GroupEvent(row)
		if ev == nil {
			continue
		}
		if normalize.RetainInWindow(ev, window, s.maxSpanDays) {
			events = append(events, *ev)
		}
	}
	return events, nil
}

func (s *TimelineService) fetchRecurring(
	ctx context.Context,
	window timeutil.Range,
) ([]models.Event, error) {
	series, err := s.store.GetRecurringSeries(ctx)
	if err != nil {
		return nil, err
	}

	return s.expander.ExpandAll(series, window), nil
}

func (s *TimelineService) fetchSports(
	ctx context.Context,
	window timeutil.Range,
) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.sportsTimeout)
	defer cancel()

	feed, err := s.sports.GetEvents(ctx, s.performer, s.city)
	if err != nil {
		return nil, err
	}

	events := []models.Event{}
	for _, fixture := range feed {
		ev := s.normalizer.SportsEvent(fixture)
		if ev == nil {
			continue
		}
		if normalize.RetainInWindow(ev, window, s.maxSpanDays) {
			events = append(events, *ev)
		}
	}
	return events, nil
}
