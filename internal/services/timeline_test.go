package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"events.ourphilly.org/internal/enrich"
	"events.ourphilly.org/internal/expand"
	"events.ourphilly.org/internal/mocks"
	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/normalize"
	"events.ourphilly.org/internal/services"
	"events.ourphilly.org/internal/storage"
	"events.ourphilly.org/internal/timeutil"
)

func newTimelineService(
	t *testing.T,
	store *mocks.MockRecordStore,
	sports *mocks.MockSeatGeekClient,
	tags *mocks.MockTagSource,
) *services.TimelineService {
	t.Helper()

	loc := timeutil.LoadLocation("America/New_York")
	logger := logging.NewNopLogger()
	images := storage.NewURLResolver("https://cdn.example.com")

	return services.NewTimelineService(logger, services.TimelineDeps{
		Store:         store,
		Sports:        sports,
		Normalizer:    normalize.New(loc, images, nil),
		Expander:      expand.New(logger, loc, images, nil),
		Enricher:      enrich.New(logger, tags),
		Location:      loc,
		SportsTimeout: time.Second,
		Performer:     "phillies",
		City:          "Philadelphia",
	})
}

func weekendFixture(t *testing.T) timeutil.Range {
	t.Helper()

	loc := timeutil.LoadLocation("America/New_York")

	// Friday 2025-06-06 through Sunday 2025-06-08.
	return timeutil.WeekendWindow(time.Date(2025, 6, 6, 10, 0, 0, 0, loc))
}

func populatedStore() *mocks.MockRecordStore {
	store := mocks.NewMockRecordStore()
	store.PlainEvents = []models.EventRow{
		{
			ID:        41,
			Name:      "Jazz Night",
			StartDate: "2025-06-07",
			StartTime: "20:00",
			Slug:      "jazz-night",
		},
	}
	store.Traditions = []models.TraditionRow{
		{
			ID:    7,
			Name:  "Odunde Festival",
			Dates: "6/8/2025",
			Slug:  "odunde-festival",
		},
	}
	store.BigBoard = []models.BigBoardRow{
		{
			ID:        "bb-1",
			Title:     "Block Party",
			StartDate: "2025-06-07",
			Slug:      "block-party",
		},
	}
	store.GroupEvents = []models.GroupEventRow{
		{
			ID:        12,
			Title:     "Run Club Social",
			StartDate: "2025-06-06",
			Group: &models.GroupRow{
				Name: "Philly Runners",
				Slug: "philly-runners",
			},
		},
	}
	store.Series = []models.SeriesRow{
		{
			ID:        3,
			Name:      "Saturday Market",
			Slug:      "saturday-market",
			StartDate: "2025-01-04",
			StartTime: "09:00",
			RRule:     "FREQ=WEEKLY;BYDAY=SA",
		},
	}
	return store
}

func TestCollectMergesAllSources(t *testing.T) {
	store := populatedStore()
	tags := mocks.NewMockTagSource()
	tags.Associations[models.SourcePlainEvent] = []enrich.Association{
		{
			TaggableID: "41",
			Tag:        models.Tag{Name: "Music", Slug: "music"},
		},
	}

	service := newTimelineService(t, store, mocks.NewMockSeatGeekClient(), tags)

	timeline, err := service.Collect(context.Background(), weekendFixture(t))
	require.NoError(t, err)
	assert.Empty(t, timeline.SourceErrors)

	counts := map[models.SourceTable]int{}
	for _, ev := range timeline.Events {
		counts[ev.SourceTable]++
	}
	assert.Equal(t, 1, counts[models.SourcePlainEvent])
	assert.Equal(t, 1, counts[models.SourceTradition])
	assert.Equal(t, 1, counts[models.SourceBigBoard])
	assert.Equal(t, 1, counts[models.SourceGroupEvent])
	assert.Equal(t, 1, counts[models.SourceRecurring])
	assert.Equal(t, 1, counts[models.SourceSports])

	for _, ev := range timeline.Events {
		require.NotNil(t, ev.Tags)
		if ev.SourceTable == models.SourcePlainEvent {
			require.Len(t, ev.Tags, 1)
			assert.Equal(t, "music", ev.Tags[0].Slug)
		}
	}
}

func TestCollectOrdersWithinDay(t *testing.T) {
	store := populatedStore()
	service := newTimelineService(
		t,
		store,
		mocks.NewMockSeatGeekClient(),
		mocks.NewMockTagSource(),
	)

	timeline, err := service.Collect(context.Background(), weekendFixture(t))
	require.NoError(t, err)

	saturday := []models.SourceTable{}
	for _, ev := range timeline.Events {
		if timeutil.ISODate(ev.StartDate) == "2025-06-07" {
			saturday = append(saturday, ev.SourceTable)
		}
	}

	// Same day: the submission board outranks plain and recurring listings.
	require.NotEmpty(t, saturday)
	assert.Equal(t, models.SourceBigBoard, saturday[0])
}

func TestCollectSourceFailureIsolated(t *testing.T) {
	store := populatedStore()
	store.Errs[models.SourceTradition] = errors.New("connection refused")

	service := newTimelineService(
		t,
		store,
		mocks.NewMockSeatGeekClient(),
		mocks.NewMockTagSource(),
	)

	timeline, err := service.Collect(context.Background(), weekendFixture(t))
	require.NoError(t, err)

	require.Contains(t, timeline.SourceErrors, models.SourceTradition)
	for _, ev := range timeline.Events {
		assert.NotEqual(t, models.SourceTradition, ev.SourceTable)
	}
	assert.NotEmpty(t, timeline.Events)
}

func TestCollectSportsTimeoutDegrades(t *testing.T) {
	sports := mocks.NewMockSeatGeekClient()
	sports.Block = true

	service := newTimelineService(
		t,
		populatedStore(),
		sports,
		mocks.NewMockTagSource(),
	)

	timeline, err := service.Collect(context.Background(), weekendFixture(t))
	require.NoError(t, err)

	require.Contains(t, timeline.SourceErrors, models.SourceSports)
	for _, ev := range timeline.Events {
		assert.NotEqual(t, models.SourceSports, ev.SourceTable)
	}
}

func TestCollectCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := newTimelineService(
		t,
		populatedStore(),
		mocks.NewMockSeatGeekClient(),
		mocks.NewMockTagSource(),
	)

	_, err := service.Collect(ctx, weekendFixture(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestQueryAppliesFilter(t *testing.T) {
	tags := mocks.NewMockTagSource()
	tags.Associations[models.SourcePlainEvent] = []enrich.Association{
		{
			TaggableID: "41",
			Tag:        models.Tag{Name: "Music", Slug: "music"},
		},
	}

	service := newTimelineService(
		t,
		populatedStore(),
		mocks.NewMockSeatGeekClient(),
		tags,
	)

	timeline, err := service.Query(
		context.Background(),
		weekendFixture(t),
		models.Query{TagSlugs: []string{"music"}},
	)
	require.NoError(t, err)

	require.Len(t, timeline.Events, 1)
	assert.Equal(t, "Jazz Night", timeline.Events[0].Title)
}
