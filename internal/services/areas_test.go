package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"events.ourphilly.org/internal/mocks"
	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/services"
)

func TestAreaNameCachesWithinTTL(t *testing.T) {
	store := &mocks.MockAreaStore{
		Areas: []models.AreaRow{
			{ID: "a1", Name: "Fishtown"},
			{ID: "a2", Name: "South Philly"},
		},
	}

	now := time.Date(2025, 6, 6, 10, 0, 0, 0, time.UTC)
	service := services.NewAreaService(
		logging.NewNopLogger(),
		store,
		24*time.Hour,
		func() time.Time { return now },
	)

	ctx := context.Background()
	assert.Equal(t, "Fishtown", service.Name(ctx, "a1"))
	assert.Equal(t, "South Philly", service.Name(ctx, "a2"))
	assert.Equal(t, "", service.Name(ctx, "missing"))
	assert.Equal(t, 1, store.Calls)

	now = now.Add(23 * time.Hour)
	assert.Equal(t, "Fishtown", service.Name(ctx, "a1"))
	assert.Equal(t, 1, store.Calls)

	now = now.Add(2 * time.Hour)
	assert.Equal(t, "Fishtown", service.Name(ctx, "a1"))
	assert.Equal(t, 2, store.Calls)
}

func TestAreaRefreshFailureServesStale(t *testing.T) {
	store := &mocks.MockAreaStore{
		Areas: []models.AreaRow{{ID: "a1", Name: "Fishtown"}},
	}

	now := time.Date(2025, 6, 6, 10, 0, 0, 0, time.UTC)
	service := services.NewAreaService(
		logging.NewNopLogger(),
		store,
		time.Hour,
		func() time.Time { return now },
	)

	ctx := context.Background()
	require.Equal(t, "Fishtown", service.Name(ctx, "a1"))

	store.Err = errors.New("connection refused")
	now = now.Add(2 * time.Hour)

	assert.Equal(t, "Fishtown", service.Name(ctx, "a1"))
}

func TestAreaColdCacheFailureReturnsEmpty(t *testing.T) {
	store := &mocks.MockAreaStore{Err: errors.New("connection refused")}

	service := services.NewAreaService(
		logging.NewNopLogger(),
		store,
		time.Hour,
		nil,
	)

	assert.Equal(t, "", service.Name(context.Background(), "a1"))
}
