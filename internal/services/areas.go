package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"events.ourphilly.org/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

// AreaStore is the area lookup surface of the database.
type AreaStore interface {
	GetAll(ctx context.Context) ([]models.AreaRow, error)
}

// AreaService caches the id-to-name map of areas. Areas change rarely, so
// the map is refreshed at most once per TTL; a failed refresh keeps serving
// the previous map rather than dropping area names from the timeline.
type AreaService struct {
	logger *slog.Logger
	store  AreaStore
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	byID      map[string]string
	fetchedAt time.Time
}

func NewAreaService(
	logger *slog.Logger,
	store AreaStore,
	ttl time.Duration,
	now func() time.Time,
) *AreaService {
	if now == nil {
		now = time.Now
	}
	return &AreaService{
		logger: logger,
		store:  store,
		ttl:    ttl,
		now:    now,
	}
}

// Name returns the display name of an area, or "" when unknown.
func (s *AreaService) Name(ctx context.Context, areaID string) string {
	if areaID == "" {
		return ""
	}
	return s.names(ctx)[areaID]
}

// NameOf is Name without a request context. It satisfies normalize.AreaNamer;
// a stale cache refreshes on background context, which is fine for a lookup
// that only decorates events.
func (s *AreaService) NameOf(areaID string) string {
	return s.Name(context.Background(), areaID)
}

// Refresh forces a reload regardless of TTL. The periodic job uses this to
// keep the cache warm outside request paths.
func (s *AreaService) Refresh(ctx context.Context) error {
	areas, err := s.store.GetAll(ctx)
	if err != nil {
		return err
	}

	byID := make(map[string]string, len(areas))
	for _, area := range areas {
		byID[area.ID] = area.Name
	}

	s.mu.Lock()
	s.byID = byID
	s.fetchedAt = s.now()
	s.mu.Unlock()

	return nil
}

func (s *AreaService) names(ctx context.Context) map[string]string {
	s.mu.Lock()
	fresh := s.byID != nil && s.now().Sub(s.fetchedAt) < s.ttl
	cached := s.byID
	s.mu.Unlock()

	if fresh {
		return cached
	}

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn(
			"area refresh failed, serving previous names",
			logging.ErrAttr(err),
		)
		if cached != nil {
			return cached
		}
		return map[string]string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID
}
