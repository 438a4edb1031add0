// Package enrich attaches tag associations to aggregated events without N+1
// lookups: one batched query per source table, issued concurrently, each
// table isolated from the others' failures.
package enrich

import (
	"context"
	"log/slog"
	"sync"

	"events.ourphilly.org/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
)

// Association is one tag row of the tag store for a (table, id) pair.
type Association struct {
	TaggableID string
	Tag        models.Tag
}

// TagSource is the batched lookup the enricher issues per table.
type TagSource interface {
	AssociationsFor(
		ctx context.Context,
		table models.SourceTable,
		ids []string,
	) ([]Association, error)
}

type Enricher struct {
	logger *slog.Logger
	source TagSource
}

func New(logger *slog.Logger, source TagSource) *Enricher {
	return &Enricher{
		logger: logger,
		source: source,
	}
}

// Enrich returns a copy of events with Tags populated. Events whose
// (table, id) has no association rows keep an empty, non-nil slice. A failed
// lookup for one table only costs that table its tags.
func (e *Enricher) Enrich(ctx context.Context, events []models.Event) []models.Event {
	idsByTable := map[models.SourceTable][]string{}
	seen := map[string]struct{}{}
	for _, ev := range events {
		if ev.SourceID == "" {
			continue
		}
		// The sports feed has no rows in the tag store.
		if ev.SourceTable == models.SourceSports {
			continue
		}
		key := ev.TagKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		idsByTable[ev.SourceTable] = append(idsByTable[ev.SourceTable], ev.SourceID)
	}

	tagsByKey := e.lookupAll(ctx, idsByTable)

	enriched := make([]models.Event, len(events))
	for i, ev := range events {
		tags := tagsByKey[ev.TagKey()]
		if tags == nil {
			tags = []models.Tag{}
		}
		ev.Tags = tags
		enriched[i] = ev
	}
	return enriched
}

// lookupAll issues one batched lookup per table, concurrently. Tables with
// no candidate ids are skipped without a call.
func (e *Enricher) lookupAll(
	ctx context.Context,
	idsByTable map[models.SourceTable][]string,
) map[string][]models.Tag {
	tagsByKey := map[string][]models.Tag{}
	if len(idsByTable) == 0 {
		return tagsByKey
	}

	workerPool := threading.NewWorkerPool(e.logger, len(idsByTable), len(idsByTable))

	mu := sync.Mutex{}
	for table, ids := range idsByTable {
		if len(ids) == 0 {
			continue
		}

		workerPool.EnqueueWork(func(_ context.Context, logger *slog.Logger) error {
			associations, err := e.source.AssociationsFor(ctx, table, ids)
			if err != nil {
				logger.Warn(
					"tag lookup failed, events of this table stay untagged",
					slog.String("table", string(table)),
					logging.ErrAttr(err),
				)
				return nil
			}

			mu.Lock()
			for _, a := range associations {
				key := string(table) + ":" + a.TaggableID
				tagsByKey[key] = append(tagsByKey[key], a.Tag)
			}
			mu.Unlock()

			return nil
		})
	}

	workerPool.WaitUntilDone()

	return tagsByKey
}
