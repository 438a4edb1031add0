package mocks

import (
	"context"

	"events.ourphilly.org/internal/enrich"
	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/timeutil"
)

// MockRecordStore serves canned rows per source table. Setting an error for
// a table makes that table's fetch fail.
type MockRecordStore struct {
	PlainEvents []models.EventRow
	Traditions  []models.TraditionRow
	BigBoard    []models.BigBoardRow
	GroupEvents []models.GroupEventRow
	Series      []models.SeriesRow
	Errs        map[models.SourceTable]error
}

func NewMockRecordStore() *MockRecordStore {
	return &MockRecordStore{
		Errs: map[models.SourceTable]error{},
	}
}

func (store *MockRecordStore) GetPlainEvents(
	_ context.Context,
	_ timeutil.Range,
) ([]models.EventRow, error) {
	if err := store.Errs[models.SourcePlainEvent]; err != nil {
		return nil, err
	}
	return store.PlainEvents, nil
}

func (store *MockRecordStore) GetTraditions(
	_ context.Context,
) ([]models.TraditionRow, error) {
	if err := store.Errs[models.SourceTradition]; err != nil {
		return nil, err
	}
	return store.Traditions, nil
}

func (store *MockRecordStore) GetBigBoardEvents(
	_ context.Context,
) ([]models.BigBoardRow, error) {
	if err := store.Errs[models.SourceBigBoard]; err != nil {
		return nil, err
	}
	return store.BigBoard, nil
}

func (store *MockRecordStore) GetGroupEvents(
	_ context.Context,
) ([]models.GroupEventRow, error) {
	if err := store.Errs[models.SourceGroupEvent]; err != nil {
		return nil, err
	}
	return store.GroupEvents, nil
}

func (store *MockRecordStore) GetRecurringSeries(
	_ context.Context,
) ([]models.SeriesRow, error) {
	if err := store.Errs[models.SourceRecurring]; err != nil {
		return nil, err
	}
	return store.Series, nil
}

// MockTagSource serves canned tag associations keyed by table.
type MockTagSource struct {
	Associations map[models.SourceTable][]enrich.Association
	Errs         map[models.SourceTable]error
}

func NewMockTagSource() *MockTagSource {
	return &MockTagSource{
		Associations: map[models.SourceTable][]enrich.Association{},
		Errs:         map[models.SourceTable]error{},
	}
}

func (source *MockTagSource) AssociationsFor(
	_ context.Context,
	table models.SourceTable,
	_ []string,
) ([]enrich.Association, error) {
	if err := source.Errs[table]; err != nil {
		return nil, err
	}
	return source.Associations[table], nil
}
