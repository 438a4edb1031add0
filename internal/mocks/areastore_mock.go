package mocks

import (
	"context"

	"events.ourphilly.org/internal/models"
)

type MockAreaStore struct {
	Areas []models.AreaRow
	Err   error
	Calls int
}

func (store *MockAreaStore) GetAll(_ context.Context) ([]models.AreaRow, error) {
	store.Calls++
	if store.Err != nil {
		return nil, store.Err
	}
	return store.Areas, nil
}
