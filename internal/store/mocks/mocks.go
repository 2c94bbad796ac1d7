package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// Store is a mock for store.Store.
type Store struct {
	mock.Mock
}

func (m *Store) GetAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	args := m.Called(ctx, collection)
	if raws, ok := args.Get(0).([]json.RawMessage); ok {
		return raws, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Add(ctx context.Context, collection, id string, record any) error {
	args := m.Called(ctx, collection, id, record)
	return args.Error(0)
}

func (m *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	args := m.Called(ctx, collection, id, fields)
	return args.Error(0)
}

func (m *Store) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

func (m *Store) Count(ctx context.Context, collection string) (int, error) {
	args := m.Called(ctx, collection)
	return args.Int(0), args.Error(1)
}
