package sqlite

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildcorp/buildpro/internal/store"
)

type widget struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Inner struct {
		A string `json:"a"`
		B string `json:"b"`
	} `json:"inner"`
}

func newStore(t *testing.T) *CollectionStore {
	t.Helper()
	return NewCollectionStore(NewTestDB(t))
}

func TestAddAndGetAllRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	w := widget{ID: "w1", Name: "anchor bolt", Count: 3}
	require.NoError(t, s.Add(ctx, "widgets", w.ID, w))

	raws, err := s.GetAll(ctx, "widgets")
	require.NoError(t, err)
	got, err := store.DecodeAll[widget](raws)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, w, got[0])
}

func TestGetAllNewestFirst(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, id := range []string{"w1", "w2", "w3"} {
		require.NoError(t, s.Add(ctx, "widgets", id, widget{ID: id}))
	}

	raws, err := s.GetAll(ctx, "widgets")
	require.NoError(t, err)
	got, err := store.DecodeAll[widget](raws)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "w3", got[0].ID)
	assert.Equal(t, "w1", got[2].ID)
}

func TestAddDuplicateID(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "widgets", "w1", widget{ID: "w1", Name: "first"}))
	err := s.Add(ctx, "widgets", "w1", widget{ID: "w1", Name: "second"})
	require.ErrorIs(t, err, store.ErrDuplicateID)

	// The stored record is untouched.
	raws, err := s.GetAll(ctx, "widgets")
	require.NoError(t, err)
	got, err := store.DecodeAll[widget](raws)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "first", got[0].Name)
}

func TestSameIDAcrossCollections(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "widgets", "x", widget{ID: "x"}))
	require.NoError(t, s.Add(ctx, "gadgets", "x", widget{ID: "x"}))

	count, err := s.Count(ctx, "widgets")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpdateShallowMerge(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	w := widget{ID: "w1", Name: "old", Count: 5}
	w.Inner.A = "keep-me"
	w.Inner.B = "replace-me"
	require.NoError(t, s.Add(ctx, "widgets", "w1", w))

	err := s.Update(ctx, "widgets", "w1", map[string]any{
		"name":  "new",
		"inner": map[string]any{"b": "replaced"},
	})
	require.NoError(t, err)

	raws, err := s.GetAll(ctx, "widgets")
	require.NoError(t, err)
	got, err := store.DecodeAll[widget](raws)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "new", got[0].Name)
	assert.Equal(t, 5, got[0].Count, "unmentioned top-level fields survive")
	assert.Equal(t, "", got[0].Inner.A, "nested values are replaced wholesale")
	assert.Equal(t, "replaced", got[0].Inner.B)
}

func TestUpdateMissingRecord(t *testing.T) {
	s := newStore(t)

	err := s.Update(context.Background(), "widgets", "ghost", map[string]any{"name": "boo"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdatePreservesInsertionOrder(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "widgets", "w1", widget{ID: "w1"}))
	require.NoError(t, s.Add(ctx, "widgets", "w2", widget{ID: "w2"}))
	require.NoError(t, s.Update(ctx, "widgets", "w1", map[string]any{"name": "touched"}))

	raws, err := s.GetAll(ctx, "widgets")
	require.NoError(t, err)
	got, err := store.DecodeAll[widget](raws)
	require.NoError(t, err)
	assert.Equal(t, "w2", got[0].ID, "updating must not reorder records")
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "widgets", "w1", widget{ID: "w1"}))
	require.NoError(t, s.Delete(ctx, "widgets", "w1"))
	require.NoError(t, s.Delete(ctx, "widgets", "w1"), "deleting an absent record is a no-op")

	count, err := s.Count(ctx, "widgets")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestGetAllEmptyCollection(t *testing.T) {
	s := newStore(t)

	raws, err := s.GetAll(context.Background(), "nothing-here")
	require.NoError(t, err)
	assert.Empty(t, raws)
}

func TestStoredDataIsJSON(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "widgets", "w1", widget{ID: "w1", Name: "girder"}))

	raws, err := s.GetAll(ctx, "widgets")
	require.NoError(t, err)
	require.Len(t, raws, 1)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raws[0], &doc))
	assert.Equal(t, "girder", doc["name"])
}
