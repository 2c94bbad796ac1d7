package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildcorp/buildpro/internal/domain"
	"github.com/buildcorp/buildpro/internal/sqlite"
	"github.com/buildcorp/buildpro/internal/store"
)

func TestApplyPopulatesEmptyStore(t *testing.T) {
	st := sqlite.NewCollectionStore(sqlite.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, Apply(ctx, st))

	expected := map[string]int{
		store.Projects:  4,
		store.Tasks:     10,
		store.Team:      7,
		store.Documents: 7,
		store.Clients:   4,
		store.Inventory: 5,
	}
	for coll, want := range expected {
		count, err := st.Count(ctx, coll)
		require.NoError(t, err)
		assert.Equal(t, want, count, "collection %s", coll)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	st := sqlite.NewCollectionStore(sqlite.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, Apply(ctx, st))
	require.NoError(t, Apply(ctx, st), "a second apply must not fail on duplicates")

	count, err := st.Count(ctx, store.Projects)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestApplySkipsNonEmptyCollections(t *testing.T) {
	st := sqlite.NewCollectionStore(sqlite.NewTestDB(t))
	ctx := context.Background()

	existing := domain.Client{
		ID: "c-custom", Name: "Existing Client",
		Status: domain.ClientActive, Tier: domain.TierSilver,
	}
	require.NoError(t, st.Add(ctx, store.Clients, existing.ID, existing))

	require.NoError(t, Apply(ctx, st))

	count, err := st.Count(ctx, store.Clients)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "a non-empty collection is left alone")

	count, err = st.Count(ctx, store.Projects)
	require.NoError(t, err)
	assert.Equal(t, 4, count, "empty collections still seed")
}

func TestSeedDataIsValid(t *testing.T) {
	for _, p := range Projects() {
		assert.NoError(t, domain.Validate(p), "project %s", p.ID)
	}
	for _, task := range Tasks() {
		assert.NoError(t, domain.Validate(task), "task %s", task.ID)
	}
	for _, m := range Team() {
		assert.NoError(t, domain.Validate(m), "member %s", m.ID)
	}
	for _, d := range Documents() {
		assert.NoError(t, domain.Validate(d), "document %s", d.ID)
	}
	for _, c := range Clients() {
		assert.NoError(t, domain.Validate(c), "client %s", c.ID)
	}
	for _, item := range Inventory() {
		assert.NoError(t, domain.Validate(item), "item %s", item.ID)
		assert.Equal(t, domain.StockStatusFor(item.Stock, item.Threshold), item.Status,
			"item %s status must match its levels", item.ID)
	}
}
