package sqlite

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStoreCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Contains(t, store.Path(), "meinbt.db")
}

func TestNewStoreMigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening must not re-run migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()
}

func TestInsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Insert(ctx, "mdb", map[string]any{"id": "11000001"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	count, err := store.Count(ctx, "mdb")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInsertStoresRecordAsJSON(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := map[string]any{"nr": "19/1", "wahlperiode": "19"}
	id, err := store.Insert(ctx, "drucksachen", record)
	require.NoError(t, err)

	var body string
	row := store.db.QueryRowContext(ctx, `SELECT body FROM records WHERE id = ?`, id)
	require.NoError(t, row.Scan(&body))

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "19/1", got["nr"])
}

func TestInsertManyAtomic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// A channel cannot be marshalled to JSON, so the second record fails
	// and the whole batch must roll back.
	records := []any{
		map[string]any{"id": "11000001"},
		make(chan int),
	}
	err := store.InsertMany(ctx, "mdb", records)
	require.Error(t, err)

	count, err := store.Count(ctx, "mdb")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInsertManyEmptyBatch(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.InsertMany(context.Background(), "mdb", nil))
}

func TestInsertMany(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	records := []any{
		map[string]any{"id": "11000001"},
		map[string]any{"id": "11000002"},
		map[string]any{"id": "11000003"},
	}
	require.NoError(t, store.InsertMany(ctx, "mdb", records))

	count, err := store.Count(ctx, "mdb")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCountEmptyCollection(t *testing.T) {
	store := newTestStore(t)

	count, err := store.Count(context.Background(), "mdb")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCollections(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	collections, err := store.Collections(ctx)
	require.NoError(t, err)
	assert.Empty(t, collections)

	_, err = store.Insert(ctx, "mdb", map[string]any{"id": "11000001"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "drucksachen", map[string]any{"nr": "19/1"})
	require.NoError(t, err)

	collections, err = store.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"drucksachen", "mdb"}, collections)
}

func TestProviderOpensIndependentConnections(t *testing.T) {
	dir := t.TempDir()
	provider := NewProvider(dir)
	ctx := context.Background()

	a, err := provider.Open(ctx)
	require.NoError(t, err)
	defer a.Close()

	b, err := provider.Open(ctx)
	require.NoError(t, err)
	defer b.Close()

	_, err = a.Insert(ctx, "mdb", map[string]any{"id": "11000001"})
	require.NoError(t, err)
	_, err = b.Insert(ctx, "mdb", map[string]any{"id": "11000002"})
	require.NoError(t, err)

	count, err := a.Count(ctx, "mdb")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
