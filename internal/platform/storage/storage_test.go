package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"codearena/internal/common"
)

func testStoreRoundTrip(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.NoError(t, store.Set(ctx, "session", []byte(`{"id":"1"}`)))
	data, err := store.Get(ctx, "session")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"1"}`), data)

	assert.NoError(t, store.Set(ctx, "session", []byte(`{"id":"2"}`)))
	data, err = store.Get(ctx, "session")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"2"}`), data)

	assert.NoError(t, store.Delete(ctx, "session"))
	_, err = store.Get(ctx, "session")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, "session"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	testStoreRoundTrip(t, store)
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)
	defer store.Close()
	testStoreRoundTrip(t, store)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	assert.NoError(t, err)
	assert.NoError(t, store.Set(ctx, "submissions", []byte(`{"1":[]}`)))
	assert.NoError(t, store.Close())

	reopened, err := NewFileStore(dir)
	assert.NoError(t, err)
	data, err := reopened.Get(ctx, "submissions")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"1":[]}`), data)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	value := []byte("original")
	assert.NoError(t, store.Set(ctx, "k", value))
	value[0] = 'X'

	data, err := store.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("original"), data)
}
