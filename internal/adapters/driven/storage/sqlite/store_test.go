package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/captainfanatic/trolly/internal/core/domain"
)

// setupTestStore creates a store in a per-test temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

// insertFull writes a row with every column populated and returns its id.
func insertFull(t *testing.T, store *Store, label string, status domain.Status, created, modified int64) int64 {
	t.Helper()

	values := domain.ItemValues{
		Label:      &label,
		Status:     &status,
		CreatedAt:  &created,
		ModifiedAt: &modified,
	}
	id, err := store.Items().Insert(context.Background(), values)
	require.NoError(t, err)
	require.Positive(t, id)
	return id
}

func TestNewStore_CreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "trolly.db"), store.Path())
	assert.FileExists(t, store.Path())
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_NestedDirectoryCreation(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "deep", "data")

	store, err := NewStore(nested)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nested)
}

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_RecordsSchemaVersion(t *testing.T) {
	store := setupTestStore(t)

	var version int
	require.NoError(t, store.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, schemaVersion, version)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	insertFull(t, store, "Milk", domain.StatusOnList, 1, 1)
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	items, err := store.Items().List(context.Background(), domain.ItemQuery{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestNewStore_VersionMismatchDropsTable(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	insertFull(t, store, "Milk", domain.StatusOnList, 1, 1)
	require.NoError(t, store.Close())

	// Simulate a database written by an older schema.
	db, err := sql.Open("sqlite", filepath.Join(dir, "trolly.db"))
	require.NoError(t, err)
	_, err = db.Exec("PRAGMA user_version = 1")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	// The upgrade is destructive: the table is rebuilt empty.
	items, err := store.Items().List(context.Background(), domain.ItemQuery{})
	require.NoError(t, err)
	assert.Empty(t, items)

	var version int
	require.NoError(t, store.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, schemaVersion, version)
}
