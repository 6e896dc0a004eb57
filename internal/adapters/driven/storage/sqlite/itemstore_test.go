package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/captainfanatic/trolly/internal/core/domain"
)

func TestItemStore_InsertAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id := insertFull(t, store, "Milk", domain.StatusOnList, 100, 100)

	items, err := store.Items().Get(ctx, id, domain.ItemQuery{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, id, it.ID)
	assert.Equal(t, "Milk", it.Label)
	assert.Equal(t, domain.StatusOnList, it.Status)
	assert.Equal(t, int64(100), it.CreatedAt)
	assert.Equal(t, int64(100), it.ModifiedAt)
}

func TestItemStore_IDsAreAssignedInOrder(t *testing.T) {
	store := setupTestStore(t)

	first := insertFull(t, store, "Milk", domain.StatusOnList, 1, 1)
	second := insertFull(t, store, "Eggs", domain.StatusOnList, 2, 2)
	assert.Greater(t, second, first)
}

func TestItemStore_ListDefaultOrderIsIDAscending(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// Insert out of natural name order; ids still decide the order.
	insertFull(t, store, "Zucchini", domain.StatusOnList, 3, 3)
	insertFull(t, store, "Apples", domain.StatusOnList, 1, 1)
	insertFull(t, store, "Milk", domain.StatusOffList, 2, 2)

	items, err := store.Items().List(ctx, domain.ItemQuery{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Zucchini", items[0].Label)
	assert.Equal(t, "Apples", items[1].Label)
	assert.Equal(t, "Milk", items[2].Label)
	assert.Less(t, items[0].ID, items[1].ID)
	assert.Less(t, items[1].ID, items[2].ID)
}

func TestItemStore_ListCallerOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	insertFull(t, store, "Apples", domain.StatusOnList, 1, 1)
	insertFull(t, store, "Milk", domain.StatusOnList, 2, 2)

	items, err := store.Items().List(ctx, domain.ItemQuery{OrderBy: "id DESC"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Milk", items[0].Label)
}

func TestItemStore_ListWithSelection(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	insertFull(t, store, "Milk", domain.StatusOnList, 1, 1)
	insertFull(t, store, "Eggs", domain.StatusOffList, 2, 2)

	items, err := store.Items().List(ctx, domain.ItemQuery{
		Selection: "status = ?",
		Args:      []any{int(domain.StatusOffList)},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Eggs", items[0].Label)
}

func TestItemStore_ListProjection(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	insertFull(t, store, "Milk", domain.StatusOffList, 42, 43)

	items, err := store.Items().List(ctx, domain.ItemQuery{
		Projection: []string{domain.ColID, domain.ColItem},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Unprojected fields stay at their zero values.
	assert.Equal(t, "Milk", items[0].Label)
	assert.Positive(t, items[0].ID)
	assert.Equal(t, domain.StatusOnList, items[0].Status)
	assert.Zero(t, items[0].CreatedAt)
	assert.Zero(t, items[0].ModifiedAt)
}

func TestItemStore_GetWithSelection(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id := insertFull(t, store, "Milk", domain.StatusOnList, 1, 1)

	// Selection is ANDed with the id constraint.
	items, err := store.Items().Get(ctx, id, domain.ItemQuery{
		Selection: "status = ?",
		Args:      []any{int(domain.StatusOffList)},
	})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemStore_GetMissingIsEmpty(t *testing.T) {
	store := setupTestStore(t)

	items, err := store.Items().Get(context.Background(), 12345, domain.ItemQuery{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemStore_UpdateSingleColumn(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id := insertFull(t, store, "Milk", domain.StatusOnList, 100, 100)

	status := domain.StatusOffList
	count, err := store.Items().Update(ctx, &id, domain.ItemValues{Status: &status}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	items, err := store.Items().Get(ctx, id, domain.ItemQuery{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Only status changed; everything else, modified_at included,
	// keeps its prior value.
	assert.Equal(t, domain.StatusOffList, items[0].Status)
	assert.Equal(t, "Milk", items[0].Label)
	assert.Equal(t, int64(100), items[0].CreatedAt)
	assert.Equal(t, int64(100), items[0].ModifiedAt)
}

func TestItemStore_UpdateBySelectionOnly(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	insertFull(t, store, "Milk", domain.StatusOnList, 1, 1)
	insertFull(t, store, "Eggs", domain.StatusOnList, 2, 2)
	insertFull(t, store, "Jam", domain.StatusOffList, 3, 3)

	status := domain.StatusOffList
	count, err := store.Items().Update(ctx, nil, domain.ItemValues{Status: &status},
		"status = ?", []any{int(domain.StatusOnList)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestItemStore_UpdateZeroRows(t *testing.T) {
	store := setupTestStore(t)

	missing := int64(999)
	status := domain.StatusOffList
	count, err := store.Items().Update(context.Background(), &missing, domain.ItemValues{Status: &status}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestItemStore_UpdateWithoutValues(t *testing.T) {
	store := setupTestStore(t)

	id := insertFull(t, store, "Milk", domain.StatusOnList, 1, 1)
	_, err := store.Items().Update(context.Background(), &id, domain.ItemValues{}, "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemStore_DeleteByID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id := insertFull(t, store, "Milk", domain.StatusOnList, 1, 1)
	keep := insertFull(t, store, "Eggs", domain.StatusOnList, 2, 2)

	count, err := store.Items().Delete(ctx, &id, "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	items, err := store.Items().Get(ctx, id, domain.ItemQuery{})
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = store.Items().Get(ctx, keep, domain.ItemQuery{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestItemStore_DeleteAll(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	insertFull(t, store, "Milk", domain.StatusOnList, 1, 1)
	insertFull(t, store, "Eggs", domain.StatusOffList, 2, 2)

	count, err := store.Items().Delete(ctx, nil, "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	items, err := store.Items().List(ctx, domain.ItemQuery{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemStore_DeleteIDWithSelection(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id := insertFull(t, store, "Milk", domain.StatusOnList, 1, 1)

	// Non-matching selection protects the row.
	count, err := store.Items().Delete(ctx, &id, "status = ?", []any{int(domain.StatusOffList)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = store.Items().Delete(ctx, &id, "status = ?", []any{int(domain.StatusOnList)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
