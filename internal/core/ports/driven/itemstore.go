package driven

import (
	"context"

	"github.com/captainfanatic/trolly/internal/core/domain"
)

// ItemStore persists shopping list items.
// Backed by SQLite; the store's own locking serialises writers and no
// additional coordination happens above it.
type ItemStore interface {
	// List returns all items matching the query.
	List(ctx context.Context, q domain.ItemQuery) ([]domain.Item, error)

	// Get returns the item with the given id, ANDed with any
	// caller-supplied selection in q. Zero rows is not an error.
	Get(ctx context.Context, id int64, q domain.ItemQuery) ([]domain.Item, error)

	// Insert writes a new row from fully-populated values and
	// returns the new id.
	Insert(ctx context.Context, values domain.ItemValues) (int64, error)

	// Update writes the given columns to all rows matching the
	// optional id AND the optional selection, returning the number
	// of rows affected. No defaulting, no existence check.
	Update(ctx context.Context, id *int64, values domain.ItemValues, selection string, args []any) (int64, error)

	// Delete removes all rows matching the optional id AND the
	// optional selection, returning the number of rows removed.
	Delete(ctx context.Context, id *int64, selection string, args []any) (int64, error)
}
