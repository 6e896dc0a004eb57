package driving

import (
	"context"

	"github.com/captainfanatic/trolly/internal/core/domain"
)

// Provider exposes the shopping list through a URI-addressed surface.
// Every operation routes its raw URI to one of two shapes, collection
// or single item, and rejects anything else with domain.ErrUnknownURI.
type Provider interface {
	// Query returns the items addressed by the URI. The projection is
	// validated against the column allow-list; empty means all
	// columns. An empty sortOrder falls back to id ascending.
	Query(ctx context.Context, uri string, projection []string, selection string, args []any, sortOrder string) ([]domain.Item, error)

	// Type returns the content type label for the URI.
	Type(uri string) (string, error)

	// Insert adds an item to the collection, filling absent fields
	// with defaults, and returns the new item's URI.
	Insert(ctx context.Context, uri string, values domain.ItemValues) (domain.URI, error)

	// Update writes the given columns to the addressed rows and
	// returns the affected-row count. Zero rows is not an error.
	Update(ctx context.Context, uri string, values domain.ItemValues, selection string, args []any) (int64, error)

	// Delete removes the addressed rows and returns the count removed.
	Delete(ctx context.Context, uri string, selection string, args []any) (int64, error)
}
