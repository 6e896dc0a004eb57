package services

import (
	"context"
	"fmt"
	"time"

	"github.com/captainfanatic/trolly/internal/core/domain"
	"github.com/captainfanatic/trolly/internal/core/ports/driven"
	"github.com/captainfanatic/trolly/internal/core/ports/driving"
	"github.com/captainfanatic/trolly/internal/logger"
)

// DefaultUntitledLabel names an item inserted without a label.
const DefaultUntitledLabel = "untitled"

// Ensure ProviderService implements the interface.
var _ driving.Provider = (*ProviderService)(nil)

// ProviderService routes content URIs to the item store, applies the
// projection allow-list and insert defaults, and notifies observers
// after each successful mutation.
type ProviderService struct {
	matcher  domain.Matcher
	items    driven.ItemStore
	notifier driven.Notifier
	untitled string
	now      func() time.Time
}

// NewProviderService creates a provider over the given store.
// notifier may be nil, in which case mutations are silent.
func NewProviderService(matcher domain.Matcher, items driven.ItemStore, notifier driven.Notifier) *ProviderService {
	return &ProviderService{
		matcher:  matcher,
		items:    items,
		notifier: notifier,
		untitled: DefaultUntitledLabel,
		now:      time.Now,
	}
}

// SetUntitledLabel overrides the label given to items inserted
// without one. An empty label keeps the default.
func (s *ProviderService) SetUntitledLabel(label string) {
	if label != "" {
		s.untitled = label
	}
}

// SetClock overrides the time source. Used by tests.
func (s *ProviderService) SetClock(now func() time.Time) {
	s.now = now
}

// Matcher returns the matcher this provider routes with.
func (s *ProviderService) Matcher() domain.Matcher {
	return s.matcher
}

// Query returns the items addressed by the URI.
func (s *ProviderService) Query(ctx context.Context, uri string, projection []string, selection string, args []any, sortOrder string) ([]domain.Item, error) {
	matched, err := s.matcher.Match(uri)
	if err != nil {
		return nil, err
	}
	if err := checkProjection(projection); err != nil {
		return nil, err
	}

	q := domain.ItemQuery{
		Projection: projection,
		Selection:  selection,
		Args:       args,
		OrderBy:    sortOrder,
	}
	if q.OrderBy == "" {
		q.OrderBy = domain.DefaultSortOrder
	}

	if matched.Kind() == domain.KindItemID {
		return s.items.Get(ctx, matched.ID(), q)
	}
	return s.items.List(ctx, q)
}

// Type returns the content type label for the URI.
func (s *ProviderService) Type(uri string) (string, error) {
	return s.matcher.Type(uri)
}

// Insert adds an item to the collection and returns its URI.
// Absent fields are filled independently: current-time timestamps,
// the untitled label, and on-list status.
func (s *ProviderService) Insert(ctx context.Context, uri string, values domain.ItemValues) (domain.URI, error) {
	matched, err := s.matcher.Match(uri)
	if err != nil {
		return domain.URI{}, err
	}
	if matched.Kind() != domain.KindItems {
		return domain.URI{}, fmt.Errorf("%w %q", domain.ErrUnknownURI, uri)
	}

	now := s.now().UnixMilli()
	if values.CreatedAt == nil {
		values.CreatedAt = &now
	}
	if values.ModifiedAt == nil {
		values.ModifiedAt = &now
	}
	if values.Label == nil {
		label := s.untitled
		values.Label = &label
	}
	if values.Status == nil {
		status := domain.StatusOnList
		values.Status = &status
	}

	id, err := s.items.Insert(ctx, values)
	if err != nil {
		return domain.URI{}, fmt.Errorf("inserting into %s: %w", uri, err)
	}

	itemURI := s.matcher.Item(id)
	logger.Debug("inserted %s", itemURI)
	s.notify(itemURI)
	return itemURI, nil
}

// Update writes the given columns to the addressed rows.
func (s *ProviderService) Update(ctx context.Context, uri string, values domain.ItemValues, selection string, args []any) (int64, error) {
	matched, err := s.matcher.Match(uri)
	if err != nil {
		return 0, err
	}

	count, err := s.items.Update(ctx, rowID(matched), values, selection, args)
	if err != nil {
		return 0, fmt.Errorf("updating %s: %w", uri, err)
	}

	logger.Debug("updated %d row(s) under %s", count, matched)
	s.notify(matched)
	return count, nil
}

// Delete removes the addressed rows.
func (s *ProviderService) Delete(ctx context.Context, uri string, selection string, args []any) (int64, error) {
	matched, err := s.matcher.Match(uri)
	if err != nil {
		return 0, err
	}

	count, err := s.items.Delete(ctx, rowID(matched), selection, args)
	if err != nil {
		return 0, fmt.Errorf("deleting %s: %w", uri, err)
	}

	logger.Debug("deleted %d row(s) under %s", count, matched)
	s.notify(matched)
	return count, nil
}

// notify signals observers that data under uri changed.
func (s *ProviderService) notify(uri domain.URI) {
	if s.notifier != nil {
		s.notifier.NotifyChange(uri)
	}
}

// rowID extracts the id constraint from a matched URI, or nil for the
// collection shape.
func rowID(uri domain.URI) *int64 {
	if uri.Kind() != domain.KindItemID {
		return nil
	}
	id := uri.ID()
	return &id
}

// checkProjection validates requested columns against the allow-list.
func checkProjection(projection []string) error {
	for _, col := range projection {
		if !domain.IsColumn(col) {
			return fmt.Errorf("%w: unknown projection column %q", domain.ErrInvalidInput, col)
		}
	}
	return nil
}
