package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/captainfanatic/trolly/internal/core/domain"
	"github.com/captainfanatic/trolly/internal/core/ports/driven"
)

// itemStore implements driven.ItemStore.
type itemStore struct {
	store *Store
}

var _ driven.ItemStore = (*itemStore)(nil)

// List returns all items matching the query.
func (s *itemStore) List(ctx context.Context, q domain.ItemQuery) ([]domain.Item, error) {
	cols := q.Projection
	if len(cols) == 0 {
		cols = domain.Columns()
	}
	order := q.OrderBy
	if order == "" {
		order = domain.DefaultSortOrder
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(cols, ", "))
	sb.WriteString(" FROM " + tableName)
	if q.Selection != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(q.Selection)
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(order)

	rows, err := s.store.db.QueryContext(ctx, sb.String(), q.Args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows, cols)
}

// Get returns the item with the given id, ANDed with any selection.
func (s *itemStore) Get(ctx context.Context, id int64, q domain.ItemQuery) ([]domain.Item, error) {
	q.Selection, q.Args = withIDConstraint(&id, q.Selection, q.Args)
	return s.List(ctx, q)
}

// Insert writes a new row and returns its id.
func (s *itemStore) Insert(ctx context.Context, values domain.ItemValues) (int64, error) {
	cols, args := valueColumns(values)
	var query string
	if len(cols) == 0 {
		query = "INSERT INTO " + tableName + " DEFAULT VALUES"
	} else {
		query = "INSERT INTO " + tableName + " (" + strings.Join(cols, ", ") + ") VALUES (" +
			strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + ")"
	}

	res, err := s.store.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new row id: %w", err)
	}
	if id <= 0 {
		return 0, domain.ErrInsertFailed
	}
	return id, nil
}

// Update writes the given columns to all matching rows.
func (s *itemStore) Update(ctx context.Context, id *int64, values domain.ItemValues, selection string, args []any) (int64, error) {
	cols, setArgs := valueColumns(values)
	if len(cols) == 0 {
		return 0, fmt.Errorf("%w: no values to update", domain.ErrInvalidInput)
	}

	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = c + " = ?"
	}

	where, whereArgs := withIDConstraint(id, selection, args)

	query := "UPDATE " + tableName + " SET " + strings.Join(sets, ", ")
	if where != "" {
		query += " WHERE " + where
	}

	res, err := s.store.db.ExecContext(ctx, query, append(setArgs, whereArgs...)...)
	if err != nil {
		return 0, fmt.Errorf("updating items: %w", err)
	}
	return rowsAffected(res)
}

// Delete removes all matching rows.
func (s *itemStore) Delete(ctx context.Context, id *int64, selection string, args []any) (int64, error) {
	where, whereArgs := withIDConstraint(id, selection, args)

	query := "DELETE FROM " + tableName
	if where != "" {
		query += " WHERE " + where
	}

	res, err := s.store.db.ExecContext(ctx, query, whereArgs...)
	if err != nil {
		return 0, fmt.Errorf("deleting items: %w", err)
	}
	return rowsAffected(res)
}

// withIDConstraint prepends an id = ? clause to a selection. The id is
// bound as a parameter; it has already been parsed to an integer by
// the router.
func withIDConstraint(id *int64, selection string, args []any) (string, []any) {
	if id == nil {
		return selection, args
	}
	if selection == "" {
		return domain.ColID + " = ?", []any{*id}
	}
	return domain.ColID + " = ? AND (" + selection + ")", append([]any{*id}, args...)
}

// valueColumns flattens the supplied fields into parallel column and
// argument slices, in table order.
func valueColumns(values domain.ItemValues) ([]string, []any) {
	var cols []string
	var args []any
	if values.Label != nil {
		cols = append(cols, domain.ColItem)
		args = append(args, *values.Label)
	}
	if values.Status != nil {
		cols = append(cols, domain.ColStatus)
		args = append(args, int(*values.Status))
	}
	if values.CreatedAt != nil {
		cols = append(cols, domain.ColCreatedAt)
		args = append(args, *values.CreatedAt)
	}
	if values.ModifiedAt != nil {
		cols = append(cols, domain.ColModifiedAt)
		args = append(args, *values.ModifiedAt)
	}
	return cols, args
}

// rowsAffected unwraps the affected-row count from a result.
func rowsAffected(res sql.Result) (int64, error) {
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return count, nil
}

// scanItems scans rows into items, mapping each projected column to
// its field. Unprojected fields keep their zero values.
func scanItems(rows *sql.Rows, cols []string) ([]domain.Item, error) {
	var items []domain.Item //nolint:prealloc // size unknown from query
	for rows.Next() {
		var it domain.Item
		dests := make([]any, len(cols))
		for i, col := range cols {
			switch col {
			case domain.ColID:
				dests[i] = &it.ID
			case domain.ColItem:
				dests[i] = &it.Label
			case domain.ColStatus:
				dests[i] = &it.Status
			case domain.ColCreatedAt:
				dests[i] = &it.CreatedAt
			case domain.ColModifiedAt:
				dests[i] = &it.ModifiedAt
			default:
				return nil, fmt.Errorf("%w: unknown projection column %q", domain.ErrInvalidInput, col)
			}
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}
