package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is the lifecycle state of a shopping list item.
type Status int

const (
	// StatusOnList marks an item still to be bought.
	StatusOnList Status = 0
	// StatusOffList marks an item crossed off the list.
	StatusOffList Status = 1
)

// String returns a human-readable label for the status.
func (s Status) String() string {
	switch s {
	case StatusOnList:
		return "on list"
	case StatusOffList:
		return "done"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseStatus converts user input into a Status. It accepts the
// textual forms used by the CLI as well as the raw integer values.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "onlist", "on-list", "todo":
		return StatusOnList, nil
	case "off", "offlist", "off-list", "done":
		return StatusOffList, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || (n != int(StatusOnList) && n != int(StatusOffList)) {
		return 0, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
	}
	return Status(n), nil
}

// Column names of the shopping_list table. The set doubles as the
// projection allow-list: only these columns may appear in a query
// projection or be touched by an update.
const (
	ColID         = "id"
	ColItem       = "item"
	ColStatus     = "status"
	ColCreatedAt  = "created_at"
	ColModifiedAt = "modified_at"
)

// DefaultSortOrder is applied when a caller supplies no sort order.
const DefaultSortOrder = ColID + " ASC"

// columns is the allow-listed projection in table order.
var columns = []string{ColID, ColItem, ColStatus, ColCreatedAt, ColModifiedAt}

// Columns returns the allow-listed column names in table order.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// IsColumn reports whether name is an allow-listed column.
func IsColumn(name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

// Item is one row of the shopping list. Timestamps are epoch
// milliseconds, matching the persisted representation.
type Item struct {
	// ID is assigned by the store on insert and immutable thereafter.
	ID int64 `json:"id"`

	// Label is the display text of the item.
	Label string `json:"item"`

	// Status is the item's lifecycle state.
	Status Status `json:"status"`

	// CreatedAt is set once at insert time.
	CreatedAt int64 `json:"created_at"`

	// ModifiedAt is set at insert time. Updates do not refresh it;
	// the original provider never did and callers may rely on that.
	ModifiedAt int64 `json:"modified_at"`
}

// ItemValues is a partial column set for insert or update.
// A nil field means the caller did not supply that column.
type ItemValues struct {
	Label      *string
	Status     *Status
	CreatedAt  *int64
	ModifiedAt *int64
}

// IsEmpty reports whether no column was supplied.
func (v ItemValues) IsEmpty() bool {
	return v.Label == nil && v.Status == nil && v.CreatedAt == nil && v.ModifiedAt == nil
}

// ItemQuery carries the caller-controlled parts of a read.
// Projection must already be validated against the allow-list.
type ItemQuery struct {
	// Projection lists the columns to return; empty means all.
	Projection []string

	// Selection is an optional SQL filter fragment.
	Selection string

	// Args are the bind arguments for Selection.
	Args []any

	// OrderBy is the sort order; empty means DefaultSortOrder.
	OrderBy string
}
