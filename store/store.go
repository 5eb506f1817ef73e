// Package store is the row-level collaborator behind the repositories: a
// table-addressed CRUD transport over loosely typed rows. Implementations
// must not interpret column names; mapping them is the schema adapter's job.
package store

import (
	"context"
	"errors"
)

// Row is a raw record as read from or written to a table.
type Row = map[string]any

var (
	// ErrMissingColumn is returned when a write names a column the table lacks.
	ErrMissingColumn = errors.New("column does not exist")
	// ErrUnknownTable is returned when the table itself does not exist.
	ErrUnknownTable = errors.New("table does not exist")
)

// Filter is an equality condition on one column.
type Filter struct {
	Column string
	Value  any
}

// Eq builds an equality filter.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Value: value}
}

// Query narrows a select. The zero Query selects every row in the store's
// natural order.
type Query struct {
	Where []Filter
	Limit int
	// OrderBy sorts ascending by one column before the limit applies.
	OrderBy string
}

// RowStore is the remote table store.
type RowStore interface {
	// Select returns matching rows, sorted by q.OrderBy when set. Sorting
	// by a column the table lacks fails with ErrMissingColumn.
	Select(ctx context.Context, table string, q Query) ([]Row, error)
	// Insert writes a row and returns it as stored, generated identifier included.
	Insert(ctx context.Context, table string, row Row) (Row, error)
	// Update sets the given columns on every row matching where and returns
	// the number of rows touched.
	Update(ctx context.Context, table string, row Row, where Filter) (int64, error)
	// Delete removes every row matching where. Matching nothing is not an error.
	Delete(ctx context.Context, table string, where Filter) error
}
