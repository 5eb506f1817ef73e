package database

import (
	"context"

	"github.com/eduproject/catalog/schema"
	"github.com/eduproject/catalog/store"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const idColumn = "id"

// entityTable binds one remote table to its entity codec. Every write goes
// through write, which retries once under the legacy column names when the
// store reports a missing column.
type entityTable[T any] struct {
	store  store.RowStore
	table  schema.Table
	naming schema.Naming
	decode func(store.Row) T
	encode func(T, schema.Naming) store.Row
	logger zerolog.Logger
}

func (t entityTable[T]) selectAll(ctx context.Context) ([]T, error) {
	rows, err := t.selectInArrivalOrder(ctx, store.Query{})
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, t.decode(row))
	}
	return out, nil
}

// selectOne returns nil when nothing matches. An empty where column selects
// the first row of the table.
func (t entityTable[T]) selectOne(ctx context.Context, where *store.Filter) (*T, error) {
	var rows []store.Row
	var err error
	if where != nil {
		rows, err = t.store.Select(ctx, t.table.Name, store.Query{Where: []store.Filter{*where}, Limit: 1})
	} else {
		rows, err = t.selectInArrivalOrder(ctx, store.Query{Limit: 1})
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	v := t.decode(rows[0])
	return &v, nil
}

// selectInArrivalOrder sorts by the table's arrival column, falling back to
// the store's own order when the table does not have one.
func (t entityTable[T]) selectInArrivalOrder(ctx context.Context, q store.Query) ([]store.Row, error) {
	if t.table.ArrivalColumn == "" {
		return t.store.Select(ctx, t.table.Name, q)
	}
	q.OrderBy = t.table.ArrivalColumn
	rows, err := t.store.Select(ctx, t.table.Name, q)
	if err == nil || !errors.Is(err, store.ErrMissingColumn) {
		return rows, err
	}

	t.logger.Debug().
		Str("table", t.table.Name).
		Str("column", q.OrderBy).
		Msg("arrival column missing, reading in store order")
	q.OrderBy = ""
	return t.store.Select(ctx, t.table.Name, q)
}

func (t entityTable[T]) selectByID(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, nil
	}
	where := store.Eq(idColumn, id)
	return t.selectOne(ctx, &where)
}

// insert writes v and returns the identifier the store assigned or kept.
func (t entityTable[T]) insert(ctx context.Context, v T) (string, error) {
	var stored store.Row
	err := t.write(func(naming schema.Naming) error {
		var err error
		stored, err = t.store.Insert(ctx, t.table.Name, t.encode(v, naming))
		return err
	})
	if err != nil {
		return "", err
	}
	return schema.AsString(stored[idColumn]), nil
}

// update writes v over the row with the given id and reports rows touched.
func (t entityTable[T]) update(ctx context.Context, id string, v T) (int64, error) {
	var affected int64
	err := t.write(func(naming schema.Naming) error {
		var err error
		row := schema.Without(t.encode(v, naming), idColumn)
		affected, err = t.store.Update(ctx, t.table.Name, row, store.Eq(idColumn, id))
		return err
	})
	return affected, err
}

func (t entityTable[T]) delete(ctx context.Context, id string) error {
	return t.store.Delete(ctx, t.table.Name, store.Eq(idColumn, id))
}

func (t entityTable[T]) write(op func(schema.Naming) error) error {
	err := op(t.naming)
	if err == nil || t.naming == schema.NamingLegacy || !errors.Is(err, store.ErrMissingColumn) {
		return err
	}

	t.logger.Warn().
		Err(err).
		Str("table", t.table.Name).
		Str("naming", t.naming.String()).
		Msg("column missing, retrying with legacy column names")
	return op(schema.NamingLegacy)
}
