package store

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MemoryStore keeps tables in process. Tables are created on first use and
// accept any column unless declared with DefineTable, in which case writes
// and filters naming other columns fail with ErrMissingColumn the way a
// Postgres table would.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string]*memTable
}

type memTable struct {
	rows    []Row
	columns map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string]*memTable)}
}

// DefineTable declares a table with a fixed column set, dropping its rows.
func (s *MemoryStore) DefineTable(name string, columns ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := make(map[string]bool, len(columns)+1)
	set["id"] = true
	for _, c := range columns {
		set[c] = true
	}
	s.tables[name] = &memTable{columns: set}
}

// Seed appends rows verbatim, bypassing column checks. Rows without an id get one.
func (s *MemoryStore) Seed(name string, rows ...Row) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(name)
	for _, r := range rows {
		r = maps.Clone(r)
		if id, _ := r["id"].(string); id == "" {
			r["id"] = uuid.NewString()
		}
		t.rows = append(t.rows, r)
	}
}

func (s *MemoryStore) Select(_ context.Context, table string, q Query) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(table)
	for _, f := range q.Where {
		if err := t.checkColumn(table, f.Column); err != nil {
			return nil, err
		}
	}
	if q.OrderBy != "" {
		if err := t.checkColumn(table, q.OrderBy); err != nil {
			return nil, err
		}
	}

	var out []Row
	for _, r := range t.rows {
		if matches(r, q.Where) {
			out = append(out, maps.Clone(r))
		}
	}
	if q.OrderBy != "" {
		slices.SortStableFunc(out, func(a, b Row) int {
			return compareCells(a[q.OrderBy], b[q.OrderBy])
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *MemoryStore) Insert(_ context.Context, table string, row Row) (Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(table)
	for col := range row {
		if err := t.checkColumn(table, col); err != nil {
			return nil, err
		}
	}

	stored := maps.Clone(row)
	if id, ok := stored["id"]; !ok || id == nil || id == "" {
		stored["id"] = uuid.NewString()
	}
	for _, r := range t.rows {
		if sameValue(r["id"], stored["id"]) {
			return nil, errors.Errorf("duplicate key value violates unique constraint %q", table+"_pkey")
		}
	}
	t.rows = append(t.rows, stored)
	return maps.Clone(stored), nil
}

func (s *MemoryStore) Update(_ context.Context, table string, row Row, where Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(table)
	if err := t.checkColumn(table, where.Column); err != nil {
		return 0, err
	}
	for col := range row {
		if err := t.checkColumn(table, col); err != nil {
			return 0, err
		}
	}

	var n int64
	for _, r := range t.rows {
		if !matches(r, []Filter{where}) {
			continue
		}
		for k, v := range row {
			r[k] = v
		}
		n++
	}
	return n, nil
}

func (s *MemoryStore) Delete(_ context.Context, table string, where Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(table)
	if err := t.checkColumn(table, where.Column); err != nil {
		return err
	}

	kept := t.rows[:0]
	for _, r := range t.rows {
		if !matches(r, []Filter{where}) {
			kept = append(kept, r)
		}
	}
	t.rows = kept
	return nil
}

// table must be called with the lock held.
func (s *MemoryStore) table(name string) *memTable {
	t, ok := s.tables[name]
	if !ok {
		t = &memTable{}
		s.tables[name] = t
	}
	return t
}

func (t *memTable) checkColumn(table, column string) error {
	if t.columns == nil || t.columns[column] {
		return nil
	}
	return errors.Wrapf(ErrMissingColumn, "column %q of relation %q", column, table)
}

func matches(r Row, where []Filter) bool {
	for _, f := range where {
		if !sameValue(r[f.Column], f.Value) {
			return false
		}
	}
	return true
}

// compareCells orders times, numbers and strings. Nil sorts last; cells of
// other or mismatched types compare equal.
func compareCells(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	switch x := a.(type) {
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	}
	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			return cmp.Compare(x, y)
		}
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}
