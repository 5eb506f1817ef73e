// Package schema maps between the catalog's canonical entity fields and the
// loosely named columns of the remote tables. Every field is described once
// in a Field Mapping Table; decoding and encoding walk the table generically.
package schema

import (
	"maps"
	"slices"

	"github.com/eduproject/catalog/store"
)

// Kind selects how a field's value is coerced.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindEnum
	// KindSettings is a nested structure stored as a JSON text blob.
	KindSettings
)

// Naming selects which column spellings a write uses.
type Naming int

const (
	// NamingPrimary writes each field under its first column only.
	NamingPrimary Naming = iota
	// NamingDual writes each field under every accepted column spelling, for
	// tables that carry both the snake_case and camelCase variants.
	NamingDual
	// NamingLegacy writes each field under its legacy column. Used when a
	// write failed because a primary column does not exist.
	NamingLegacy
)

func (n Naming) String() string {
	switch n {
	case NamingDual:
		return "dual"
	case NamingLegacy:
		return "legacy"
	}
	return "primary"
}

// ParseNaming accepts "primary", "dual" and "legacy"; anything else is primary.
func ParseNaming(s string) Naming {
	switch s {
	case "dual":
		return NamingDual
	case "legacy":
		return NamingLegacy
	}
	return NamingPrimary
}

// Field is one row of a mapping table.
type Field struct {
	// Name is the canonical (entity) name.
	Name string
	// Columns are the accepted spellings in read priority order. Columns[0]
	// is the primary column.
	Columns []string
	// ReadOnly are extra spellings probed after Columns and never written.
	ReadOnly []string
	// Legacy is the spelling used by NamingLegacy and probed last on read.
	// Empty means the primary column.
	Legacy  string
	Kind    Kind
	Default any
	// Enum lists the accepted values of a KindEnum field.
	Enum []string
	// Min rejects KindInt values below it, falling back to the default.
	Min *int
	// Settings describes the nested structure of a KindSettings field.
	Settings *Table
	// OmitEmpty leaves the field out of writes when its value is the zero value.
	OmitEmpty bool
}

func (f Field) primary() string {
	return f.Columns[0]
}

func (f Field) legacy() string {
	if f.Legacy != "" {
		return f.Legacy
	}
	return f.primary()
}

// readColumns returns the probe order: the accepted columns, the read-only
// spellings, then legacy.
func (f Field) readColumns() []string {
	cols := append(append([]string(nil), f.Columns...), f.ReadOnly...)
	if f.Legacy == "" || slices.Contains(cols, f.Legacy) {
		return cols
	}
	return append(cols, f.Legacy)
}

func (f Field) writeColumns(naming Naming) []string {
	switch naming {
	case NamingDual:
		return f.Columns
	case NamingLegacy:
		return []string{f.legacy()}
	}
	return []string{f.primary()}
}

// Table is a Field Mapping Table for one remote table.
type Table struct {
	Name   string
	Fields []Field
	// ArrivalColumn records insertion time. Listings read in its order
	// when the table has it.
	ArrivalColumn string
}

// Field looks up a field by canonical name.
func (t Table) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Column returns the column a field is written to under naming.
func (t Table) Column(name string, naming Naming) string {
	f, ok := t.Field(name)
	if !ok {
		return name
	}
	return f.writeColumns(naming)[0]
}

// AcceptedColumns maps every field to all the column spellings it reads.
func (t Table) AcceptedColumns() map[string][]string {
	out := make(map[string][]string, len(t.Fields))
	for _, f := range t.Fields {
		out[f.Name] = f.readColumns()
	}
	return out
}

// Record holds decoded values keyed by canonical field name. Values are
// string, int, bool or Record (for settings).
type Record map[string]any

func (r Record) String(name string) string {
	s, _ := r[name].(string)
	return s
}

func (r Record) Int(name string) int {
	n, _ := r[name].(int)
	return n
}

func (r Record) Bool(name string) bool {
	b, _ := r[name].(bool)
	return b
}

func (r Record) Record(name string) Record {
	rec, _ := r[name].(Record)
	return rec
}

// Decode converts a row into a fully populated record. It never fails: each
// field takes the first present, non-null column that coerces cleanly and
// falls back to its default otherwise.
func (t Table) Decode(row store.Row) Record {
	rec := make(Record, len(t.Fields))
	for _, f := range t.Fields {
		rec[f.Name] = f.decode(row)
	}
	return rec
}

func (f Field) decode(row store.Row) any {
	for _, col := range f.readColumns() {
		raw, ok := row[col]
		if !ok || raw == nil {
			continue
		}
		if v, ok := f.coerce(raw); ok {
			return v
		}
	}
	return f.defaultValue()
}

func (f Field) coerce(raw any) (any, bool) {
	switch f.Kind {
	case KindInt:
		n, ok := toInt(raw)
		if !ok || (f.Min != nil && n < *f.Min) {
			return nil, false
		}
		return n, true
	case KindBool:
		return toBool(raw)
	case KindEnum:
		s, ok := toString(raw)
		if !ok {
			return nil, false
		}
		for _, allowed := range f.Enum {
			if s == allowed {
				return s, true
			}
		}
		return nil, false
	case KindSettings:
		m, err := ParseSettings(raw)
		if err != nil {
			return nil, false
		}
		return f.Settings.Decode(m), true
	default:
		return toString(raw)
	}
}

func (f Field) defaultValue() any {
	if f.Kind == KindSettings {
		return f.Settings.Decode(nil)
	}
	if f.Default != nil {
		return f.Default
	}
	switch f.Kind {
	case KindInt:
		return 0
	case KindBool:
		return false
	}
	return ""
}

// Encode converts a record into a row spelled according to naming. Fields
// missing from the record are left out.
func (t Table) Encode(rec Record, naming Naming) store.Row {
	row := make(store.Row, len(t.Fields))
	for _, f := range t.Fields {
		v, ok := rec[f.Name]
		if !ok || (f.OmitEmpty && isZero(v)) {
			continue
		}
		if f.Kind == KindSettings {
			nested, _ := v.(Record)
			v = EncodeSettings(f.Settings.Encode(nested, NamingPrimary))
		}
		for _, col := range f.writeColumns(naming) {
			row[col] = v
		}
	}
	return row
}

// Without returns a copy of the row with the given columns removed.
func Without(row store.Row, columns ...string) store.Row {
	out := maps.Clone(row)
	for _, c := range columns {
		delete(out, c)
	}
	return out
}

func isZero(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case int:
		return x == 0
	case bool:
		return !x
	}
	return false
}

func atLeast(n int) *int {
	return &n
}
