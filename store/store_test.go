package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_InsertAssignsID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	row, err := s.Insert(ctx, "projects", Row{"title": "Math Lab"})
	require.NoError(t, err)

	id, ok := row["id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, id)

	rows, err := s.Select(ctx, "projects", Query{Where: []Filter{Eq("id", id)}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Math Lab", rows[0]["title"])
}

func TestMemoryStore_InsertDuplicateID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Insert(ctx, "projects", Row{"id": "p1"})
	require.NoError(t, err)

	_, err = s.Insert(ctx, "projects", Row{"id": "p1"})
	assert.ErrorContains(t, err, "duplicate key")
}

func TestMemoryStore_SelectPreservesArrivalOrder(t *testing.T) {
	s := NewMemoryStore()
	s.Seed("projects", Row{"id": "a"}, Row{"id": "b"}, Row{"id": "c"})

	rows, err := s.Select(context.Background(), "projects", Query{})
	require.NoError(t, err)

	var ids []string
	for _, r := range rows {
		ids = append(ids, r["id"].(string))
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestMemoryStore_SelectLimit(t *testing.T) {
	s := NewMemoryStore()
	s.Seed("profiles", Row{"id": "a"}, Row{"id": "b"})

	rows, err := s.Select(context.Background(), "profiles", Query{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMemoryStore_ReturnedRowsAreCopies(t *testing.T) {
	s := NewMemoryStore()
	s.Seed("projects", Row{"id": "a", "title": "original"})
	ctx := context.Background()

	rows, err := s.Select(ctx, "projects", Query{})
	require.NoError(t, err)
	rows[0]["title"] = "mutated"

	rows, err = s.Select(ctx, "projects", Query{})
	require.NoError(t, err)
	assert.Equal(t, "original", rows[0]["title"])
}

func TestMemoryStore_UpdateAndDelete(t *testing.T) {
	s := NewMemoryStore()
	s.Seed("projects", Row{"id": "a", "title": "old"}, Row{"id": "b", "title": "keep"})
	ctx := context.Background()

	n, err := s.Update(ctx, "projects", Row{"title": "new"}, Eq("id", "a"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.Update(ctx, "projects", Row{"title": "x"}, Eq("id", "missing"))
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.Delete(ctx, "projects", Eq("id", "a")))
	require.NoError(t, s.Delete(ctx, "projects", Eq("id", "a")))

	rows, err := s.Select(ctx, "projects", Query{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "keep", rows[0]["title"])
}

func TestMemoryStore_StrictTableRejectsUnknownColumns(t *testing.T) {
	s := NewMemoryStore()
	s.DefineTable("projects", "title", "imageUrl")
	ctx := context.Background()

	_, err := s.Insert(ctx, "projects", Row{"title": "t", "image_url": "x"})
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = s.Insert(ctx, "projects", Row{"title": "t", "imageUrl": "x"})
	assert.NoError(t, err)

	_, err = s.Update(ctx, "projects", Row{"image_url": "y"}, Eq("id", "any"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestMemoryStore_OrderBy(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	s.Seed("projects",
		Row{"id": "late", "created_at": base.Add(2 * time.Hour)},
		Row{"id": "early", "created_at": base},
		Row{"id": "unset"},
		Row{"id": "mid", "created_at": base.Add(time.Hour)},
	)
	ctx := context.Background()

	rows, err := s.Select(ctx, "projects", Query{OrderBy: "created_at"})
	require.NoError(t, err)
	var ids []string
	for _, r := range rows {
		ids = append(ids, r["id"].(string))
	}
	assert.Equal(t, []string{"early", "mid", "late", "unset"}, ids)

	rows, err = s.Select(ctx, "projects", Query{OrderBy: "created_at", Limit: 1})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "early", rows[0]["id"])
}

func TestMemoryStore_OrderByMissingColumn(t *testing.T) {
	s := NewMemoryStore()
	s.DefineTable("projects", "title")

	_, err := s.Select(context.Background(), "projects", Query{OrderBy: "created_at"})
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"undefined column", &pgconn.PgError{Code: "42703", Message: `column "imageUrl" does not exist`}, ErrMissingColumn},
		{"undefined table", &pgconn.PgError{Code: "42P01", Message: `relation "resources" does not exist`}, ErrUnknownTable},
		{"postgrest schema cache", errors.New("Could not find the 'order' column of 'resources' in the schema cache"), ErrMissingColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tt.err), tt.want)
		})
	}
}

func TestClassify_PassesThroughOtherErrors(t *testing.T) {
	cause := errors.New("connection refused")

	err := classify(cause)

	assert.NotErrorIs(t, err, ErrMissingColumn)
	assert.ErrorIs(t, err, cause)
}
