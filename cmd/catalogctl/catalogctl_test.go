package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/eduproject/catalog/database"
	"github.com/eduproject/catalog/models"
	"github.com/eduproject/catalog/schema"
	"github.com/eduproject/catalog/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCode = "rahasia"

type harness struct {
	store *store.MemoryStore
	db    database.Database
	out   *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	s := store.NewMemoryStore()
	db := database.New(s, schema.NamingPrimary)
	require.NoError(t, db.ProjectRepo().Upsert(context.Background(), &models.Project{
		ID:       "p-1",
		Title:    "Platform Belajar Matematika",
		Category: "Sains",
		Order:    1,
	}))
	require.NoError(t, db.ResourceRepo().Upsert(context.Background(), &models.DownloadItem{
		ID:       "r-1",
		Title:    "Rubrik Penilaian",
		FileURL:  "https://example.com/rubrik.xlsx",
		FileType: models.FileTypeExcel,
		Order:    1,
	}))
	return &harness{store: s, db: db, out: &bytes.Buffer{}}
}

// run executes catalogctl with stdin holding input.
func (h *harness) run(input string, args ...string) error {
	a := newApp(strings.NewReader(input), h.out)
	a.config = map[string]string{"ADMIN_ACCESS_CODE": testCode}
	a.connect = func(map[string]string) (store.RowStore, error) {
		return h.store, nil
	}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(h.out)
	cmd.SetErr(h.out)
	return cmd.ExecuteContext(context.Background())
}

func (h *harness) projects(t *testing.T) []models.Project {
	t.Helper()
	projects, err := h.db.ProjectRepo().FindAll(context.Background())
	require.NoError(t, err)
	return projects
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"ya\n", true},
		{" y \n", true},
		{"y", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"tidak\n", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			term := newTerminal(strings.NewReader(tt.input), &out)
			assert.Equal(t, tt.want, term.Confirm(context.Background(), "Hapus?"))
			assert.Contains(t, out.String(), "Hapus? [y/N]")
		})
	}

	t.Run("assume yes", func(t *testing.T) {
		var out bytes.Buffer
		term := newTerminal(strings.NewReader(""), &out)
		term.assumeYes = true
		assert.True(t, term.Confirm(context.Background(), "Hapus?"))
		assert.Empty(t, out.String())
	})
}

func TestWrongCodeIsRejected(t *testing.T) {
	h := newHarness(t)

	err := h.run("", "list", "--code", "salah")
	require.Error(t, err)
	assert.NotContains(t, h.out.String(), "ORDER")
}

func TestAccessCodeFromStdin(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(testCode+"\n", "list"))
	assert.Contains(t, h.out.String(), "Kode akses:")
	assert.Contains(t, h.out.String(), "Platform Belajar Matematika")
}

func TestList(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("", "list", "--code", testCode))
	out := h.out.String()
	assert.Contains(t, out, "connected")
	assert.Contains(t, out, "p-1")
	assert.Contains(t, out, "Rubrik Penilaian")
	assert.Contains(t, out, "standard 3/2/1 gap 10")
}

func TestAddProject(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("", "add-project", "--code", testCode,
		"--title", "Kuis Geografi",
		"--description", "Tebak ibu kota provinsi.",
		"--image", "https://example.com/geo.png",
		"--url", "https://example.com/geo",
		"--internal"))

	projects := h.projects(t)
	require.Len(t, projects, 2)
	added := projects[1]
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Kuis Geografi", added.Title)
	assert.Equal(t, "Edukasi", added.Category)
	assert.Equal(t, 2, added.Order)
	assert.Equal(t, models.ActionInternal, added.ActionType)
	assert.Contains(t, h.out.String(), "✓ Proyek tersimpan ke Cloud!")
}

func TestAddProjectWithoutTitle(t *testing.T) {
	h := newHarness(t)

	require.Error(t, h.run("", "add-project", "--code", testCode, "--url", "https://example.com"))
	assert.Len(t, h.projects(t), 1)
	assert.Contains(t, h.out.String(), "✗")
}

func TestDeleteProject(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		h := newHarness(t)

		require.NoError(t, h.run("n\n", "delete-project", "p-1", "--code", testCode))
		assert.Contains(t, h.out.String(), "Hapus proyek ini dari cloud? [y/N]")
		assert.Len(t, h.projects(t), 1)
	})

	t.Run("confirmed", func(t *testing.T) {
		h := newHarness(t)

		require.NoError(t, h.run("y\n", "delete-project", "p-1", "--code", testCode))
		assert.Empty(t, h.projects(t))
	})

	t.Run("assume yes", func(t *testing.T) {
		h := newHarness(t)

		require.NoError(t, h.run("", "delete-project", "p-1", "--code", testCode, "--yes"))
		assert.Empty(t, h.projects(t))
		assert.NotContains(t, h.out.String(), "[y/N]")
	})
}

func TestDeleteResource(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("", "delete-resource", "r-1", "--code", testCode, "-y"))
	resources, err := h.db.ResourceRepo().FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestLayout(t *testing.T) {
	t.Run("preset", func(t *testing.T) {
		h := newHarness(t)

		require.NoError(t, h.run("", "layout", "--code", testCode, "--preset", "masonry"))
		profile, err := h.db.ProfileRepo().Find(context.Background())
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, models.PresetMasonry, profile.LayoutSettings.Preset)
		assert.Equal(t, 6, profile.LayoutSettings.Gap)
	})

	t.Run("single field keeps the rest", func(t *testing.T) {
		h := newHarness(t)

		require.NoError(t, h.run("", "layout", "--code", testCode, "--desktop", "5"))
		profile, err := h.db.ProfileRepo().Find(context.Background())
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, 5, profile.LayoutSettings.ColumnsDesktop)
		assert.Equal(t, 2, profile.LayoutSettings.ColumnsTablet)
		assert.Equal(t, 10, profile.LayoutSettings.Gap)
	})

	t.Run("nothing to change", func(t *testing.T) {
		h := newHarness(t)
		assert.Error(t, h.run("", "layout", "--code", testCode))
	})
}

func TestTheme(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("", "theme", "--code", testCode, "--primary", "#2563EB", "--radius", "0.5rem"))
	profile, err := h.db.ProfileRepo().Find(context.Background())
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "#2563EB", profile.ThemeSettings.PrimaryColor)
	assert.Equal(t, "0.5rem", profile.ThemeSettings.BorderRadius)
	assert.Equal(t, models.DefaultTheme().AccentColor, profile.ThemeSettings.AccentColor)
}
