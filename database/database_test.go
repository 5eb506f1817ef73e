package database

import (
	"context"
	"testing"
	"time"

	"github.com/eduproject/catalog/errs"
	"github.com/eduproject/catalog/models"
	"github.com/eduproject/catalog/schema"
	"github.com/eduproject/catalog/store"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore fails every call with err.
type failingStore struct {
	err   error
	calls int
}

func (f *failingStore) Select(context.Context, string, store.Query) ([]store.Row, error) {
	f.calls++
	return nil, f.err
}

func (f *failingStore) Insert(context.Context, string, store.Row) (store.Row, error) {
	f.calls++
	return nil, f.err
}

func (f *failingStore) Update(context.Context, string, store.Row, store.Filter) (int64, error) {
	f.calls++
	return 0, f.err
}

func (f *failingStore) Delete(context.Context, string, store.Filter) error {
	f.calls++
	return f.err
}

func sampleProject() models.Project {
	return models.Project{
		Title:         "Peta Interaktif",
		Description:   "Atlas digital",
		ImageURL:      "https://img.example.com/map.png",
		ExternalURL:   "https://example.com/map",
		Category:      "Sosial",
		Order:         4,
		ActionType:    models.ActionInternal,
		DetailContent: "Isi",
		DetailGallery: "a.png, b.png",
		DetailVideo:   "https://video.example.com/1",
	}
}

func TestProjectRepo_UpsertRoundTrip(t *testing.T) {
	for _, naming := range []schema.Naming{schema.NamingPrimary, schema.NamingDual, schema.NamingLegacy} {
		t.Run(naming.String(), func(t *testing.T) {
			ctx := context.Background()
			repo := NewProjectRepo(store.NewMemoryStore(), naming)

			p := sampleProject()
			require.NoError(t, repo.Upsert(ctx, &p))
			require.NotEmpty(t, p.ID)

			got, err := repo.FindByID(ctx, p.ID)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, p, *got)
		})
	}
}

func TestProjectRepo_UpsertUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepo(store.NewMemoryStore(), schema.NamingPrimary)

	p := sampleProject()
	require.NoError(t, repo.Upsert(ctx, &p))
	id := p.ID

	p.Title = "Peta Baru"
	require.NoError(t, repo.Upsert(ctx, &p))
	assert.Equal(t, id, p.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Peta Baru", all[0].Title)
}

func TestProjectRepo_UpsertUnknownIDInserts(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepo(store.NewMemoryStore(), schema.NamingPrimary)

	p := sampleProject()
	p.ID = "fixed-id"
	require.NoError(t, repo.Upsert(ctx, &p))
	assert.Equal(t, "fixed-id", p.ID)

	got, err := repo.FindByID(ctx, "fixed-id")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p, *got)
}

func TestProjectRepo_UpsertDefaultsActionType(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepo(store.NewMemoryStore(), schema.NamingPrimary)

	p := sampleProject()
	p.ActionType = ""
	require.NoError(t, repo.Upsert(ctx, &p))
	assert.Equal(t, models.ActionExternal, p.ActionType)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, *got)
}

func TestProjectRepo_FindAllStableByOrder(t *testing.T) {
	s := store.NewMemoryStore()
	s.Seed("projects",
		store.Row{"id": "c", "title": "C", "order": 2},
		store.Row{"id": "a", "title": "A", "order": 1},
		store.Row{"id": "b1", "title": "B1", "order": 2},
		store.Row{"id": "z", "title": "Z", "order": 0},
	)
	repo := NewProjectRepo(s, schema.NamingPrimary)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, p := range all {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"z", "a", "c", "b1"}, ids)
}

func TestProjectRepo_TiesKeepArrivalOrder(t *testing.T) {
	s := store.NewMemoryStore()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	s.Seed("projects",
		store.Row{"id": "second", "order": 1, "created_at": base.Add(time.Minute)},
		store.Row{"id": "third", "order": 1, "created_at": base.Add(2 * time.Minute)},
		store.Row{"id": "first", "order": 1, "created_at": base},
	)
	repo := NewProjectRepo(s, schema.NamingPrimary)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].ID)
	assert.Equal(t, "second", all[1].ID)
	assert.Equal(t, "third", all[2].ID)
}

func TestProjectRepo_ListsTableWithoutArrivalColumn(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	s.DefineTable("projects",
		"title", "description", "imageUrl", "externalUrl", "category", "idx",
		"actionType", "detailContent", "detailGallery", "detailVideo",
	)
	repo := NewProjectRepo(s, schema.NamingPrimary)

	p := sampleProject()
	require.NoError(t, repo.Upsert(ctx, &p))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, p, all[0])
}

func TestProjectRepo_ReadsLegacyColumns(t *testing.T) {
	s := store.NewMemoryStore()
	s.Seed("projects", store.Row{
		"id":          "legacy",
		"title":       "Lama",
		"imageUrl":    "https://img.example.com/old.png",
		"externalUrl": "https://example.com/old",
		"idx":         "7",
		"actionType":  "internal",
	})
	repo := NewProjectRepo(s, schema.NamingPrimary)

	got, err := repo.FindByID(context.Background(), "legacy")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "https://img.example.com/old.png", got.ImageURL)
	assert.Equal(t, 7, got.Order)
	assert.Equal(t, models.ActionInternal, got.ActionType)
}

func TestProjectRepo_RetriesWithLegacyColumns(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	s.DefineTable("projects",
		"title", "description", "imageUrl", "externalUrl", "category", "idx",
		"actionType", "detailContent", "detailGallery", "detailVideo",
	)
	repo := NewProjectRepo(s, schema.NamingPrimary)

	p := sampleProject()
	require.NoError(t, repo.Upsert(ctx, &p))

	rows, err := s.Select(ctx, "projects", store.Query{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0]["idx"])
	assert.NotContains(t, rows[0], "image_url")

	p.Title = "Diubah"
	require.NoError(t, repo.Upsert(ctx, &p))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, *got)
}

func TestProjectRepo_RetryFailureIsReported(t *testing.T) {
	s := store.NewMemoryStore()
	s.DefineTable("projects", "title")
	repo := NewProjectRepo(s, schema.NamingPrimary)

	p := sampleProject()
	err := repo.Upsert(context.Background(), &p)
	require.Error(t, err)
	assert.True(t, errs.IsSchemaMismatch(err))
	assert.Empty(t, p.ID)
}

func TestProjectRepo_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepo(store.NewMemoryStore(), schema.NamingPrimary)

	p := sampleProject()
	require.NoError(t, repo.Upsert(ctx, &p))

	require.NoError(t, repo.Delete(ctx, p.ID))
	require.NoError(t, repo.Delete(ctx, p.ID))
	require.NoError(t, repo.Delete(ctx, "never-existed"))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProjectRepo_ListDegradesToEmpty(t *testing.T) {
	repo := NewProjectRepo(&failingStore{err: errors.New("network down")}, schema.NamingPrimary)

	_, err := repo.FindAll(context.Background())
	require.Error(t, err)

	list := repo.List(context.Background())
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestProjectRepo_WriteErrorIsWrapped(t *testing.T) {
	fs := &failingStore{err: errors.New("connection refused")}
	repo := NewProjectRepo(fs, schema.NamingPrimary)

	p := sampleProject()
	err := repo.Upsert(context.Background(), &p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
	assert.Equal(t, 1, fs.calls)
}

func TestResourceRepo_RoundTripAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewResourceRepo(store.NewMemoryStore(), schema.NamingPrimary)

	second := models.DownloadItem{Title: "Data JSON", FileURL: "https://files.example.com/d.json", FileType: models.FileTypeJSON, Order: 2}
	first := models.DownloadItem{Title: "Nilai", FileURL: "https://files.example.com/n.xlsx", FileType: models.FileTypeExcel, Order: 1}
	require.NoError(t, repo.Upsert(ctx, &second))
	require.NoError(t, repo.Upsert(ctx, &first))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.DownloadItem{first, second}, all)

	require.NoError(t, repo.Delete(ctx, first.ID))
	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.Equal(t, []models.DownloadItem{second}, repo.List(ctx))
}

func TestResourceRepo_LegacyOrderColumn(t *testing.T) {
	s := store.NewMemoryStore()
	s.Seed("resources",
		store.Row{"id": "r2", "title": "B", "idx": 2, "fileType": "json"},
		store.Row{"id": "r1", "title": "A", "idx": 1, "file_type": "pdf"},
	)
	repo := NewResourceRepo(s, schema.NamingPrimary)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "r1", all[0].ID)
	assert.Equal(t, models.FileTypeExcel, all[0].FileType)
	assert.Equal(t, models.FileTypeJSON, all[1].FileType)
}

func TestProfileRepo_GetOrCreateDefault(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := NewProfileRepo(s, schema.NamingPrimary)

	first, err := repo.GetOrCreateDefault(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := repo.GetOrCreateDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	rows, err := s.Select(ctx, "profiles", store.Query{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestProfileRepo_SaveKeepsSingleRow(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := NewProfileRepo(s, schema.NamingPrimary)

	p := models.DefaultProfile()
	p.ID = "ignored"
	require.NoError(t, repo.Save(ctx, &p))
	id := p.ID
	assert.NotEqual(t, "ignored", id)

	p.Name = "Budi"
	p.LayoutSettings = p.LayoutSettings.ApplyPreset(models.PresetAdaptive)
	p.ThemeSettings.PrimaryColor = "#FF0000"
	require.NoError(t, repo.Save(ctx, &p))
	assert.Equal(t, id, p.ID)

	rows, err := s.Select(ctx, "profiles", store.Query{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	got, err := repo.Find(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p, *got)
}

func TestProfileRepo_MalformedSettingsDefault(t *testing.T) {
	s := store.NewMemoryStore()
	s.Seed("profiles", store.Row{
		"id":              "me",
		"name":            "Sari",
		"layout_settings": "{not json",
		"theme_settings":  `{"primaryColor":"#123456"}`,
	})
	repo := NewProfileRepo(s, schema.NamingPrimary)

	got, err := repo.Find(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.DefaultLayout(), got.LayoutSettings)
	assert.Equal(t, "#123456", got.ThemeSettings.PrimaryColor)
	assert.Equal(t, models.DefaultTheme().CardColor, got.ThemeSettings.CardColor)
}

func TestProfileRepo_FindFailureReturnsDefault(t *testing.T) {
	repo := NewProfileRepo(&failingStore{err: errors.New("timeout")}, schema.NamingPrimary)

	p, err := repo.GetOrCreateDefault(context.Background())
	require.Error(t, err)
	assert.Equal(t, models.DefaultProfile(), p)
}

func TestDatabase_SeedOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	db := New(store.NewMemoryStore(), schema.NamingPrimary)

	require.NoError(t, db.Seed(ctx))
	require.NoError(t, db.Seed(ctx))

	projects, err := db.ProjectRepo().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, len(models.SeedProjects()))

	profile, err := db.ProfileRepo().Find(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, models.DefaultProfile().Name, profile.Name)
}
