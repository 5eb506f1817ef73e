package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eduproject/catalog/admin"
	"github.com/eduproject/catalog/database"
	"github.com/eduproject/catalog/display"
	"github.com/eduproject/catalog/models"
	"github.com/eduproject/catalog/schema"
	"github.com/eduproject/catalog/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessCode = "Indme&781l"

type testServer struct {
	t       *testing.T
	handler http.Handler
	db      database.Database
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := database.New(store.NewMemoryStore(), schema.NamingPrimary)
	require.NoError(t, db.Seed(context.Background()))

	c := map[string]string{
		"ADMIN_ACCESS_CODE":  testAccessCode,
		"ADMIN_TOKEN_SECRET": "0123456789abcdef0123456789abcdef",
		"ACCEPTED_ORIGINS":   "https://eduproject.id",
	}
	return &testServer{t: t, handler: newRouter(db, withConfig(c)), db: db}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login() string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/admin/login", "", LoginRequest{AccessCode: testAccessCode})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var resp LoginResponse
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(s.t, resp.Token)
	return resp.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestListProjects(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/projects", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[ProjectCollection](t, rec)
	assert.Equal(t, len(models.SeedProjects()), resp.Total)
	assert.Equal(t, 1, resp.Projects[0].Project.Order)
	assert.Equal(t, display.GridFixed, resp.Grid.Mode)
	assert.Equal(t, "#FACC15", resp.Theme.Settings.PrimaryColor)
}

func TestListProjectsFiltered(t *testing.T) {
	s := newTestServer(t)

	resp := decode[ProjectCollection](t, s.do(http.MethodGet, "/projects?q=SOSIAL", "", nil))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Sosial", resp.Projects[0].Project.Category)

	resp = decode[ProjectCollection](t, s.do(http.MethodGet, "/projects?q=zzz", "", nil))
	assert.Zero(t, resp.Total)
	assert.NotNil(t, resp.Projects)
}

func TestGetProject(t *testing.T) {
	s := newTestServer(t)
	projects := s.db.ProjectRepo().List(context.Background())

	rec := s.do(http.MethodGet, "/project/"+projects[0].ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[display.DetailView](t, rec)
	assert.True(t, view.Found)
	assert.Equal(t, projects[0].Title, view.Project.Title)

	rec = s.do(http.MethodGet, "/project/missing", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	view = decode[display.DetailView](t, rec)
	assert.False(t, view.Found)
	assert.Equal(t, "/", view.BackPath)
}

func TestResourcesAndProfile(t *testing.T) {
	s := newTestServer(t)

	resources := decode[display.ResourcesView](t, s.do(http.MethodGet, "/resources", "", nil))
	assert.True(t, resources.Empty)

	about := decode[display.AboutView](t, s.do(http.MethodGet, "/profile", "", nil))
	assert.Equal(t, models.DefaultProfile().Name, about.Profile.Name)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[HealthResponse](t, rec).Status)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/admin/login", "", LoginRequest{AccessCode: "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	errResp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "accessCode", errResp.Field)
	assert.Equal(t, "Kode akses salah.", errResp.Details)

	rec = s.do(http.MethodPost, "/admin/login", "", LoginRequest{AccessCode: "indme&781l"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.NotEmpty(t, s.login())
}

func TestLoginDisabledWithoutAccessCode(t *testing.T) {
	db := database.New(store.NewMemoryStore(), schema.NamingPrimary)
	handler := newRouter(db, withConfig(map[string]string{}))

	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{"accessCode":""}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginWithCustomGate(t *testing.T) {
	db := database.New(store.NewMemoryStore(), schema.NamingPrimary)
	gate := admin.GateFunc(func(code string) bool { return code == "open sesame" })
	handler := newRouter(db, withConfig(map[string]string{}), withGate(gate))

	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{"accessCode":"open sesame"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutesNeedToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/admin/projects", "", models.Project{Title: "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodDelete, "/admin/projects/abc", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other := newTokenSigner("another-secret-another-secret-xx", time.Hour)
	token, _, err := other.issue()
	require.NoError(t, err)
	rec = s.do(http.MethodPost, "/admin/refresh", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenExpiry(t *testing.T) {
	signer := newTokenSigner("0123456789abcdef0123456789abcdef", time.Minute)
	issuedAt := time.Now().Add(-time.Hour)
	signer.now = func() time.Time { return issuedAt }
	token, _, err := signer.issue()
	require.NoError(t, err)

	signer.now = time.Now
	_, err = signer.verify(token)
	assert.Error(t, err)
}

func TestProjectLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	input := models.Project{
		Title:       "Robotika",
		Description: "Kit robot",
		ImageURL:    "https://img.example.com/r.png",
		ExternalURL: "https://example.com/r",
		Category:    "Teknologi",
		Order:       4,
		ActionType:  models.ActionInternal,
	}

	rec := s.do(http.MethodPost, "/admin/projects", token, input)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.Project](t, rec)
	require.NotEmpty(t, created.ID)

	list := decode[ProjectCollection](t, s.do(http.MethodGet, "/projects?q=robot", "", nil))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, display.ActionNavigate, list.Projects[0].Action.Kind)
	assert.Equal(t, "/project/"+created.ID, list.Projects[0].Action.Target)

	created.Title = "Robotika Lanjut"
	rec = s.do(http.MethodPut, "/admin/projects/"+created.ID, token, created)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got, err := s.db.ProjectRepo().FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Robotika Lanjut", got.Title)

	rec = s.do(http.MethodDelete, "/admin/projects/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(http.MethodDelete, "/admin/projects/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/project/"+created.ID, "", nil).Code)
}

func TestCreateProjectValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rec := s.do(http.MethodPost, "/admin/projects", token, models.Project{Description: "no title"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "title", decode[ErrorResponse](t, rec).Field)

	req := httptest.NewRequest(http.MethodPost, "/admin/projects", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Len(t, s.db.ProjectRepo().List(context.Background()), len(models.SeedProjects()))
}

func TestResourceLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rec := s.do(http.MethodPost, "/admin/resources", token, models.DownloadItem{
		Title: "Data Siswa", FileURL: "https://files.example.com/s.json", FileType: models.FileTypeJSON, Order: 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	item := decode[models.DownloadItem](t, rec)

	view := decode[display.ResourcesView](t, s.do(http.MethodGet, "/resources", "", nil))
	require.Len(t, view.Items, 1)
	assert.Equal(t, display.IconJSON, view.Items[0].Icon)

	item.FileType = "pdf"
	rec = s.do(http.MethodPut, "/admin/resources/"+item.ID, token, item)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodDelete, "/admin/resources/"+item.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[display.ResourcesView](t, s.do(http.MethodGet, "/resources", "", nil)).Empty)
}

func TestPatchLayoutAndTheme(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rec := s.do(http.MethodPatch, "/admin/profile/layout", token, map[string]any{"preset": "masonry"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	profile := decode[models.DeveloperProfile](t, rec)
	assert.Equal(t, models.PresetMasonry, profile.LayoutSettings.Preset)
	assert.Equal(t, 6, profile.LayoutSettings.Gap)

	rec = s.do(http.MethodPatch, "/admin/profile/layout", token, map[string]any{"preset": "bento"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPatch, "/admin/profile/theme", token, map[string]any{"accentColor": "#1D4ED8"})
	require.Equal(t, http.StatusOK, rec.Code)
	profile = decode[models.DeveloperProfile](t, rec)
	assert.Equal(t, "#1D4ED8", profile.ThemeSettings.AccentColor)
	assert.Equal(t, "#FACC15", profile.ThemeSettings.PrimaryColor)
	assert.Equal(t, models.PresetMasonry, profile.LayoutSettings.Preset)

	list := decode[ProjectCollection](t, s.do(http.MethodGet, "/projects", "", nil))
	assert.Equal(t, display.GridMasonry, list.Grid.Mode)
}

func TestSaveProfile(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	p := models.DefaultProfile()
	p.Name = "Sari"
	rec := s.do(http.MethodPut, "/admin/profile", token, p)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	about := decode[display.AboutView](t, s.do(http.MethodGet, "/profile", "", nil))
	assert.Equal(t, "Sari", about.Profile.Name)
}

func TestRefresh(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rec := s.do(http.MethodPost, "/admin/refresh", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[RefreshResponse](t, rec)
	assert.Equal(t, admin.StatusConnected, resp.Status)
	require.NotNil(t, resp.Data)
	assert.Len(t, resp.Data.Projects, len(models.SeedProjects()))
}

func TestCORS(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/projects", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Origin", "https://eduproject.id")
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, "https://eduproject.id", rec.Header().Get("Access-Control-Allow-Origin"))
}
