// Package display builds the read-only views of the public site from fetched
// data and the profile's presentation settings.
package display

import (
	"context"

	"github.com/eduproject/catalog/database"
	"github.com/eduproject/catalog/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	notFoundTitle     = "Proyek Tidak Ditemukan"
	backLabel         = "Kembali ke Beranda"
	noProjectsMessage = "Tidak ada proyek ditemukan"
	noResourcesMsg    = "Belum ada sumber daya yang tersedia."
	homePath          = "/"
)

type ProjectSource interface {
	List(ctx context.Context) []models.Project
	FindByID(ctx context.Context, id string) (*models.Project, error)
}

type ResourceSource interface {
	List(ctx context.Context) []models.DownloadItem
}

type ProfileSource interface {
	Find(ctx context.Context) (*models.DeveloperProfile, error)
}

// Catalog renders the public views. It only reads.
type Catalog struct {
	projects  ProjectSource
	resources ResourceSource
	profile   ProfileSource
	logger    zerolog.Logger
}

func NewCatalog(projects ProjectSource, resources ResourceSource, profile ProfileSource) *Catalog {
	return &Catalog{
		projects:  projects,
		resources: resources,
		profile:   profile,
		logger:    log.With().Str("component", "catalog").Logger(),
	}
}

// CatalogFromDatabase builds a catalog over the database repositories.
func CatalogFromDatabase(db database.Database) *Catalog {
	return NewCatalog(db.ProjectRepo(), db.ResourceRepo(), db.ProfileRepo())
}

// ProjectCard is a project as shown on the listing.
type ProjectCard struct {
	Project models.Project `json:"project"`
	Action  Action         `json:"action"`
}

// HomeView is the listing page. Filtering works on the fetched list and
// never fetches again.
type HomeView struct {
	Projects     []models.Project `json:"projects"`
	Grid         Grid             `json:"grid"`
	Theme        Theme            `json:"theme"`
	EmptyMessage string           `json:"emptyMessage"`
}

// Filter returns the cards matching term.
func (v HomeView) Filter(term string) []ProjectCard {
	matched := FilterProjects(v.Projects, term)
	cards := make([]ProjectCard, 0, len(matched))
	for _, p := range matched {
		cards = append(cards, ProjectCard{Project: p, Action: ActionFor(p)})
	}
	return cards
}

func (c *Catalog) Home(ctx context.Context) HomeView {
	profile := c.loadProfile(ctx)

	var layout *models.LayoutSettings
	theme := models.DefaultTheme()
	if profile != nil {
		layout = &profile.LayoutSettings
		theme = profile.ThemeSettings
	}

	return HomeView{
		Projects:     c.projects.List(ctx),
		Grid:         GridFor(layout),
		Theme:        ThemeFor(theme),
		EmptyMessage: noProjectsMessage,
	}
}

// DetailView is a project's long-form page. When Found is false only the
// not-found fields are set.
type DetailView struct {
	Found     bool            `json:"found"`
	Project   *models.Project `json:"project,omitempty"`
	Gallery   []string        `json:"gallery,omitempty"`
	Video     string          `json:"video,omitempty"`
	Theme     Theme           `json:"theme"`
	Message   string          `json:"message,omitempty"`
	BackLabel string          `json:"backLabel"`
	BackPath  string          `json:"backPath"`
}

func (c *Catalog) Detail(ctx context.Context, id string) DetailView {
	view := DetailView{
		Theme:     c.theme(ctx),
		BackLabel: backLabel,
		BackPath:  homePath,
	}

	project, err := c.projects.FindByID(ctx, id)
	if err != nil {
		c.logger.Error().Err(err).Str("id", id).Msg("error fetching project detail")
	}
	if project == nil {
		view.Message = notFoundTitle
		return view
	}

	view.Found = true
	view.Project = project
	view.Gallery = ParseGallery(project.DetailGallery)
	view.Video = project.DetailVideo
	return view
}

type ResourceCard struct {
	Item        models.DownloadItem `json:"item"`
	Icon        Icon                `json:"icon"`
	DownloadURL string              `json:"downloadUrl"`
}

type ResourcesView struct {
	Items        []ResourceCard `json:"items"`
	Empty        bool           `json:"empty"`
	EmptyMessage string         `json:"emptyMessage,omitempty"`
	Theme        Theme          `json:"theme"`
}

func (c *Catalog) Resources(ctx context.Context) ResourcesView {
	items := c.resources.List(ctx)
	view := ResourcesView{
		Items: make([]ResourceCard, 0, len(items)),
		Theme: c.theme(ctx),
	}
	for _, item := range items {
		view.Items = append(view.Items, ResourceCard{
			Item:        item,
			Icon:        IconFor(item.FileType),
			DownloadURL: item.FileURL,
		})
	}
	if len(view.Items) == 0 {
		view.Empty = true
		view.EmptyMessage = noResourcesMsg
	}
	return view
}

// Link is one of the profile's two renamable link buttons.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type AboutView struct {
	Profile     models.DeveloperProfile `json:"profile"`
	Links       []Link                  `json:"links"`
	SocialLabel string                  `json:"socialLabel"`
	Theme       Theme                   `json:"theme"`
}

// About shows the stored profile, or the default one when none is stored.
func (c *Catalog) About(ctx context.Context) AboutView {
	profile := models.DefaultProfile()
	if p := c.loadProfile(ctx); p != nil {
		profile = *p
	}

	var links []Link
	if profile.LinkedIn != "" {
		links = append(links, Link{Label: orDefault(profile.LinkedInLabel, "LinkedIn"), URL: profile.LinkedIn})
	}
	if profile.GitHub != "" {
		links = append(links, Link{Label: orDefault(profile.GitHubLabel, "GitHub"), URL: profile.GitHub})
	}

	return AboutView{
		Profile:     profile,
		Links:       links,
		SocialLabel: orDefault(profile.SocialLabel, "Terhubung"),
		Theme:       ThemeFor(profile.ThemeSettings),
	}
}

func (c *Catalog) theme(ctx context.Context) Theme {
	if p := c.loadProfile(ctx); p != nil {
		return ThemeFor(p.ThemeSettings)
	}
	return ThemeFor(models.DefaultTheme())
}

func (c *Catalog) loadProfile(ctx context.Context) *models.DeveloperProfile {
	p, err := c.profile.Find(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("error fetching profile")
		return nil
	}
	return p
}
