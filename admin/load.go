package admin

import (
	"context"

	"github.com/eduproject/catalog/database"
	"github.com/eduproject/catalog/models"
	"golang.org/x/sync/errgroup"
)

type ProjectStore interface {
	FindAll(ctx context.Context) ([]models.Project, error)
	Upsert(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id string) error
}

type ResourceStore interface {
	FindAll(ctx context.Context) ([]models.DownloadItem, error)
	Upsert(ctx context.Context, d *models.DownloadItem) error
	Delete(ctx context.Context, id string) error
}

type ProfileStore interface {
	GetOrCreateDefault(ctx context.Context) (models.DeveloperProfile, error)
	Save(ctx context.Context, p *models.DeveloperProfile) error
}

// Repositories are the collections an admin session edits.
type Repositories struct {
	Projects  ProjectStore
	Resources ResourceStore
	Profile   ProfileStore
}

// FromDatabase binds the session to the database repositories.
func FromDatabase(db database.Database) Repositories {
	return Repositories{
		Projects:  db.ProjectRepo(),
		Resources: db.ResourceRepo(),
		Profile:   db.ProfileRepo(),
	}
}

// Snapshot is the result of one full fetch of every collection.
type Snapshot struct {
	Projects  []models.Project        `json:"projects"`
	Resources []models.DownloadItem   `json:"resources"`
	Profile   models.DeveloperProfile `json:"profile"`
}

// Load fetches projects, resources and the profile concurrently. Any failure
// fails the whole load.
func Load(ctx context.Context, repos Repositories) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		projects, err := repos.Projects.FindAll(gctx)
		snap.Projects = projects
		return err
	})
	g.Go(func() error {
		resources, err := repos.Resources.FindAll(gctx)
		snap.Resources = resources
		return err
	})
	g.Go(func() error {
		profile, err := repos.Profile.GetOrCreateDefault(gctx)
		snap.Profile = profile
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
