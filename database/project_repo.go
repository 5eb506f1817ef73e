package database

import (
	"cmp"
	"context"
	"slices"

	"github.com/eduproject/catalog/errs"
	"github.com/eduproject/catalog/models"
	"github.com/eduproject/catalog/schema"
	"github.com/eduproject/catalog/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ProjectRepo struct {
	table  entityTable[models.Project]
	logger zerolog.Logger
}

func NewProjectRepo(s store.RowStore, naming schema.Naming) *ProjectRepo {
	logger := log.With().Str("repo", "projects").Logger()
	return &ProjectRepo{
		table: entityTable[models.Project]{
			store:  s,
			table:  schema.Projects,
			naming: naming,
			decode: schema.DecodeProject,
			encode: schema.EncodeProject,
			logger: logger,
		},
		logger: logger,
	}
}

// FindAll returns all projects sorted by display order. Projects sharing an
// order keep the order the store returned them in.
func (r *ProjectRepo) FindAll(ctx context.Context) ([]models.Project, error) {
	projects, err := r.table.selectAll(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(projects, func(a, b models.Project) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return projects, nil
}

// List is FindAll for the public listing: a fetch failure is logged and
// yields an empty catalog.
func (r *ProjectRepo) List(ctx context.Context) []models.Project {
	projects, err := r.FindAll(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("error fetching projects")
		return []models.Project{}
	}
	return projects
}

// FindByID returns a project by its ID, or nil when no row matches.
func (r *ProjectRepo) FindByID(ctx context.Context, id string) (*models.Project, error) {
	return r.table.selectByID(ctx, id)
}

// Upsert inserts a project without an ID, setting the ID the store assigned,
// and updates one that has an ID. An ID matching no row is inserted as is.
func (r *ProjectRepo) Upsert(ctx context.Context, project *models.Project) error {
	project.Normalize()

	if !project.IsNew() {
		affected, err := r.table.update(ctx, project.ID, *project)
		if err != nil {
			return errs.NewDatabaseError("update", "project", err)
		}
		if affected > 0 {
			return nil
		}
	}

	id, err := r.table.insert(ctx, *project)
	if err != nil {
		return errs.NewDatabaseError("create", "project", err)
	}
	if id != "" {
		project.ID = id
	}
	return nil
}

// Delete removes a project from the database by id. Unknown ids are not an error.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	if err := r.table.delete(ctx, id); err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}
	return nil
}
