package database

import (
	"context"

	"github.com/eduproject/catalog/errs"
	"github.com/eduproject/catalog/models"
	"github.com/eduproject/catalog/schema"
	"github.com/eduproject/catalog/store"
	"github.com/rs/zerolog/log"
)

type Database struct {
	projectRepo  *ProjectRepo
	resourceRepo *ResourceRepo
	profileRepo  *ProfileRepo
}

// New initializes a new Database struct with each repository sharing one row store.
// naming selects the column spellings used for the first write attempt.
func New(s store.RowStore, naming schema.Naming) Database {
	return Database{
		projectRepo:  NewProjectRepo(s, naming),
		resourceRepo: NewResourceRepo(s, naming),
		profileRepo:  NewProfileRepo(s, naming),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ResourceRepo() *ResourceRepo {
	return d.resourceRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

// Seed writes the initial projects into an empty catalog and makes sure a
// profile row exists.
func (d Database) Seed(ctx context.Context) error {
	projects, err := d.projectRepo.FindAll(ctx)
	if err != nil {
		return errs.NewDatabaseError("find", "projects", err)
	}
	if len(projects) == 0 {
		for _, p := range models.SeedProjects() {
			if err := d.projectRepo.Upsert(ctx, &p); err != nil {
				return err
			}
		}
		log.Info().Int("count", len(models.SeedProjects())).Msg("seeded projects")
	}

	_, err = d.profileRepo.GetOrCreateDefault(ctx)
	return err
}
