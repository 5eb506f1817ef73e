package database

import (
	"context"

	"github.com/eduproject/catalog/errs"
	"github.com/eduproject/catalog/models"
	"github.com/eduproject/catalog/schema"
	"github.com/eduproject/catalog/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ProfileRepo is the settings repository for the singleton profile row.
// It never creates a second row: writes target whichever row exists first.
type ProfileRepo struct {
	table  entityTable[models.DeveloperProfile]
	logger zerolog.Logger
}

func NewProfileRepo(s store.RowStore, naming schema.Naming) *ProfileRepo {
	logger := log.With().Str("repo", "profiles").Logger()
	return &ProfileRepo{
		table: entityTable[models.DeveloperProfile]{
			store:  s,
			table:  schema.Profiles,
			naming: naming,
			decode: schema.DecodeProfile,
			encode: schema.EncodeProfile,
			logger: logger,
		},
		logger: logger,
	}
}

// Find returns the profile row, or nil when none exists yet.
func (r *ProfileRepo) Find(ctx context.Context) (*models.DeveloperProfile, error) {
	return r.table.selectOne(ctx, nil)
}

// GetOrCreateDefault returns the stored profile, inserting the default one
// first when the table is empty. On a fetch failure the default profile is
// returned together with the error.
func (r *ProfileRepo) GetOrCreateDefault(ctx context.Context) (models.DeveloperProfile, error) {
	existing, err := r.Find(ctx)
	if err != nil {
		return models.DefaultProfile(), err
	}
	if existing != nil {
		return *existing, nil
	}

	profile := models.DefaultProfile()
	id, err := r.table.insert(ctx, profile)
	if err != nil {
		return profile, errs.NewDatabaseError("create", "profile", err)
	}
	profile.ID = id
	r.logger.Info().Str("id", id).Msg("seeded default profile")
	return profile, nil
}

// Save replaces the stored profile with profile, inserting it when no row
// exists. The profile's ID is set to the row that was written.
func (r *ProfileRepo) Save(ctx context.Context, profile *models.DeveloperProfile) error {
	existing, err := r.Find(ctx)
	if err != nil {
		return errs.NewDatabaseError("find", "profile", err)
	}

	if existing != nil {
		profile.ID = existing.ID
		if _, err := r.table.update(ctx, existing.ID, *profile); err != nil {
			return errs.NewDatabaseError("update", "profile", err)
		}
		return nil
	}

	profile.ID = ""
	id, err := r.table.insert(ctx, *profile)
	if err != nil {
		return errs.NewDatabaseError("create", "profile", err)
	}
	profile.ID = id
	return nil
}
