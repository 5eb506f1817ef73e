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

type ResourceRepo struct {
	table  entityTable[models.DownloadItem]
	logger zerolog.Logger
}

func NewResourceRepo(s store.RowStore, naming schema.Naming) *ResourceRepo {
	logger := log.With().Str("repo", "resources").Logger()
	return &ResourceRepo{
		table: entityTable[models.DownloadItem]{
			store:  s,
			table:  schema.Resources,
			naming: naming,
			decode: schema.DecodeResource,
			encode: schema.EncodeResource,
			logger: logger,
		},
		logger: logger,
	}
}

func (r *ResourceRepo) FindAll(ctx context.Context) ([]models.DownloadItem, error) {
	items, err := r.table.selectAll(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(items, func(a, b models.DownloadItem) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return items, nil
}

func (r *ResourceRepo) List(ctx context.Context) []models.DownloadItem {
	items, err := r.FindAll(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("error fetching resources")
		return []models.DownloadItem{}
	}
	return items
}

func (r *ResourceRepo) FindByID(ctx context.Context, id string) (*models.DownloadItem, error) {
	return r.table.selectByID(ctx, id)
}

func (r *ResourceRepo) Upsert(ctx context.Context, item *models.DownloadItem) error {
	if !item.IsNew() {
		affected, err := r.table.update(ctx, item.ID, *item)
		if err != nil {
			return errs.NewDatabaseError("update", "resource", err)
		}
		if affected > 0 {
			return nil
		}
	}

	id, err := r.table.insert(ctx, *item)
	if err != nil {
		return errs.NewDatabaseError("create", "resource", err)
	}
	if id != "" {
		item.ID = id
	}
	return nil
}

func (r *ResourceRepo) Delete(ctx context.Context, id string) error {
	if err := r.table.delete(ctx, id); err != nil {
		return errs.NewDatabaseError("delete", "resource", err)
	}
	return nil
}
