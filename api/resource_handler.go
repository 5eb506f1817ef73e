package api

import (
	"net/http"

	"github.com/eduproject/catalog/database"
	"github.com/eduproject/catalog/display"
	"github.com/eduproject/catalog/errs"
	"github.com/eduproject/catalog/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type resourceHandler struct {
	responder    Responder
	logger       zerolog.Logger
	resourceRepo *database.ResourceRepo
	catalog      *display.Catalog
}

func newResourceHandler(resourceRepo *database.ResourceRepo, catalog *display.Catalog) resourceHandler {
	logger := log.With().Str("handlerName", "resourceHandler").Logger()

	return resourceHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		resourceRepo: resourceRepo,
		catalog:      catalog,
	}
}

// getAllResources lists the downloadable resources
// @Summary Get resources
// @Description Retrieves all downloadable resources with their icons, sorted by order
// @Tags Resources
// @Produce json
// @Success 200 {object} display.ResourcesView "Resources"
// @Router /resources [get]
func (h resourceHandler) getAllResources() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.catalog.Resources(r.Context()))
	}
}

// @Summary Create resource
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource body models.DownloadItem true "Resource data"
// @Success 201 {object} models.DownloadItem "Created resource"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid resource data"
// @Router /admin/resources [post]
func (h resourceHandler) createResource() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item models.DownloadItem
		if err := h.responder.decodeBody(r, &item, "resource"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item.ID = ""
		if err := item.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.resourceRepo.Upsert(r.Context(), &item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "resource", err))
			return
		}

		h.logger.Info().Str("id", item.ID).Str("by", ctxGetAdminSubject(r.Context())).Msg("resource created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, item)
	}
}

// @Summary Update resource
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resourceID path string true "Resource ID"
// @Param resource body models.DownloadItem true "Resource data"
// @Success 200 {object} models.DownloadItem "Saved resource"
// @Router /admin/resources/{resourceID} [put]
func (h resourceHandler) updateResource() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resourceID := chi.URLParam(r, "resourceID")
		if resourceID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing resourceID"))
			return
		}

		var item models.DownloadItem
		if err := h.responder.decodeBody(r, &item, "resource"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item.ID = resourceID
		if err := item.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.resourceRepo.Upsert(r.Context(), &item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "resource", err))
			return
		}

		h.responder.WriteJSON(w, item)
	}
}

// @Summary Delete resource
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param resourceID path string true "Resource ID"
// @Success 200 {object} map[string]string "Success message"
// @Router /admin/resources/{resourceID} [delete]
func (h resourceHandler) deleteResource() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resourceID := chi.URLParam(r, "resourceID")
		if resourceID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing resourceID"))
			return
		}

		if err := h.resourceRepo.Delete(r.Context(), resourceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "resource", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "resource deleted successfully",
		})
	}
}
