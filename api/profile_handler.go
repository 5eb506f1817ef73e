package api

import (
	"net/http"

	"github.com/eduproject/catalog/database"
	"github.com/eduproject/catalog/display"
	"github.com/eduproject/catalog/errs"
	"github.com/eduproject/catalog/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
	catalog     *display.Catalog
}

func newProfileHandler(profileRepo *database.ProfileRepo, catalog *display.Catalog) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		catalog:     catalog,
	}
}

// getProfile returns the about page
// @Summary Get profile
// @Description Retrieves the developer profile with its links and theme. Falls back to the default profile.
// @Tags Profile
// @Produce json
// @Success 200 {object} display.AboutView "Profile"
// @Router /profile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.catalog.About(r.Context()))
	}
}

// saveProfile replaces the whole profile
// @Summary Save profile
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.DeveloperProfile true "Profile"
// @Success 200 {object} models.DeveloperProfile "Saved profile"
// @Router /admin/profile [put]
func (h profileHandler) saveProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile models.DeveloperProfile
		if err := h.responder.decodeBody(r, &profile, "profile"); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !profile.LayoutSettings.Preset.Valid() {
			profile.LayoutSettings = models.DefaultLayout()
		}
		h.save(w, r, profile)
	}
}

// patchLayout merges a partial layout update into the stored settings
// @Summary Update layout settings
// @Description Fields left out keep their stored value. A preset is applied before explicit values.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param layout body models.LayoutPatch true "Partial layout"
// @Success 200 {object} models.DeveloperProfile "Saved profile"
// @Router /admin/profile/layout [patch]
func (h profileHandler) patchLayout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.LayoutPatch
		if err := h.responder.decodeBody(r, &patch, "layout"); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if patch.Preset != nil && !patch.Preset.Valid() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("preset", "unknown layout preset "+string(*patch.Preset)))
			return
		}

		profile, err := h.profileRepo.GetOrCreateDefault(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		profile.LayoutSettings = profile.LayoutSettings.Merge(patch)
		h.save(w, r, profile)
	}
}

// patchTheme merges a partial theme update into the stored settings
// @Summary Update theme settings
// @Description Fields left out or empty keep their stored value.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param theme body models.ThemePatch true "Partial theme"
// @Success 200 {object} models.DeveloperProfile "Saved profile"
// @Router /admin/profile/theme [patch]
func (h profileHandler) patchTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.ThemePatch
		if err := h.responder.decodeBody(r, &patch, "theme"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		profile, err := h.profileRepo.GetOrCreateDefault(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		profile.ThemeSettings = profile.ThemeSettings.Merge(patch)
		h.save(w, r, profile)
	}
}

func (h profileHandler) save(w http.ResponseWriter, r *http.Request, profile models.DeveloperProfile) {
	if err := h.profileRepo.Save(r.Context(), &profile); err != nil {
		h.responder.WriteError(w, wrapDatabaseError("update", "profile", err))
		return
	}
	h.logger.Info().Str("id", profile.ID).Str("by", ctxGetAdminSubject(r.Context())).Msg("profile saved")
	h.responder.WriteJSON(w, profile)
}
