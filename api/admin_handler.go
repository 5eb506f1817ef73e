package api

import (
	"net/http"
	"time"

	"github.com/eduproject/catalog/admin"
	"github.com/eduproject/catalog/database"
	"github.com/eduproject/catalog/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	gate      admin.Gate
	tokens    tokenSigner
	repos     admin.Repositories
}

func newAdminHandler(db database.Database, gate admin.Gate, tokens tokenSigner) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gate:      gate,
		tokens:    tokens,
		repos:     admin.FromDatabase(db),
	}
}

// LoginRequest carries the operator's access code
type LoginRequest struct {
	AccessCode string `json:"accessCode" example:"secret"`
}

// LoginResponse carries the bearer token for the admin routes
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RefreshResponse is a full re-fetch of every collection
type RefreshResponse struct {
	Status admin.ConnStatus `json:"status"`
	Data   *admin.Snapshot  `json:"data,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// login exchanges the access code for a bearer token
// @Summary Admin login
// @Description Checks the access code exactly (case-sensitive) and returns a bearer token.
// @Tags Admin
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Access code"
// @Success 200 {object} LoginResponse "Token"
// @Failure 401 {object} ErrorResponse "Unauthorized - wrong access code"
// @Router /admin/login [post]
func (h adminHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := h.responder.decodeBody(r, &req, "login"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if !h.gate.Check(req.AccessCode) {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("rejected admin access code")
			h.responder.WriteError(w, errs.NewInvalidAccessCodeError())
			return
		}

		token, expires, err := h.tokens.issue()
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue token", err))
			return
		}

		h.responder.WriteJSON(w, LoginResponse{Token: token, ExpiresAt: expires})
	}
}

// refresh re-fetches projects, resources and the profile
// @Summary Refresh
// @Description Re-fetches every collection and reports whether the store is reachable.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RefreshResponse "Connected"
// @Failure 503 {object} RefreshResponse "Disconnected"
// @Router /admin/refresh [post]
func (h adminHandler) refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := admin.Load(r.Context(), h.repos)
		if err != nil {
			h.logger.Error().Err(err).Msg("error refreshing data")
			h.responder.WriteJSONStatus(w, http.StatusServiceUnavailable, RefreshResponse{
				Status: admin.StatusDisconnected,
				Error:  err.Error(),
			})
			return
		}

		h.responder.WriteJSON(w, RefreshResponse{Status: admin.StatusConnected, Data: &snap})
	}
}
