package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	startupTime time.Time
}

func newHealthHandler(startupTime time.Time) healthHandler {
	return healthHandler{
		responder:   NewResponder(log.With().Str("handlerName", "healthHandler").Logger()),
		startupTime: startupTime,
	}
}

// HealthResponse reports the process status
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	StartedAt time.Time `json:"startedAt"`
	Uptime    string    `json:"uptime" example:"1h2m3s"`
}

// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status:    "ok",
			StartedAt: h.startupTime,
			Uptime:    time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
