package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-hydroponics/internal/logger"
)

// Pinger checks a backing store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service health
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
}

// NewRootHandler returns the discovery document.
// @Summary API root
// @Description Lists absolute URLs of the available endpoints
// @Tags discovery
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := baseURL(r)
		writeJSON(w, http.StatusOK, map[string]string{
			"register":           base + RegisterPath,
			"login":              base + LoginPath,
			"hydroponic-systems": base + SystemsPath,
			"measurements":       base + MeasurementsPath,
			"swagger":            base + SwaggerPath,
		})
	}
}

// NewHealthHandler reports whether the database answers a ping.
// @Summary Health check
// @Tags discovery
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
