package handlers

import (
	"net/http"
	"time"

	"github.com/Jib667/Watchdog/internal/server/response"
)

// HandleHealth handles GET /api/v1/health.
// @Summary Health check
// @Description Health check endpoint (liveness probe)
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Router /api/v1/health [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "watchdog-api",
		"version": "v1",
		"uptime":  time.Since(h.startTime).String(),
	})
}

// HandleReady handles GET /api/v1/ready.
// @Summary Readiness check
// @Description Readiness check including directory load status
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/ready [get].
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	dir, err := h.store.Directory()
	if err != nil {
		response.ServiceUnavailable(w, "Directory not loaded")
		return
	}

	stats := dir.Stats()
	response.OK(w, map[string]any{
		"status": "ready",
		"directory": map[string]any{
			"representatives": stats.Representatives,
			"senators":        stats.Senators,
			"committees":      stats.Committees,
			"built_at":        stats.BuiltAt,
		},
	})
}
