package handlers

import (
	"net/http"
	"time"

	"github.com/Jib667/Watchdog/internal/server/response"
)

// HandleReload handles POST /api/v1/admin/reload.
// @Summary Rebuild the directory
// @Description Re-read the datasets and atomically swap in a new directory snapshot
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 500 {object} response.Response{error=response.Error}
// @Router /api/v1/admin/reload [post].
func (h *Handlers) HandleReload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := h.store.Load(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("Directory reload failed")
		response.InternalError(w, err)
		return
	}

	dir, err := h.store.Directory()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	stats := dir.Stats()
	h.logger.Info().
		Int("representatives", stats.Representatives).
		Int("senators", stats.Senators).
		Dur("duration", time.Since(start)).
		Msg("Directory reloaded")

	response.OK(w, map[string]any{
		"status": "reloaded",
		"stats":  stats,
	})
}
