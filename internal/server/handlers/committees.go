package handlers

import (
	"net/http"

	"github.com/Jib667/Watchdog/internal/server/response"
)

// HandleListCommittees handles GET /api/v1/committees.
// @Summary List committees
// @Description List all committees sorted by name
// @Tags committees
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/committees [get].
func (h *Handlers) HandleListCommittees(w http.ResponseWriter, _ *http.Request) {
	dir, err := h.store.Directory()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	committees := dir.Committees()
	response.OK(w, map[string]any{
		"committees": committees,
		"count":      len(committees),
	})
}

// HandleGetCommittee handles GET /api/v1/committees/{code}.
// @Summary Get committee by code
// @Description Retrieve a committee or subcommittee by roster code
// @Tags committees
// @Accept json
// @Produce json
// @Param code path string true "Committee code"
// @Success 200 {object} response.Response{data=object}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/committees/{code} [get].
func (h *Handlers) HandleGetCommittee(w http.ResponseWriter, _ *http.Request, code string) {
	dir, err := h.store.Directory()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	committee, subcommittee, err := dir.Committee(code)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	if subcommittee != nil {
		response.OK(w, map[string]any{
			"committee":    committee,
			"subcommittee": subcommittee,
		})
		return
	}

	response.OK(w, map[string]any{
		"committee": committee,
	})
}

// HandleStats handles GET /api/v1/stats.
// @Summary Directory statistics
// @Description Counts and diagnostics from the last directory build
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=reconcile.Stats}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/stats [get].
func (h *Handlers) HandleStats(w http.ResponseWriter, _ *http.Request) {
	dir, err := h.store.Directory()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, dir.Stats())
}
