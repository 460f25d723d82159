package handlers

import (
	"net/http"

	"github.com/Jib667/Watchdog/internal/server/response"
)

// HandleListRepresentatives handles GET /api/v1/representatives.
// @Summary List representatives
// @Description List all current House members in district order
// @Tags members
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/representatives [get].
func (h *Handlers) HandleListRepresentatives(w http.ResponseWriter, _ *http.Request) {
	dir, err := h.store.Directory()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	reps := dir.Representatives()
	response.OK(w, map[string]any{
		"representatives": reps,
		"count":           len(reps),
	})
}

// HandleLookupRepresentative handles GET /api/v1/representatives/lookup.
// @Summary Look up a representative
// @Description Find the House member for a state and district
// @Tags members
// @Accept json
// @Produce json
// @Param state query string true "State code or full name"
// @Param district query string false "District number (omit for at-large)"
// @Success 200 {object} response.Response{data=congress.Member}
// @Failure 400 {object} response.Response{error=response.Error}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/representatives/lookup [get].
func (h *Handlers) HandleLookupRepresentative(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		response.BadRequest(w, "Missing required parameter", "state query parameter is required")
		return
	}
	district := r.URL.Query().Get("district")

	dir, err := h.store.Directory()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	member, err := dir.Representative(state, district)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, member)
}

// HandleListSenators handles GET /api/v1/senators.
// @Summary List senators
// @Description List all current senators grouped by state, senior first
// @Tags members
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/senators [get].
func (h *Handlers) HandleListSenators(w http.ResponseWriter, _ *http.Request) {
	dir, err := h.store.Directory()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	senators := dir.Senators()
	response.OK(w, map[string]any{
		"senators": senators,
		"count":    len(senators),
	})
}

// HandleLookupSenators handles GET /api/v1/senators/lookup.
// @Summary Look up senators by state
// @Description Find the senators for a state, senior first
// @Tags members
// @Accept json
// @Produce json
// @Param state query string true "State code or full name"
// @Success 200 {object} response.Response{data=object}
// @Failure 400 {object} response.Response{error=response.Error}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/senators/lookup [get].
func (h *Handlers) HandleLookupSenators(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		response.BadRequest(w, "Missing required parameter", "state query parameter is required")
		return
	}

	dir, err := h.store.Directory()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	senators, err := dir.SenatorsByState(state)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, map[string]any{
		"senators": senators,
		"count":    len(senators),
	})
}

// HandleGetMember handles GET /api/v1/members/{congress_id}.
// @Summary Get member by ID
// @Description Retrieve a member by synthesized congressional ID
// @Tags members
// @Accept json
// @Produce json
// @Param congress_id path string true "Congressional ID"
// @Success 200 {object} response.Response{data=congress.Member}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/members/{congress_id} [get].
func (h *Handlers) HandleGetMember(w http.ResponseWriter, _ *http.Request, congressID string) {
	dir, err := h.store.Directory()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	member, err := dir.Member(congressID)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, member)
}

// HandleDelegation handles GET /api/v1/delegation.
// @Summary Resolve a congressional delegation
// @Description Resolve the representative and senators for a state and district
// @Tags members
// @Accept json
// @Produce json
// @Param state query string true "State code or full name"
// @Param district query string false "District number (omit for at-large)"
// @Success 200 {object} response.Response{data=congress.Delegation}
// @Failure 400 {object} response.Response{error=response.Error}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/delegation [get].
func (h *Handlers) HandleDelegation(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		response.BadRequest(w, "Missing required parameter", "state query parameter is required")
		return
	}
	district := r.URL.Query().Get("district")

	dir, err := h.store.Directory()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	delegation, err := dir.ResolveDelegation(state, district)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, delegation)
}
