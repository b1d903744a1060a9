package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/surveyadmin/backend/internal/dashboard"
	"github.com/surveyadmin/backend/internal/source"
)

// ── Request / Response types ────────────────────────────────────────────────

type TriggerResponse struct {
	Generation uint64 `json:"generation" example:"3"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getAnalytics returns the current dashboard view without fetching.
// @Summary      Get the analytics dashboard
// @Tags         Analytics
// @Produce      json
// @Security     AdminToken
// @Success      200  {object}  dashboard.View
// @Failure      403  {object}  map[string]string
// @Router       /analytics [get]
func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.View())
}

// loadAnalytics fetches and aggregates again, from any state.
// @Summary      Load the analytics dashboard
// @Description  With async=true the load runs in the background and only its generation is returned.
// @Tags         Analytics
// @Produce      json
// @Security     AdminToken
// @Param        async  query     bool  false  "Return at once"
// @Success      200    {object}  dashboard.View
// @Success      202    {object}  TriggerResponse
// @Failure      403    {object}  map[string]string
// @Failure      503    {object}  map[string]string  "shutting down"
// @Router       /analytics/load [post]
func (h *Handler) loadAnalytics(w http.ResponseWriter, r *http.Request) {
	h.startLoad(w, r, false)
}

// refreshAnalytics reloads the dashboard from the ready or error state.
// @Summary      Refresh the analytics dashboard
// @Description  Not allowed while the dashboard is empty; use load instead.
// @Tags         Analytics
// @Produce      json
// @Security     AdminToken
// @Param        async  query     bool  false  "Return at once"
// @Success      200    {object}  dashboard.View
// @Success      202    {object}  TriggerResponse
// @Failure      403    {object}  map[string]string
// @Failure      409    {object}  map[string]string  "dashboard is empty"
// @Failure      503    {object}  map[string]string  "shutting down"
// @Router       /analytics/refresh [post]
func (h *Handler) refreshAnalytics(w http.ResponseWriter, r *http.Request) {
	h.startLoad(w, r, true)
}

func (h *Handler) startLoad(w http.ResponseWriter, r *http.Request, refresh bool) {
	ctx := r.Context()
	scope := source.ScopeFrom(ctx)

	async, _ := strconv.ParseBool(r.URL.Query().Get("async"))
	if async {
		gen, err := h.dashboard.Trigger(ctx, scope, refresh)
		if h.handleRefreshError(w, err) {
			return
		}
		respondJSON(w, http.StatusAccepted, TriggerResponse{Generation: gen})
		return
	}

	if !refresh {
		respondJSON(w, http.StatusOK, h.dashboard.Load(ctx, scope))
		return
	}
	view, err := h.dashboard.Refresh(ctx, scope)
	if h.handleRefreshError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) handleRefreshError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, dashboard.ErrRefreshNotAllowed) {
		respondError(w, http.StatusConflict, err.Error())
		return true
	}
	if errors.Is(err, dashboard.ErrClosed) {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return true
	}
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
