// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/surveyadmin/backend/internal/dashboard"
	"github.com/surveyadmin/backend/internal/service"
	"github.com/surveyadmin/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	store     store.Store
	questions *service.QuestionService
	dashboard *dashboard.Engine
	logger    *zap.Logger
}

func NewHandler(s store.Store, qs *service.QuestionService, d *dashboard.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		store:     s,
		questions: qs,
		dashboard: d,
		logger:    logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

type validator interface {
	Validate() error
}

// decodeJSON decodes the request body into v. It writes a 400 and returns
// false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", zap.String("entity", entity), zap.Error(err))
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
