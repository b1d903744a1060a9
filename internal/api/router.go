// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /health", h.health)

	// Analytics
	mux.HandleFunc("GET /analytics", RequireAdmin(h.getAnalytics))
	mux.HandleFunc("POST /analytics/load", RequireAdmin(h.loadAnalytics))
	mux.HandleFunc("POST /analytics/refresh", RequireAdmin(h.refreshAnalytics))

	// Question builder
	mux.HandleFunc("GET /questions", RequireAdmin(h.getWorkingSet))
	mux.HandleFunc("POST /questions", RequireAdmin(h.addQuestion))
	mux.HandleFunc("PUT /questions/{level}/{index}", RequireAdmin(h.updateQuestion))
	mux.HandleFunc("DELETE /questions/{level}/{index}", RequireAdmin(h.removeQuestion))
	mux.HandleFunc("PUT /questions/{level}/{index}/move", RequireAdmin(h.moveQuestion))
	mux.HandleFunc("POST /questions/batch", RequireAdmin(h.saveBatch))

	// Respondents
	mux.HandleFunc("POST /questions/{questionID}/responses", h.recordResponse)

	// Export / Import
	mux.HandleFunc("GET /export", RequireAdmin(h.exportAll))
	mux.HandleFunc("POST /import", RequireAdmin(h.importAll))
}

// health reports that the server is up.
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
