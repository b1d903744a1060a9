package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/surveyadmin/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportData struct {
	Version    string              `json:"version"`
	ExportedAt string              `json:"exported_at"`
	Questions  []question.Question `json:"questions"`
}

type ImportResult struct {
	QuestionsCreated int `json:"questions_created"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportAll downloads every question as JSON.
// @Summary      Export questions
// @Tags         Export
// @Produce      json
// @Security     AdminToken
// @Success      200  {object}  ExportData
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	questions, err := h.store.ListQuestions(r.Context())
	if err != nil {
		h.logger.Error("failed to load questions", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load questions")
		return
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Questions:  questions,
	}
	if exportData.Questions == nil {
		exportData.Questions = []question.Question{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=survey-export.json")
	json.NewEncoder(w).Encode(exportData)
}

// importAll creates the questions of an export file.
// @Summary      Import questions
// @Description  Imported questions are always created; counters and IDs are not carried over.
// @Tags         Export
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        body  body      ExportData  true  "Export file"
// @Success      201   {object}  ImportResult
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /import [post]
func (h *Handler) importAll(w http.ResponseWriter, r *http.Request) {
	var importData ExportData
	if !decodeJSON(w, r, &importData) {
		return
	}

	var b question.Batch
	for _, q := range importData.Questions {
		b.Create = append(b.Create, question.New(q.Text, q.Type, q.Category, q.Level))
		if q.Options != nil {
			b.Create[len(b.Create)-1].Options = q.Options
		}
	}

	saved, err := h.questions.SaveBatch(r.Context(), b)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.handleStoreError(w, err, "question")
		return
	}

	respondJSON(w, http.StatusCreated, ImportResult{QuestionsCreated: len(saved.Create)})
}
