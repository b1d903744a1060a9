package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/surveyadmin/backend/internal/domain/question"
	"github.com/surveyadmin/backend/internal/service"
	"github.com/surveyadmin/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type QuestionPayload struct {
	ID       string                  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Text     string                  `json:"text" example:"How often do you travel?"`
	Type     string                  `json:"type" example:"MCQ"`
	Category string                  `json:"category" example:"Travel"`
	Level    string                  `json:"level" example:"Beginner"`
	Options  []question.AnswerOption `json:"options"`
}

func (p QuestionPayload) toQuestion() question.Question {
	q := question.New(p.Text, question.Type(p.Type), p.Category, question.Level(p.Level))
	q.ID = p.ID
	if p.Options != nil {
		q.Options = p.Options
	}
	return q
}

type SaveBatchRequest struct {
	Create []QuestionPayload `json:"create"`
	Update []QuestionPayload `json:"update"`
	Delete []string          `json:"delete"`
}

func (r *SaveBatchRequest) Validate() error {
	if len(r.Create) == 0 && len(r.Update) == 0 && len(r.Delete) == 0 {
		return errors.New("batch is empty")
	}
	return nil
}

func (r *SaveBatchRequest) toBatch() question.Batch {
	var b question.Batch
	for _, p := range r.Create {
		b.Create = append(b.Create, p.toQuestion())
	}
	for _, p := range r.Update {
		b.Update = append(b.Update, p.toQuestion())
	}
	for _, id := range r.Delete {
		b.Delete = append(b.Delete, question.Question{ID: id})
	}
	return b
}

type LevelGroup struct {
	Level     question.Level      `json:"level" example:"Beginner"`
	Questions []question.Question `json:"questions"`
}

type WorkingSetResponse struct {
	Levels []LevelGroup `json:"levels"`
}

func newWorkingSetResponse(ws *question.WorkingSet) WorkingSetResponse {
	resp := WorkingSetResponse{Levels: make([]LevelGroup, 0, len(question.Levels()))}
	for _, lvl := range question.Levels() {
		resp.Levels = append(resp.Levels, LevelGroup{Level: lvl, Questions: ws.Questions(lvl)})
	}
	return resp
}

type MoveQuestionRequest struct {
	To string `json:"to" example:"Advanced"`
}

func (r *MoveQuestionRequest) Validate() error {
	if !question.Level(r.To).Known() {
		return fmt.Errorf("%w: %q", question.ErrUnknownLevel, r.To)
	}
	return nil
}

type RecordResponseRequest struct {
	Skipped   bool `json:"skipped"`
	IsCorrect bool `json:"is_correct"`
}

func (r *RecordResponseRequest) Validate() error {
	if r.Skipped && r.IsCorrect {
		return errors.New("a skipped response cannot be correct")
	}
	return nil
}

type RecordResponseResponse struct {
	QuestionID string           `json:"question_id"`
	Skipped    bool             `json:"skipped"`
	Answer     *question.Answer `json:"answer,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getWorkingSet returns the editable questions grouped by level.
// @Summary      Get the question working set
// @Description  Every level holds at least one entry; empty levels carry a placeholder.
// @Tags         Questions
// @Produce      json
// @Security     AdminToken
// @Success      200  {object}  WorkingSetResponse
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /questions [get]
func (h *Handler) getWorkingSet(w http.ResponseWriter, r *http.Request) {
	ws, err := h.questions.WorkingSet(r.Context())
	if h.handleStoreError(w, err, "questions") {
		return
	}
	respondJSON(w, http.StatusOK, newWorkingSetResponse(ws))
}

// addQuestion appends a question to the end of its level.
// @Summary      Add a question
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        body  body      QuestionPayload  true  "Question to add"
// @Success      201   {object}  WorkingSetResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /questions [post]
func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionPayload
	if !decodeJSON(w, r, &req) {
		return
	}

	ws, err := h.questions.AddQuestion(r.Context(), req.toQuestion())
	if h.handleEditError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, newWorkingSetResponse(ws))
}

// updateQuestion replaces the question at a position in the working set.
// @Summary      Update a question
// @Description  A level change moves the question to the end of its new level.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        level  path      string           true  "Current level"
// @Param        index  path      int              true  "Position within the level"
// @Param        body   body      QuestionPayload  true  "New content"
// @Success      200    {object}  WorkingSetResponse
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string  "no question at that position"
// @Failure      500    {object}  map[string]string
// @Router       /questions/{level}/{index} [put]
func (h *Handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	level, index, ok := parsePosition(w, r)
	if !ok {
		return
	}
	var req QuestionPayload
	if !decodeJSON(w, r, &req) {
		return
	}

	q := req.toQuestion()
	if q.Level == "" {
		q.Level = level
	}
	ws, err := h.questions.UpdateQuestion(r.Context(), level, index, q)
	if h.handleEditError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, newWorkingSetResponse(ws))
}

// moveQuestion sends the question at a position to the end of another level.
// @Summary      Move a question to another level
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        level  path      string               true  "Current level"
// @Param        index  path      int                  true  "Position within the level"
// @Param        body   body      MoveQuestionRequest  true  "Target level"
// @Success      200    {object}  WorkingSetResponse
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string  "no question at that position"
// @Failure      500    {object}  map[string]string
// @Router       /questions/{level}/{index}/move [put]
func (h *Handler) moveQuestion(w http.ResponseWriter, r *http.Request) {
	level, index, ok := parsePosition(w, r)
	if !ok {
		return
	}
	var req MoveQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ws, err := h.questions.MoveQuestion(r.Context(), level, index, question.Level(req.To))
	if h.handleEditError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, newWorkingSetResponse(ws))
}

// removeQuestion deletes the question at a position in the working set.
// @Summary      Remove a question
// @Tags         Questions
// @Produce      json
// @Security     AdminToken
// @Param        level  path      string  true  "Level"
// @Param        index  path      int     true  "Position within the level"
// @Success      200    {object}  WorkingSetResponse
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string  "no question at that position"
// @Failure      500    {object}  map[string]string
// @Router       /questions/{level}/{index} [delete]
func (h *Handler) removeQuestion(w http.ResponseWriter, r *http.Request) {
	level, index, ok := parsePosition(w, r)
	if !ok {
		return
	}

	ws, err := h.questions.RemoveQuestion(r.Context(), level, index)
	if h.handleEditError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, newWorkingSetResponse(ws))
}

// saveBatch persists raw create, update and delete lists.
// @Summary      Save a question batch
// @Description  Creates run first, then updates, then deletes. Placeholders in create are ignored.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        body  body      SaveBatchRequest  true  "Batch to save"
// @Success      200   {object}  question.Batch
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "question not found"
// @Failure      500   {object}  map[string]string
// @Router       /questions/batch [post]
func (h *Handler) saveBatch(w http.ResponseWriter, r *http.Request) {
	var req SaveBatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	saved, err := h.questions.SaveBatch(r.Context(), req.toBatch())
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.handleStoreError(w, err, "question")
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// recordResponse stores one respondent answer or skip.
// @Summary      Record a response
// @Description  Public endpoint. A skip increments the skip counter and stores no answer.
// @Tags         Responses
// @Accept       json
// @Produce      json
// @Param        questionID  path      string                 true  "Question ID"
// @Param        body        body      RecordResponseRequest  true  "Response"
// @Success      201         {object}  RecordResponseResponse
// @Failure      400         {object}  map[string]string
// @Failure      404         {object}  map[string]string  "question not found"
// @Failure      500         {object}  map[string]string
// @Router       /questions/{questionID}/responses [post]
func (h *Handler) recordResponse(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionID")

	var req RecordResponseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	answer, err := h.questions.RecordResponse(r.Context(), store.Response{
		QuestionID: questionID,
		Skipped:    req.Skipped,
		IsCorrect:  req.IsCorrect,
	})
	if h.handleStoreError(w, err, "question") {
		return
	}

	respondJSON(w, http.StatusCreated, RecordResponseResponse{
		QuestionID: questionID,
		Skipped:    req.Skipped,
		Answer:     answer,
	})
}

// parsePosition reads the {level} and {index} path values. It writes a 400
// and returns false when either is invalid.
func parsePosition(w http.ResponseWriter, r *http.Request) (question.Level, int, bool) {
	level := question.ParseLevel(r.PathValue("level"))
	if level == question.LevelUnknown {
		respondError(w, http.StatusBadRequest, "unknown question level")
		return level, 0, false
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid question index")
		return level, 0, false
	}
	return level, index, true
}

func (h *Handler) handleEditError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, question.ErrOutOfRange):
		respondError(w, http.StatusNotFound, "question not found")
		return true
	case isValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
		return true
	}
	return h.handleStoreError(w, err, "question")
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrMissingID) ||
		errors.Is(err, question.ErrEmptyText) ||
		errors.Is(err, question.ErrUnknownLevel)
}
