package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/surveyadmin/backend/internal/domain/question"
	"github.com/surveyadmin/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndListQuestions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	questions := []question.Question{
		question.New("Favourite colour?", question.TypeInput, "Personal", question.LevelBeginner),
		question.New("Pick a planet", question.TypeMCQ, "Space", question.LevelAdvanced),
	}
	questions[0].Options = []question.AnswerOption{{Text: "Blue", IsCorrect: true}, {Text: "Red"}}

	if err := s.CreateQuestions(ctx, questions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].ID == "" || questions[1].ID == "" {
		t.Fatal("expected IDs to be assigned")
	}

	listed, err := s.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(listed))
	}
	if listed[0].Text != "Favourite colour?" || listed[1].Text != "Pick a planet" {
		t.Errorf("expected insertion order, got %q, %q", listed[0].Text, listed[1].Text)
	}
	if len(listed[0].Options) != 2 || !listed[0].Options[0].IsCorrect || listed[0].Options[1].IsCorrect {
		t.Errorf("unexpected options: %+v", listed[0].Options)
	}
	if listed[1].Options == nil {
		t.Error("expected empty option list, got nil")
	}
}

func TestUpdateQuestions_LevelChangeMovesToEnd(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	questions := []question.Question{
		question.New("A", question.TypeInput, "", question.LevelBeginner),
		question.New("B", question.TypeInput, "", question.LevelBeginner),
	}
	if err := s.CreateQuestions(ctx, questions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	moved := questions[0]
	moved.Level = question.LevelAdvanced
	moved.Text = "A edited"
	if err := s.UpdateQuestions(ctx, []question.Question{moved}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed, err := s.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listed[0].Text != "B" || listed[1].Text != "A edited" {
		t.Errorf("expected moved question last, got %q, %q", listed[0].Text, listed[1].Text)
	}
	if listed[1].Level != question.LevelAdvanced {
		t.Errorf("expected level Advanced, got %q", listed[1].Level)
	}
}

func TestUpdateQuestions_NotFound(t *testing.T) {
	s := newTestStore(t)

	missing := question.New("ghost", question.TypeInput, "", question.LevelBeginner)
	missing.ID = "does-not-exist"

	err := s.UpdateQuestions(context.Background(), []question.Question{missing})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordResponse(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	questions := []question.Question{question.New("Q", question.TypeInput, "", question.LevelBeginner)}
	if err := s.CreateQuestions(ctx, questions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	qid := questions[0].ID

	answer, err := s.RecordResponse(ctx, store.Response{QuestionID: qid, IsCorrect: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer == nil || answer.QuestionID != qid || !answer.IsCorrect {
		t.Errorf("unexpected answer: %+v", answer)
	}

	skipped, err := s.RecordResponse(ctx, store.Response{QuestionID: qid, Skipped: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != nil {
		t.Error("expected no answer row for a skip")
	}

	ds, err := store.LoadDataset(ctx, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Questions[0].TimesAnswered != 1 || ds.Questions[0].TimesSkipped != 1 {
		t.Errorf("expected 1/1, got %d/%d", ds.Questions[0].TimesAnswered, ds.Questions[0].TimesSkipped)
	}
	if len(ds.Answers) != 1 || !ds.Answers[0].CreatedAt.Equal(answer.CreatedAt) {
		t.Errorf("unexpected answers: %+v", ds.Answers)
	}

	_, err = s.RecordResponse(ctx, store.Response{QuestionID: "nope"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyBatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	existing := []question.Question{
		question.New("Keep", question.TypeInput, "", question.LevelBeginner),
		question.New("Drop", question.TypeInput, "", question.LevelBeginner),
	}
	if err := s.CreateQuestions(ctx, existing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.RecordResponse(ctx, store.Response{QuestionID: existing[1].ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	keep := existing[0]
	keep.Category = "Updated"
	batch := question.Batch{
		Create: []question.Question{question.New("Fresh", question.TypeMCQ, "", question.LevelIntermediate)},
		Update: []question.Question{keep},
		Delete: []question.Question{existing[1]},
	}
	if err := store.ApplyBatch(ctx, s, batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ds, err := store.LoadDataset(ctx, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(ds.Questions))
	}
	if ds.Questions[0].Category != "Updated" || ds.Questions[1].Text != "Fresh" {
		t.Errorf("unexpected questions: %+v", ds.Questions)
	}
	if len(ds.Answers) != 0 {
		t.Errorf("expected answers of deleted question to be removed, got %d", len(ds.Answers))
	}
}

func TestDeleteQuestions_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteQuestions(context.Background(), []string{"missing"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadDataset_Empty(t *testing.T) {
	ds, err := store.LoadDataset(context.Background(), newTestStore(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Questions == nil || ds.Answers == nil || len(ds.Questions) != 0 {
		t.Errorf("expected empty, non-nil dataset, got %+v", ds)
	}
}
