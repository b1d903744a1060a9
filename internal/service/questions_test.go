package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/surveyadmin/backend/internal/domain/question"
	"github.com/surveyadmin/backend/internal/source"
	"github.com/surveyadmin/backend/internal/store"
)

type fakeReloader struct {
	calls  int
	scopes []source.Scope
}

func (f *fakeReloader) Trigger(_ context.Context, scope source.Scope, _ bool) (uint64, error) {
	f.calls++
	f.scopes = append(f.scopes, scope)
	return uint64(f.calls), nil
}

func newTestService(t *testing.T) (*QuestionService, store.Store, *fakeReloader) {
	t.Helper()
	s, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	r := &fakeReloader{}
	return NewQuestionService(s, r, zap.NewNop()), s, r
}

func TestSaveBatch_CreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	svc, s, r := newTestService(t)

	saved, err := svc.SaveBatch(ctx, question.Batch{Create: []question.Question{
		question.New("Where do you live?", "input", "Home", "beginner"),
		question.New("Pick a planet", "MCQ", "Space", question.LevelAdvanced),
		question.Placeholder(question.LevelIntermediate),
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(saved.Create) != 2 {
		t.Fatalf("expected placeholder to be dropped, got %d creates", len(saved.Create))
	}
	if saved.Create[0].Level != question.LevelBeginner || saved.Create[0].Type != question.TypeInput {
		t.Errorf("expected normalized level and type, got %+v", saved.Create[0])
	}
	if r.calls != 1 || !r.scopes[0].Admin {
		t.Errorf("expected one admin reload, got %d (%+v)", r.calls, r.scopes)
	}

	ws, err := svc.WorkingSet(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	beginner := ws.Questions(question.LevelBeginner)
	if len(beginner) != 1 || beginner[0].IsNew() {
		t.Fatalf("expected one persisted beginner question, got %+v", beginner)
	}

	if err := ws.Move(question.LevelBeginner, 0, question.LevelIntermediate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ws.Remove(question.LevelAdvanced, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SaveBatch(ctx, ws.Changes()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	questions, err := s.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 || questions[0].Level != question.LevelIntermediate {
		t.Errorf("expected only the moved question, got %+v", questions)
	}
	if r.calls != 2 {
		t.Errorf("expected a reload per saved batch, got %d", r.calls)
	}
}

func TestSaveBatch_EmptySkipsReload(t *testing.T) {
	svc, _, r := newTestService(t)

	_, err := svc.SaveBatch(context.Background(), question.Batch{
		Create: []question.Question{question.Placeholder(question.LevelBeginner)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.calls != 0 {
		t.Errorf("expected no reload, got %d", r.calls)
	}
}

func TestSaveBatch_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		batch question.Batch
		want  error
	}{
		{"update without id", question.Batch{Update: []question.Question{question.New("x", question.TypeInput, "", question.LevelBeginner)}}, ErrMissingID},
		{"delete without id", question.Batch{Delete: []question.Question{{Text: "x"}}}, ErrMissingID},
		{"unknown level", question.Batch{Create: []question.Question{question.New("x", question.TypeInput, "", "Expert")}}, question.ErrUnknownLevel},
		{"empty text", question.Batch{Update: []question.Question{{ID: "q1", Level: question.LevelBeginner}}}, question.ErrEmptyText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, r := newTestService(t)
			if _, err := svc.SaveBatch(context.Background(), tt.batch); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if r.calls != 0 {
				t.Error("expected no reload after a rejected batch")
			}
		})
	}
}

func TestRecordResponse(t *testing.T) {
	ctx := context.Background()
	svc, s, _ := newTestService(t)

	saved, err := svc.SaveBatch(ctx, question.Batch{Create: []question.Question{
		question.New("Where do you live?", question.TypeInput, "Home", question.LevelBeginner),
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := saved.Create[0].ID

	a, err := svc.RecordResponse(ctx, store.Response{QuestionID: id, IsCorrect: true})
	if err != nil || a == nil || !a.IsCorrect {
		t.Fatalf("expected a stored answer, got %+v (%v)", a, err)
	}
	if a, err := svc.RecordResponse(ctx, store.Response{QuestionID: id, Skipped: true}); err != nil || a != nil {
		t.Fatalf("expected no answer for a skip, got %+v (%v)", a, err)
	}

	questions, _ := s.ListQuestions(ctx)
	if questions[0].TimesAnswered != 1 || questions[0].TimesSkipped != 1 {
		t.Errorf("unexpected counters: %+v", questions[0])
	}

	if _, err := svc.RecordResponse(ctx, store.Response{QuestionID: "missing"}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEditOperations(t *testing.T) {
	ctx := context.Background()
	svc, s, r := newTestService(t)

	if _, err := svc.AddQuestion(ctx, question.New("First", question.TypeInput, "A", question.LevelBeginner)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.AddQuestion(ctx, question.New("Second", question.TypeInput, "A", question.LevelBeginner)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ws, err := svc.AddQuestion(ctx, question.New("Third", question.TypeMCQ, "B", question.LevelAdvanced))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if beginner := ws.Questions(question.LevelBeginner); len(beginner) != 2 || beginner[0].IsNew() {
		t.Fatalf("expected two persisted beginner questions, got %+v", beginner)
	}
	if inter := ws.Questions(question.LevelIntermediate); len(inter) != 1 || !inter[0].IsPlaceholder() {
		t.Errorf("expected a placeholder for the empty level, got %+v", inter)
	}

	// a level change sends the question to the end of its new level
	edited := question.New("First edited", question.TypeInput, "A", question.LevelAdvanced)
	ws, err = svc.UpdateQuestion(ctx, question.LevelBeginner, 0, edited)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	advanced := ws.Questions(question.LevelAdvanced)
	if len(advanced) != 2 || advanced[1].Text != "First edited" {
		t.Fatalf("expected edited question at the end of Advanced, got %+v", advanced)
	}

	ws, err = svc.MoveQuestion(ctx, question.LevelAdvanced, 0, question.LevelIntermediate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inter := ws.Questions(question.LevelIntermediate); len(inter) != 1 || inter[0].Text != "Third" {
		t.Errorf("expected Third in Intermediate, got %+v", inter)
	}

	ws, err = svc.RemoveQuestion(ctx, question.LevelBeginner, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if beginner := ws.Questions(question.LevelBeginner); len(beginner) != 1 || !beginner[0].IsPlaceholder() {
		t.Errorf("expected only a placeholder left in Beginner, got %+v", beginner)
	}

	questions, err := s.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("expected two stored questions, got %+v", questions)
	}
	if r.calls != 6 {
		t.Errorf("expected a reload per edit, got %d", r.calls)
	}
}

func TestEditOperations_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _, r := newTestService(t)

	if _, err := svc.RemoveQuestion(ctx, question.LevelBeginner, 5); !errors.Is(err, question.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := svc.MoveQuestion(ctx, "Expert", 0, question.LevelBeginner); !errors.Is(err, question.ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
	if _, err := svc.AddQuestion(ctx, question.New("  ", question.TypeInput, "", question.LevelBeginner)); err != nil {
		t.Errorf("expected a blank question to be kept as a placeholder, got %v", err)
	}
	if r.calls != 0 {
		t.Errorf("expected no reload when nothing was saved, got %d", r.calls)
	}
}
