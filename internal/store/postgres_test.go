package store_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/surveyadmin/backend/internal/domain/question"
	"github.com/surveyadmin/backend/internal/store"
)

// Runs against a disposable database named by TEST_DATABASE_URL.
func newPostgresStore(t *testing.T) *store.PostgresStore {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	s, err := store.NewPostgres(ctx, dsn, store.PoolConfig{MaxConns: 4})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	questions, err := s.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	if err := s.DeleteQuestions(ctx, ids); err != nil {
		t.Fatalf("failed to reset store: %v", err)
	}
	return s
}

func TestPostgres_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newPostgresStore(t)

	questions := []question.Question{
		question.New("Favourite colour?", question.TypeInput, "Personal", question.LevelBeginner),
		question.New("Pick a planet", question.TypeMCQ, "Space", question.LevelAdvanced),
	}
	questions[0].Options = []question.AnswerOption{{Text: "Blue", IsCorrect: true}}
	if err := s.CreateQuestions(ctx, questions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	answer, err := s.RecordResponse(ctx, store.Response{QuestionID: questions[0].ID, IsCorrect: true})
	if err != nil || answer == nil || answer.CreatedAt.IsZero() {
		t.Fatalf("expected a stored answer, got %+v (%v)", answer, err)
	}
	if _, err := s.RecordResponse(ctx, store.Response{QuestionID: questions[1].ID, Skipped: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	questions[0].Level = question.LevelAdvanced
	if err := s.UpdateQuestions(ctx, questions[:1]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ds, err := store.LoadDataset(ctx, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Questions) != 2 || len(ds.Answers) != 1 {
		t.Fatalf("unexpected dataset: %+v", ds)
	}
	// the re-levelled question moves behind the other one
	if ds.Questions[1].ID != questions[0].ID || ds.Questions[1].TimesAnswered != 1 {
		t.Errorf("unexpected order after update: %+v", ds.Questions)
	}
	if len(ds.Questions[1].Options) != 1 || !ds.Questions[1].Options[0].IsCorrect {
		t.Errorf("options not persisted: %+v", ds.Questions[1].Options)
	}
	if ds.Questions[0].TimesSkipped != 1 {
		t.Errorf("expected skip counter, got %+v", ds.Questions[0])
	}

	if err := s.DeleteQuestions(ctx, []string{"missing"}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
