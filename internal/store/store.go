package store

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/surveyadmin/backend/internal/domain/question"
)

var (
	ErrNotFound = errors.New("not found")
)

// Response is one respondent interaction with a question.
type Response struct {
	QuestionID string
	Skipped    bool
	IsCorrect  bool
}

// Store persists questions and the answers submitted for them.
type Store interface {
	ListQuestions(ctx context.Context) ([]question.Question, error)
	ListAnswers(ctx context.Context) ([]question.Answer, error)

	CreateQuestions(ctx context.Context, questions []question.Question) error
	UpdateQuestions(ctx context.Context, questions []question.Question) error
	DeleteQuestions(ctx context.Context, ids []string) error

	// RecordResponse bumps the question's answered or skipped counter and,
	// for answers, stores an Answer row.
	RecordResponse(ctx context.Context, r Response) (*question.Answer, error)

	Close() error
}

// LoadDataset reads questions and answers concurrently.
func LoadDataset(ctx context.Context, s Store) (question.Dataset, error) {
	var ds question.Dataset
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		questions, err := s.ListQuestions(gctx)
		if err != nil {
			return fmt.Errorf("list questions: %w", err)
		}
		ds.Questions = questions
		return nil
	})
	g.Go(func() error {
		answers, err := s.ListAnswers(gctx)
		if err != nil {
			return fmt.Errorf("list answers: %w", err)
		}
		ds.Answers = answers
		return nil
	})

	if err := g.Wait(); err != nil {
		return question.Dataset{}, err
	}
	if ds.Questions == nil {
		ds.Questions = []question.Question{}
	}
	if ds.Answers == nil {
		ds.Answers = []question.Answer{}
	}
	return ds, nil
}

// ApplyBatch runs a question builder batch: creates, then updates, then
// deletes. It stops at the first failing step.
func ApplyBatch(ctx context.Context, s Store, b question.Batch) error {
	if len(b.Create) > 0 {
		if err := s.CreateQuestions(ctx, b.Create); err != nil {
			return fmt.Errorf("create questions: %w", err)
		}
	}
	if len(b.Update) > 0 {
		if err := s.UpdateQuestions(ctx, b.Update); err != nil {
			return fmt.Errorf("update questions: %w", err)
		}
	}
	if len(b.Delete) > 0 {
		ids := make([]string, len(b.Delete))
		for i, q := range b.Delete {
			ids[i] = q.ID
		}
		if err := s.DeleteQuestions(ctx, ids); err != nil {
			return fmt.Errorf("delete questions: %w", err)
		}
	}
	return nil
}
