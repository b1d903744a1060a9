// internal/service/questions.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/surveyadmin/backend/internal/domain/question"
	"github.com/surveyadmin/backend/internal/source"
	"github.com/surveyadmin/backend/internal/store"
)

var ErrMissingID = errors.New("question id is required for update and delete")

// Reloader restarts the dashboard load in the background.
type Reloader interface {
	Trigger(ctx context.Context, scope source.Scope, refresh bool) (uint64, error)
}

// QuestionService applies question builder batches and records responses,
// keeping the dashboard in step with the store.
type QuestionService struct {
	store     store.Store
	dashboard Reloader
	logger    *zap.Logger

	// batches run one at a time so create/update/delete never interleave
	mu sync.Mutex
}

func NewQuestionService(s store.Store, r Reloader, logger *zap.Logger) *QuestionService {
	return &QuestionService{
		store:     s,
		dashboard: r,
		logger:    logger,
	}
}

// WorkingSet loads every question and groups it by level for editing.
func (qs *QuestionService) WorkingSet(ctx context.Context) (*question.WorkingSet, error) {
	questions, err := qs.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return question.NewWorkingSet(questions), nil
}

// SaveBatch persists a builder batch (creates, then updates, then deletes)
// and reloads the dashboard. Placeholder entries in Create are ignored.
func (qs *QuestionService) SaveBatch(ctx context.Context, b question.Batch) (question.Batch, error) {
	b, err := prepare(b)
	if err != nil {
		return question.Batch{}, err
	}
	if b.Empty() {
		return b, nil
	}

	qs.mu.Lock()
	err = qs.apply(ctx, b)
	qs.mu.Unlock()
	if err != nil {
		return question.Batch{}, err
	}
	qs.reload(ctx)
	return b, nil
}

// AddQuestion appends q to the end of its level.
func (qs *QuestionService) AddQuestion(ctx context.Context, q question.Question) (*question.WorkingSet, error) {
	q.ID = ""
	return qs.edit(ctx, func(ws *question.WorkingSet) error {
		return ws.Add(q)
	})
}

// UpdateQuestion replaces the content of the entry at index. A level change
// moves the question to the end of its new level.
func (qs *QuestionService) UpdateQuestion(ctx context.Context, level question.Level, index int, q question.Question) (*question.WorkingSet, error) {
	return qs.edit(ctx, func(ws *question.WorkingSet) error {
		return ws.Update(level, index, q)
	})
}

// MoveQuestion moves the entry at index to the end of level to.
func (qs *QuestionService) MoveQuestion(ctx context.Context, from question.Level, index int, to question.Level) (*question.WorkingSet, error) {
	return qs.edit(ctx, func(ws *question.WorkingSet) error {
		return ws.Move(from, index, to)
	})
}

// RemoveQuestion deletes the entry at index. Removing a placeholder is a no-op.
func (qs *QuestionService) RemoveQuestion(ctx context.Context, level question.Level, index int) (*question.WorkingSet, error) {
	return qs.edit(ctx, func(ws *question.WorkingSet) error {
		return ws.Remove(level, index)
	})
}

// edit loads the working set, applies fn, saves the resulting changes and
// returns the working set as stored.
func (qs *QuestionService) edit(ctx context.Context, fn func(ws *question.WorkingSet) error) (*question.WorkingSet, error) {
	qs.mu.Lock()
	ws, err := qs.WorkingSet(ctx)
	if err != nil {
		qs.mu.Unlock()
		return nil, err
	}
	if err := fn(ws); err != nil {
		qs.mu.Unlock()
		return nil, err
	}

	b, err := prepare(ws.Changes())
	if err == nil && !b.Empty() {
		err = qs.apply(ctx, b)
	}
	qs.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if !b.Empty() {
		qs.reload(ctx)
	}
	return qs.WorkingSet(ctx)
}

// apply writes a prepared batch. Callers hold mu.
func (qs *QuestionService) apply(ctx context.Context, b question.Batch) error {
	if err := store.ApplyBatch(ctx, qs.store, b); err != nil {
		qs.logger.Error("failed to save question batch",
			zap.Int("create", len(b.Create)),
			zap.Int("update", len(b.Update)),
			zap.Int("delete", len(b.Delete)),
			zap.Error(err),
		)
		return err
	}
	qs.logger.Info("question batch saved",
		zap.Int("create", len(b.Create)),
		zap.Int("update", len(b.Update)),
		zap.Int("delete", len(b.Delete)),
	)
	return nil
}

// RecordResponse stores one answer or skip for a question.
func (qs *QuestionService) RecordResponse(ctx context.Context, r store.Response) (*question.Answer, error) {
	a, err := qs.store.RecordResponse(ctx, r)
	if err != nil {
		return nil, err
	}
	qs.logger.Debug("response recorded",
		zap.String("question_id", r.QuestionID),
		zap.Bool("skipped", r.Skipped),
	)
	return a, nil
}

// reload is fire-and-forget; the dashboard reports its own failures.
func (qs *QuestionService) reload(ctx context.Context) {
	if qs.dashboard == nil {
		return
	}
	if _, err := qs.dashboard.Trigger(ctx, source.Scope{Admin: true}, false); err != nil {
		qs.logger.Warn("dashboard reload not started", zap.Error(err))
	}
}

func prepare(b question.Batch) (question.Batch, error) {
	out := question.Batch{
		Create: make([]question.Question, 0, len(b.Create)),
		Update: make([]question.Question, 0, len(b.Update)),
		Delete: make([]question.Question, 0, len(b.Delete)),
	}

	for _, q := range b.Create {
		if q.IsPlaceholder() {
			continue
		}
		q, err := normalize(q)
		if err != nil {
			return question.Batch{}, err
		}
		q.ID = ""
		out.Create = append(out.Create, q)
	}
	for _, q := range b.Update {
		if q.IsNew() {
			return question.Batch{}, ErrMissingID
		}
		q, err := normalize(q)
		if err != nil {
			return question.Batch{}, err
		}
		out.Update = append(out.Update, q)
	}
	for _, q := range b.Delete {
		if q.IsNew() {
			return question.Batch{}, ErrMissingID
		}
		out.Delete = append(out.Delete, q)
	}
	return out, nil
}

func normalize(q question.Question) (question.Question, error) {
	if err := q.Validate(); err != nil {
		return q, err
	}
	lvl := question.ParseLevel(string(q.Level))
	if lvl == question.LevelUnknown {
		return q, fmt.Errorf("%w: %q", question.ErrUnknownLevel, q.Level)
	}
	q.Level = lvl
	if t := question.ParseType(string(q.Type)); t != question.TypeUnknown {
		q.Type = t
	} else {
		q.Type = question.TypeInput
	}
	if q.Options == nil {
		q.Options = []question.AnswerOption{}
	}
	return q, nil
}
