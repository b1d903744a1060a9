package source

import (
	"context"

	"github.com/surveyadmin/backend/internal/domain/question"
	"github.com/surveyadmin/backend/internal/store"
)

// StoreSource reads the dataset from the local store.
type StoreSource struct {
	store store.Store
}

var _ Fetcher = (*StoreSource)(nil)

func NewStoreSource(s store.Store) *StoreSource {
	return &StoreSource{store: s}
}

// FetchAll loads every question and answer. Answers are only visible in the
// admin scope. An empty store is not an error: the dashboard derives its empty
// state from the question count.
func (s *StoreSource) FetchAll(ctx context.Context, scope Scope) (question.Dataset, error) {
	ds, err := store.LoadDataset(ctx, s.store)
	if err != nil {
		return question.Dataset{}, Errorf(KindOther, err, "failed to load questions")
	}
	if !scope.Admin {
		ds.Answers = []question.Answer{}
	}
	return ds, nil
}
