// Package source provides the data-fetch collaborator that supplies the
// analytics dashboard with questions and answers.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/surveyadmin/backend/internal/domain/question"
)

// Scope carries the caller's authorization capability into a fetch.
type Scope struct {
	Admin bool
}

type scopeKey struct{}

// WithScope stores the scope in ctx.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFrom returns the scope stored in ctx, or the zero (non-admin) scope.
func ScopeFrom(ctx context.Context) Scope {
	s, _ := ctx.Value(scopeKey{}).(Scope)
	return s
}

// Fetcher delivers every question and answer visible in the given scope.
type Fetcher interface {
	FetchAll(ctx context.Context, scope Scope) (question.Dataset, error)
}

// Kind classifies fetch failures.
type Kind int

const (
	KindOther    Kind = iota
	KindNotFound      // the collaborator has nothing to return
	KindEmpty         // the collaborator reported an empty question set
	KindNetwork       // the collaborator could not be reached
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindEmpty:
		return "empty"
	case KindNetwork:
		return "network"
	default:
		return "other"
	}
}

// Error is the structured error every Fetcher returns.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an *Error of the given kind.
func Errorf(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind of err. Errors that are not *Error are KindOther.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindOther
}

// SignalsEmpty reports whether err means "no data" rather than a failure.
func SignalsEmpty(err error) bool {
	k := KindOf(err)
	return k == KindNotFound || k == KindEmpty
}
