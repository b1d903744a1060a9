// Package dashboard drives the analytics view: it fetches data, runs the
// aggregation and exposes the result through a small state machine.
//
//	loading ──▶ empty | error | ready
//	ready | error ──refresh──▶ loading
//
// Load (a mount) re-enters loading from any state. Only the outcome of the
// most recently started load or refresh is ever applied.
package dashboard

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/surveyadmin/backend/internal/analytics"
	"github.com/surveyadmin/backend/internal/domain/question"
	"github.com/surveyadmin/backend/internal/source"
	"github.com/surveyadmin/backend/internal/worker"
)

type State string

const (
	StateLoading State = "loading"
	StateEmpty   State = "empty"
	StateError   State = "error"
	StateReady   State = "ready"
)

var (
	ErrRefreshNotAllowed = errors.New("refresh is only allowed from the ready or error state")
	ErrClosed            = errors.New("dashboard engine is closed")
)

type EmptyNotice struct {
	Message     string `json:"message"`
	ActionLabel string `json:"action_label"`
	ActionURL   string `json:"action_url"`
}

type ErrorNotice struct {
	Message string   `json:"message"`
	Kind    string   `json:"kind"`
	Action  string   `json:"action"`
	Hints   []string `json:"hints,omitempty"`
}

// View is an immutable snapshot of the dashboard.
type View struct {
	State      State     `json:"state"`
	Generation uint64    `json:"generation"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Busy is set only while loading; the UI shows a single indicator for it.
	Busy bool `json:"busy"`

	Totals *Totals      `json:"totals,omitempty"`
	Charts *Charts      `json:"charts,omitempty"`
	Tables *Tables      `json:"tables,omitempty"`
	Empty  *EmptyNotice `json:"empty,omitempty"`
	Error  *ErrorNotice `json:"error,omitempty"`

	Summary *analytics.Summary `json:"-"`
}

type Config struct {
	Analytics    analytics.Options
	CreateURL    string        // where the empty state sends admins to add questions
	Workers      int           // fetch workers for Trigger
	FetchTimeout time.Duration // upper bound on one fetch; zero means none
}

func DefaultConfig() Config {
	return Config{
		Analytics:    analytics.DefaultOptions(),
		CreateURL:    "/questions",
		Workers:      2,
		FetchTimeout: 30 * time.Second,
	}
}

type outcome struct {
	gen uint64
	ds  question.Dataset
	err error
}

// Engine owns the single view-state object of the dashboard.
type Engine struct {
	fetcher source.Fetcher
	cfg     Config
	logger  *zap.Logger
	now     func() time.Time
	pool    *worker.Pool[outcome]

	// submitMu guards closed and every Submit to pool
	submitMu sync.Mutex
	closed   bool

	mu   sync.RWMutex
	gen  uint64
	view View
}

func NewEngine(f source.Fetcher, cfg Config, logger *zap.Logger) *Engine {
	e := &Engine{
		fetcher: f,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
		pool:    worker.NewPool[outcome](cfg.Workers, 16),
	}
	e.view = View{State: StateLoading, Busy: true, UpdatedAt: e.now().UTC()}
	return e
}

// View returns the current snapshot.
func (e *Engine) View() View {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.view
}

// Load fetches and aggregates synchronously, entering loading from any state.
func (e *Engine) Load(ctx context.Context, scope source.Scope) View {
	gen, _ := e.begin(false)
	return e.fetchAndApply(ctx, gen, scope)
}

// Refresh is Load restricted to the ready and error states. Overlapping
// refreshes are allowed; the latest one wins.
func (e *Engine) Refresh(ctx context.Context, scope source.Scope) (View, error) {
	gen, err := e.begin(true)
	if err != nil {
		return e.View(), err
	}
	return e.fetchAndApply(ctx, gen, scope), nil
}

// Trigger starts a load (or a refresh) on the worker pool and returns its
// generation without waiting. Run must be draining results.
func (e *Engine) Trigger(ctx context.Context, scope source.Scope, refresh bool) (uint64, error) {
	e.submitMu.Lock()
	defer e.submitMu.Unlock()
	if e.closed {
		return 0, ErrClosed
	}

	gen, err := e.begin(refresh)
	if err != nil {
		return 0, err
	}
	e.pool.Submit(strconv.FormatUint(gen, 10), func() outcome {
		return e.fetch(ctx, gen, scope)
	})
	return gen, nil
}

// Run applies results of triggered fetches until ctx is done or the engine
// is closed.
func (e *Engine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case res, ok := <-e.pool.Results():
			if !ok {
				return
			}
			e.apply(res.Output)
		}
	}
}

// Close stops the fetch workers. Trigger fails with ErrClosed afterwards;
// Load and Refresh keep working.
func (e *Engine) Close() {
	e.submitMu.Lock()
	defer e.submitMu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.pool.Close()
}

func (e *Engine) fetchAndApply(ctx context.Context, gen uint64, scope source.Scope) View {
	e.apply(e.fetch(ctx, gen, scope))
	return e.View()
}

// fetch runs detached from ctx: the view is shared, so one caller going away
// must not turn it into an error for everyone else.
func (e *Engine) fetch(ctx context.Context, gen uint64, scope source.Scope) outcome {
	fetchCtx := context.WithoutCancel(ctx)
	if e.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(fetchCtx, e.cfg.FetchTimeout)
		defer cancel()
	}
	ds, err := e.fetcher.FetchAll(fetchCtx, scope)
	return outcome{gen: gen, ds: ds, err: err}
}

func (e *Engine) begin(refresh bool) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if refresh && e.view.State == StateEmpty {
		return 0, ErrRefreshNotAllowed
	}
	e.gen++
	e.view = View{
		State:      StateLoading,
		Generation: e.gen,
		UpdatedAt:  e.now().UTC(),
		Busy:       true,
	}
	return e.gen, nil
}

// apply installs the outcome unless a newer load has started since.
func (e *Engine) apply(o outcome) bool {
	next := e.build(o)

	e.mu.Lock()
	defer e.mu.Unlock()
	if o.gen != e.gen {
		e.logger.Debug("discarding stale fetch result",
			zap.Uint64("generation", o.gen),
			zap.Uint64("latest", e.gen),
		)
		return false
	}
	e.view = next
	return true
}

func (e *Engine) build(o outcome) View {
	v := View{Generation: o.gen, UpdatedAt: e.now().UTC()}

	switch {
	case o.err != nil && source.SignalsEmpty(o.err):
		v.State = StateEmpty
		v.Empty = e.emptyNotice()
	case o.err != nil:
		e.logger.Warn("analytics fetch failed",
			zap.Uint64("generation", o.gen),
			zap.Stringer("kind", source.KindOf(o.err)),
			zap.Error(o.err),
		)
		v.State = StateError
		v.Error = errorNotice(o.err)
	case len(o.ds.Questions) == 0:
		v.State = StateEmpty
		v.Empty = e.emptyNotice()
	default:
		summary := analytics.Compute(o.ds, e.cfg.Analytics)
		totals, charts, tables := Present(summary, o.ds.Questions)
		v.State = StateReady
		v.Summary = &summary
		v.Totals = &totals
		v.Charts = &charts
		v.Tables = &tables
	}
	return v
}

func (e *Engine) emptyNotice() *EmptyNotice {
	return &EmptyNotice{
		Message:     "There are no survey questions yet. Create some questions to start collecting analytics.",
		ActionLabel: "Create questions",
		ActionURL:   e.cfg.CreateURL,
	}
}

var networkHints = []string{
	"Check that the survey API is running.",
	"Check the configured survey API address.",
	"Check your network connection, then retry.",
}

func errorNotice(err error) *ErrorNotice {
	kind := source.KindOf(err)
	n := &ErrorNotice{
		Message: err.Error(),
		Kind:    kind.String(),
		Action:  "Retry",
	}
	if kind == source.KindNetwork {
		n.Hints = append([]string(nil), networkHints...)
	}
	return n
}
