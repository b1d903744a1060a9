package question

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLevel = errors.New("unknown question level")
	ErrOutOfRange   = errors.New("question index out of range")
)

// Batch is a set of persistence operations produced by the question builder.
type Batch struct {
	Create []Question `json:"create"`
	Update []Question `json:"update"`
	Delete []Question `json:"delete"`
}

// Empty reports whether the batch carries no operations.
func (b Batch) Empty() bool {
	return len(b.Create) == 0 && len(b.Update) == 0 && len(b.Delete) == 0
}

// WorkingSet is the editable set of questions grouped by level.
// Every level always holds at least one entry: a placeholder question is
// synthesized for levels that would otherwise be empty.
type WorkingSet struct {
	levels  map[Level][]Question
	removed []Question
}

// NewWorkingSet groups questions by level, keeping their relative order.
// Questions with an unrecognized level are left out of the working set.
func NewWorkingSet(questions []Question) *WorkingSet {
	ws := &WorkingSet{levels: make(map[Level][]Question, len(Levels()))}
	for _, q := range questions {
		lvl := ParseLevel(string(q.Level))
		if lvl == LevelUnknown {
			continue
		}
		q.Level = lvl
		ws.levels[lvl] = append(ws.levels[lvl], q)
	}
	ws.ensureNonEmpty()
	return ws
}

// Placeholder returns the empty question synthesized for a level.
func Placeholder(level Level) Question {
	return New("", TypeInput, "", level)
}

// Questions returns a copy of the entries for one level.
func (ws *WorkingSet) Questions(level Level) []Question {
	entries := ws.levels[ParseLevel(string(level))]
	out := make([]Question, len(entries))
	copy(out, entries)
	return out
}

// ByLevel returns a copy of every level's entries in the fixed level order.
func (ws *WorkingSet) ByLevel() map[Level][]Question {
	out := make(map[Level][]Question, len(Levels()))
	for _, lvl := range Levels() {
		out[lvl] = ws.Questions(lvl)
	}
	return out
}

// Add appends q to the end of its level. A lone placeholder in that level is
// replaced.
func (ws *WorkingSet) Add(q Question) error {
	lvl := ParseLevel(string(q.Level))
	if lvl == LevelUnknown {
		return fmt.Errorf("add question: %w: %q", ErrUnknownLevel, q.Level)
	}
	q.Level = lvl
	if q.Options == nil {
		q.Options = []AnswerOption{}
	}
	ws.levels[lvl] = append(ws.withoutPlaceholders(lvl), q)
	ws.ensureNonEmpty()
	return nil
}

// Update replaces the content of the entry at index. The entry keeps its ID
// and counters. If the new value carries a different level, the question is
// moved to the end of that level.
func (ws *WorkingSet) Update(level Level, index int, q Question) error {
	lvl, err := ws.locate(level, index)
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	target := ParseLevel(string(q.Level))
	if target == LevelUnknown {
		return fmt.Errorf("update question: %w: %q", ErrUnknownLevel, q.Level)
	}

	prev := ws.levels[lvl][index]
	q.ID = prev.ID
	q.TimesAnswered = prev.TimesAnswered
	q.TimesSkipped = prev.TimesSkipped
	q.Level = lvl
	if q.Options == nil {
		q.Options = []AnswerOption{}
	}
	ws.levels[lvl][index] = q
	if target == lvl {
		return nil
	}
	return ws.Move(lvl, index, target)
}

// Move removes the entry at index from its level and appends it to the end of
// level to. The question loses its position.
func (ws *WorkingSet) Move(from Level, index int, to Level) error {
	lvl, err := ws.locate(from, index)
	if err != nil {
		return fmt.Errorf("move question: %w", err)
	}
	target := ParseLevel(string(to))
	if target == LevelUnknown {
		return fmt.Errorf("move question: %w: %q", ErrUnknownLevel, to)
	}

	q := ws.levels[lvl][index]
	ws.levels[lvl] = append(ws.levels[lvl][:index:index], ws.levels[lvl][index+1:]...)
	q.Level = target
	ws.levels[target] = append(ws.withoutPlaceholders(target), q)
	ws.ensureNonEmpty()
	return nil
}

// Remove deletes the entry at index. Persisted questions are remembered so
// Changes can emit a delete for them.
func (ws *WorkingSet) Remove(level Level, index int) error {
	lvl, err := ws.locate(level, index)
	if err != nil {
		return fmt.Errorf("remove question: %w", err)
	}
	q := ws.levels[lvl][index]
	ws.levels[lvl] = append(ws.levels[lvl][:index:index], ws.levels[lvl][index+1:]...)
	if !q.IsNew() {
		ws.removed = append(ws.removed, q)
	}
	ws.ensureNonEmpty()
	return nil
}

// Changes builds the persistence batch for the current working set.
// Placeholders are never persisted.
func (ws *WorkingSet) Changes() Batch {
	var b Batch
	for _, lvl := range Levels() {
		for _, q := range ws.levels[lvl] {
			switch {
			case q.IsPlaceholder():
			case q.IsNew():
				b.Create = append(b.Create, q)
			default:
				b.Update = append(b.Update, q)
			}
		}
	}
	b.Delete = append(b.Delete, ws.removed...)
	return b
}

func (ws *WorkingSet) locate(level Level, index int) (Level, error) {
	lvl := ParseLevel(string(level))
	if lvl == LevelUnknown {
		return lvl, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	if index < 0 || index >= len(ws.levels[lvl]) {
		return lvl, fmt.Errorf("%w: %s[%d]", ErrOutOfRange, lvl, index)
	}
	return lvl, nil
}

func (ws *WorkingSet) withoutPlaceholders(lvl Level) []Question {
	kept := ws.levels[lvl][:0:0]
	for _, q := range ws.levels[lvl] {
		if !q.IsPlaceholder() {
			kept = append(kept, q)
		}
	}
	return kept
}

// ensureNonEmpty runs after every mutation.
func (ws *WorkingSet) ensureNonEmpty() {
	for _, lvl := range Levels() {
		if len(ws.levels[lvl]) == 0 {
			ws.levels[lvl] = []Question{Placeholder(lvl)}
		}
	}
}
