package question

import (
	"errors"
	"strings"
	"time"

	"github.com/surveyadmin/backend/internal/id"
)

var ErrEmptyText = errors.New("question text cannot be empty")

// Level is the difficulty tier a question belongs to.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"

	// LevelUnknown marks a record whose level could not be recognized.
	LevelUnknown Level = ""
)

// Levels returns the fixed level order. Every per-level sequence follows it.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// ParseLevel matches s against the fixed levels, ignoring case and surrounding
// whitespace. Unrecognized values return LevelUnknown.
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)
	for _, l := range Levels() {
		if strings.EqualFold(s, string(l)) {
			return l
		}
	}
	return LevelUnknown
}

// Known reports whether l is one of the fixed levels.
func (l Level) Known() bool {
	return ParseLevel(string(l)) != LevelUnknown
}

type Type string

const (
	TypeInput   Type = "Input"
	TypeMCQ     Type = "MCQ"
	TypeUnknown Type = ""
)

// ParseType maps free-form type names onto Input or MCQ.
func ParseType(s string) Type {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input", "text":
		return TypeInput
	case "mcq", "multiple choice", "multiple-choice", "multiplechoice", "choice":
		return TypeMCQ
	}
	return TypeUnknown
}

// AnswerOption is an answer embedded in a question definition.
type AnswerOption struct {
	Text      string `json:"text" yaml:"text"`
	IsCorrect bool   `json:"is_correct" yaml:"is_correct"`
}

type Question struct {
	ID            string         `json:"id" yaml:"id,omitempty"`
	Text          string         `json:"text" yaml:"text"`
	Type          Type           `json:"type" yaml:"type"`
	Category      string         `json:"category" yaml:"category"`
	Level         Level          `json:"level" yaml:"level"`
	TimesAnswered int            `json:"times_answered" yaml:"times_answered"`
	TimesSkipped  int            `json:"times_skipped" yaml:"times_skipped"`
	Options       []AnswerOption `json:"options" yaml:"options"`
}

// New creates an unsaved question for the given level.
func New(text string, qType Type, category string, level Level) Question {
	return Question{
		Text:     text,
		Type:     qType,
		Category: category,
		Level:    level,
		Options:  []AnswerOption{},
	}
}

// IsNew reports whether the question has not been persisted yet.
func (q Question) IsNew() bool {
	return q.ID == ""
}

// IsPlaceholder reports whether q is an unsaved question with no content.
func (q Question) IsPlaceholder() bool {
	return q.IsNew() && strings.TrimSpace(q.Text) == ""
}

// Total is the number of exposures: answered plus skipped.
func (q Question) Total() int {
	return q.TimesAnswered + q.TimesSkipped
}

// AssignID gives a new question its persistent ID.
func (q *Question) AssignID() {
	if q.ID == "" {
		q.ID = id.GenerateID()
	}
}

// Validate checks the fields a question needs before it can be persisted.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrEmptyText
	}
	return nil
}

// Answer is a submitted response to a question.
type Answer struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	IsCorrect  bool      `json:"is_correct"`
	CreatedAt  time.Time `json:"created_at"`
}

// Dataset is what the data-fetch collaborator delivers in one fetch.
type Dataset struct {
	Questions []Question `json:"questions"`
	Answers   []Answer   `json:"answers"`
}
