package analytics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/surveyadmin/backend/internal/domain/question"
)

// NormalizeQuestions returns a canonical copy of the questions: negative
// counters become 0, level and type are coerced, and missing option lists
// become empty. It never fails.
func NormalizeQuestions(questions []question.Question) []question.Question {
	out := make([]question.Question, len(questions))
	for i, q := range questions {
		q.Level = question.ParseLevel(string(q.Level))
		q.Type = question.ParseType(string(q.Type))
		q.TimesAnswered = max(q.TimesAnswered, 0)
		q.TimesSkipped = max(q.TimesSkipped, 0)
		opts := make([]question.AnswerOption, len(q.Options))
		copy(opts, q.Options)
		q.Options = opts
		out[i] = q
	}
	return out
}

// DecodeQuestions converts loosely typed records, as decoded from an upstream
// JSON payload, into questions. A malformed field degrades to its default
// rather than dropping the record.
func DecodeQuestions(records []map[string]any) []question.Question {
	out := make([]question.Question, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		out = append(out, decodeQuestion(r))
	}
	return out
}

func decodeQuestion(r map[string]any) question.Question {
	q := question.Question{
		ID:            text(r, "id", "_id"),
		Text:          text(r, "question", "text"),
		Type:          question.ParseType(text(r, "questionType", "type")),
		Category:      text(r, "questionCategory", "category"),
		Level:         question.ParseLevel(text(r, "questionLevel", "level")),
		TimesAnswered: counter(r, "timesAnswered", "times_answered"),
		TimesSkipped:  counter(r, "timesSkipped", "times_skipped"),
		Options:       []question.AnswerOption{},
	}

	raw, ok := lookup(r, "answers", "options")
	if !ok {
		return q
	}
	items, err := cast.ToSliceE(raw)
	if err != nil {
		return q
	}
	for _, item := range items {
		m, err := cast.ToStringMapE(item)
		if err != nil {
			continue
		}
		q.Options = append(q.Options, question.AnswerOption{
			Text:      text(m, "answer", "text"),
			IsCorrect: flag(m, "isCorrect", "is_correct"),
		})
	}
	return q
}

// DecodeAnswers converts loosely typed answer records into answers.
func DecodeAnswers(records []map[string]any) []question.Answer {
	out := make([]question.Answer, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		out = append(out, question.Answer{
			ID:         text(r, "id", "_id"),
			QuestionID: text(r, "questionId", "question_id", "question"),
			IsCorrect:  flag(r, "isCorrect", "is_correct"),
			CreatedAt:  timestamp(r, "createdAt", "created_at"),
		})
	}
	return out
}

func lookup(r map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func text(r map[string]any, keys ...string) string {
	v, ok := lookup(r, keys...)
	if !ok {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// counter reads a non-negative integer. Absent, boolean and non-numeric
// values count as 0. Strings are always read in base 10, so "08" is 8.
func counter(r map[string]any, keys ...string) int {
	v, ok := lookup(r, keys...)
	if !ok {
		return 0
	}
	switch v := v.(type) {
	case bool:
		return 0
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil || d.IsNegative() {
			return 0
		}
		return int(d.IntPart())
	}
	n, err := cast.ToIntE(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func flag(r map[string]any, keys ...string) bool {
	v, ok := lookup(r, keys...)
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

func timestamp(r map[string]any, keys ...string) time.Time {
	v, ok := lookup(r, keys...)
	if !ok {
		return time.Time{}
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
