package analytics_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/surveyadmin/backend/internal/analytics"
	"github.com/surveyadmin/backend/internal/domain/question"
)

func q(id string, level question.Level, qType question.Type, category string, answered, skipped int) question.Question {
	return question.Question{
		ID:            id,
		Text:          "Question " + id,
		Type:          qType,
		Category:      category,
		Level:         level,
		TimesAnswered: answered,
		TimesSkipped:  skipped,
		Options:       []question.AnswerOption{},
	}
}

func TestAggregate_Totals(t *testing.T) {
	questions := []question.Question{
		q("a", question.LevelBeginner, question.TypeInput, "Food", 10, 0),
		q("b", question.LevelAdvanced, question.TypeInput, "Food", 0, 5),
	}

	s := analytics.Aggregate(questions, nil, analytics.DefaultOptions())

	if s.TotalResponses != 15 {
		t.Errorf("expected 15 responses, got %d", s.TotalResponses)
	}
	if s.TotalAnswered != 10 {
		t.Errorf("expected 10 answered, got %d", s.TotalAnswered)
	}
	if s.TotalSkipped != 5 {
		t.Errorf("expected 5 skipped, got %d", s.TotalSkipped)
	}
	if got := s.OverallSkipRate.String(); got != "33.3" {
		t.Errorf("expected skip rate 33.3, got %q", got)
	}
}

func TestAggregate_NoResponses(t *testing.T) {
	questions := []question.Question{
		q("a", question.LevelBeginner, question.TypeInput, "", 0, 0),
	}

	s := analytics.Aggregate(questions, nil, analytics.DefaultOptions())

	if got := s.OverallSkipRate.String(); got != "0.0" {
		t.Errorf("expected 0.0, got %q", got)
	}
	if s.TotalResponses != s.TotalAnswered+s.TotalSkipped {
		t.Error("expected responses to equal answered plus skipped")
	}
}

func TestAggregate_Empty(t *testing.T) {
	s := analytics.Aggregate(nil, nil, analytics.DefaultOptions())

	if s.TotalQuestions != 0 || s.TotalResponses != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
	if len(s.LevelCounts) != len(question.Levels()) {
		t.Errorf("expected %d level counts, got %d", len(question.Levels()), len(s.LevelCounts))
	}
	if s.Categories == nil || s.Leaderboard == nil || s.MostSkipped == nil {
		t.Error("expected empty, non-nil collections")
	}
}

func TestLevelCounts_FixedOrderAndUnknownLevel(t *testing.T) {
	questions := []question.Question{
		q("a", question.LevelAdvanced, question.TypeInput, "", 4, 0),
		q("b", question.LevelBeginner, question.TypeMCQ, "", 2, 1),
		q("c", question.LevelUnknown, question.TypeInput, "", 7, 0),
		q("d", question.LevelAdvanced, question.TypeMCQ, "", 1, 0),
	}

	counts := analytics.LevelCounts(questions)

	want := []analytics.LevelCount{
		{Level: question.LevelBeginner, Answered: 2},
		{Level: question.LevelIntermediate, Answered: 0},
		{Level: question.LevelAdvanced, Answered: 5},
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("expected %+v, got %+v", want, counts)
	}

	s := analytics.Aggregate(questions, nil, analytics.DefaultOptions())
	if s.TotalAnswered != 14 {
		t.Errorf("expected unknown level to count in totals (14), got %d", s.TotalAnswered)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	questions := []question.Question{
		q("a", question.LevelBeginner, question.TypeInput, "Food", 3, 1),
		q("b", question.LevelIntermediate, question.TypeMCQ, "Travel", 5, 5),
		q("c", question.LevelAdvanced, question.TypeInput, "", 0, 2),
	}
	answers := []question.Answer{
		{ID: "x", QuestionID: "a", CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "y", QuestionID: "b", CreatedAt: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)},
	}

	first := analytics.Aggregate(questions, answers, analytics.DefaultOptions())
	second := analytics.Aggregate(questions, answers, analytics.DefaultOptions())

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical summaries for identical input")
	}
}

func TestCompute_NormalizesFirst(t *testing.T) {
	ds := question.Dataset{Questions: []question.Question{
		{ID: "a", Type: "input", Level: "beginner", TimesAnswered: -4, TimesSkipped: 2},
	}}

	s := analytics.Compute(ds, analytics.DefaultOptions())

	if s.TotalAnswered != 0 {
		t.Errorf("expected negative counter to be clamped, got %d", s.TotalAnswered)
	}
	if s.LevelCounts[0].Level != question.LevelBeginner {
		t.Errorf("unexpected level order: %+v", s.LevelCounts)
	}
	if len(s.MostSkipped) != 1 {
		t.Errorf("expected the coerced Input question in most skipped, got %d", len(s.MostSkipped))
	}
}

func TestRecentAnswers(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	answers := []question.Answer{
		{ID: "1", QuestionID: "a", CreatedAt: base},
		{ID: "2", QuestionID: "b", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "3", QuestionID: "a", CreatedAt: base.Add(time.Hour)},
	}

	recent := analytics.RecentAnswers(answers, 2)
	if len(recent) != 2 || recent[0].ID != "2" || recent[1].ID != "3" {
		t.Fatalf("unexpected recent answers: %+v", recent)
	}

	ids := analytics.RecentQuestionIDs(recent)
	if !reflect.DeepEqual(ids, []string{"b", "a"}) {
		t.Errorf("unexpected recent question IDs: %v", ids)
	}

	if answers[0].ID != "1" {
		t.Error("expected input to be left untouched")
	}
}
