package question_test

import (
	"errors"
	"testing"

	"github.com/surveyadmin/backend/internal/domain/question"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want question.Level
	}{
		{"Beginner", question.LevelBeginner},
		{" intermediate ", question.LevelIntermediate},
		{"ADVANCED", question.LevelAdvanced},
		{"Expert", question.LevelUnknown},
		{"", question.LevelUnknown},
	}

	for _, tt := range tests {
		if got := question.ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLevelsOrder(t *testing.T) {
	levels := question.Levels()
	want := []question.Level{question.LevelBeginner, question.LevelIntermediate, question.LevelAdvanced}

	if len(levels) != len(want) {
		t.Fatalf("expected %d levels, got %d", len(want), len(levels))
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("level %d: expected %q, got %q", i, want[i], levels[i])
		}
	}
}

func TestParseType(t *testing.T) {
	if got := question.ParseType("input"); got != question.TypeInput {
		t.Errorf("expected Input, got %q", got)
	}
	if got := question.ParseType("Multiple Choice"); got != question.TypeMCQ {
		t.Errorf("expected MCQ, got %q", got)
	}
	if got := question.ParseType("essay"); got != question.TypeUnknown {
		t.Errorf("expected unknown type, got %q", got)
	}
}

func TestQuestionValidate_EmptyText(t *testing.T) {
	q := question.New("   ", question.TypeInput, "", question.LevelBeginner)

	if err := q.Validate(); !errors.Is(err, question.ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
}

func TestAssignID(t *testing.T) {
	q := question.New("What is a survey?", question.TypeInput, "General", question.LevelBeginner)
	if !q.IsNew() {
		t.Fatal("expected new question")
	}

	q.AssignID()
	if q.ID == "" {
		t.Fatal("expected generated ID")
	}

	prev := q.ID
	q.AssignID()
	if q.ID != prev {
		t.Error("expected AssignID to keep an existing ID")
	}
}
