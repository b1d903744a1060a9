package analytics_test

import (
	"testing"

	"github.com/surveyadmin/backend/internal/analytics"
	"github.com/surveyadmin/backend/internal/domain/question"
)

func withOptions(base question.Question, flags ...bool) question.Question {
	for _, f := range flags {
		base.Options = append(base.Options, question.AnswerOption{Text: "opt", IsCorrect: f})
	}
	return base
}

func TestDistribute_ScalesToAnswered(t *testing.T) {
	questions := []question.Question{
		withOptions(q("a", question.LevelBeginner, question.TypeInput, "", 30, 0), true, true, false),
	}

	d := analytics.Distribute(questions, 30, 0)

	if d.RawCorrect != 2 || d.RawIncorrect != 1 {
		t.Errorf("unexpected raw counts: %+v", d)
	}
	if d.Correct != 20 || d.Incorrect != 10 {
		t.Errorf("expected 20/10, got %d/%d", d.Correct, d.Incorrect)
	}
}

func TestDistribute_NoFlags(t *testing.T) {
	questions := []question.Question{
		q("a", question.LevelBeginner, question.TypeInput, "", 12, 3),
		withOptions(q("b", question.LevelBeginner, question.TypeMCQ, "", 5, 0), true),
	}

	d := analytics.Distribute(questions, 17, 3)

	if d.Correct != 0 || d.Incorrect != 0 {
		t.Errorf("expected zero correct and incorrect, got %+v", d)
	}
	if d.Skipped != 3 {
		t.Errorf("expected skipped to pass through, got %d", d.Skipped)
	}
}

func TestDistribute_SumEqualsAnswered(t *testing.T) {
	flagSets := [][]bool{
		{true},
		{false},
		{true, false},
		{true, true, false},
		{true, false, false, false, false, false, false},
	}

	for _, flags := range flagSets {
		for answered := 0; answered <= 101; answered++ {
			questions := []question.Question{
				withOptions(q("a", question.LevelBeginner, question.TypeInput, "", answered, 0), flags...),
			}
			d := analytics.Distribute(questions, answered, 0)
			if d.Correct+d.Incorrect != answered {
				t.Fatalf("flags %v answered %d: %d+%d != %d", flags, answered, d.Correct, d.Incorrect, answered)
			}
			if d.Correct < 0 || d.Incorrect < 0 {
				t.Fatalf("flags %v answered %d: negative split %+v", flags, answered, d)
			}
		}
	}
}

func TestDistribute_HalfRoundsUp(t *testing.T) {
	questions := []question.Question{
		withOptions(q("a", question.LevelBeginner, question.TypeInput, "", 3, 0), true, false),
	}

	d := analytics.Distribute(questions, 3, 0)

	if d.Correct != 2 || d.Incorrect != 1 {
		t.Errorf("expected 1.5 to round to 2, got %+v", d)
	}
}

func TestLeaderboard_Ordering(t *testing.T) {
	questions := []question.Question{
		withOptions(q("a", question.LevelBeginner, question.TypeInput, "Travel", 4, 0), true, false),
		withOptions(q("b", question.LevelBeginner, question.TypeInput, "Food", 9, 0), true, false),
		withOptions(q("c", question.LevelBeginner, question.TypeInput, "Books", 9, 0), false, true),
		withOptions(q("d", question.LevelBeginner, question.TypeInput, "Sport", 1, 0), true),
		q("e", question.LevelBeginner, question.TypeMCQ, "Music", 50, 0),
	}

	board := analytics.Leaderboard(questions, 0)

	want := []string{"Sport", "Books", "Food", "Travel", "Music"}
	if len(board) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(board))
	}
	for i, cat := range want {
		if board[i].Category != cat {
			t.Errorf("position %d: expected %s, got %s", i, cat, board[i].Category)
		}
		if board[i].Rank != i+1 {
			t.Errorf("position %d: expected rank %d, got %d", i, i+1, board[i].Rank)
		}
	}
	if board[0].Accuracy.String() != "100.0" {
		t.Errorf("expected 100.0 accuracy, got %s", board[0].Accuracy)
	}
}

func TestLeaderboard_Size(t *testing.T) {
	questions := []question.Question{
		q("a", question.LevelBeginner, question.TypeInput, "A", 1, 0),
		q("b", question.LevelBeginner, question.TypeInput, "B", 2, 0),
		q("c", question.LevelBeginner, question.TypeInput, "C", 3, 0),
	}

	board := analytics.Leaderboard(questions, 2)

	if len(board) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(board))
	}
	if board[0].Category != "C" || board[1].Category != "B" {
		t.Errorf("expected higher answered count to win ties, got %+v", board)
	}
}
