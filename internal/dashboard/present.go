package dashboard

import (
	"time"

	"github.com/surveyadmin/backend/internal/analytics"
	"github.com/surveyadmin/backend/internal/domain/question"
)

// UncategorizedLabel names the bucket of questions without a category. A real
// category may carry the same name; rows keep the raw key to tell them apart.
const UncategorizedLabel = "Uncategorized"

type Totals struct {
	TotalQuestions  int    `json:"total_questions"`
	TotalResponses  int    `json:"total_responses"`
	TotalAnswered   int    `json:"total_answered"`
	TotalSkipped    int    `json:"total_skipped"`
	OverallSkipRate string `json:"overall_skip_rate"`
}

// Bucket is one labeled value of a chart.
type Bucket struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

type Series struct {
	Title   string   `json:"title"`
	Buckets []Bucket `json:"buckets"`
}

type Charts struct {
	AnswersByLevel    Series `json:"answers_by_level"`
	Correctness       Series `json:"correctness"`
	AnswersByCategory Series `json:"answers_by_category"`
}

type SkippedRow struct {
	Rank        int    `json:"rank"`
	Question    string `json:"question"`
	CategoryKey string `json:"category_key"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Answered    int    `json:"answered"`
	Skipped     int    `json:"skipped"`
	SkipRate    string `json:"skip_rate"`
}

type SkipRateRow struct {
	Rank      int    `json:"rank"`
	Key       string `json:"key"`
	Name      string `json:"name"`
	Questions int    `json:"questions"`
	Answered  int    `json:"answered"`
	Skipped   int    `json:"skipped"`
	SkipRate  string `json:"skip_rate"`
}

type LeaderboardRow struct {
	Rank        int    `json:"rank"`
	CategoryKey string `json:"category_key"`
	Category    string `json:"category"`
	Answered    int    `json:"answered"`
	Correct     int    `json:"correct"`
	Accuracy    string `json:"accuracy"`
}

type RecentRow struct {
	QuestionID string    `json:"question_id"`
	Question   string    `json:"question"`
	Correct    bool      `json:"correct"`
	AnsweredAt time.Time `json:"answered_at"`
}

type Tables struct {
	MostSkipped       []SkippedRow     `json:"most_skipped"`
	CategorySkipRates []SkipRateRow    `json:"category_skip_rates"`
	LevelSkipRates    []SkipRateRow    `json:"level_skip_rates"`
	Leaderboard       []LeaderboardRow `json:"leaderboard"`
	RecentAnswers     []RecentRow      `json:"recent_answers"`
}

// Present maps a summary onto chart series and table rows. questions is used
// to resolve question texts for recent answers.
func Present(s analytics.Summary, questions []question.Question) (Totals, Charts, Tables) {
	totals := Totals{
		TotalQuestions:  s.TotalQuestions,
		TotalResponses:  s.TotalResponses,
		TotalAnswered:   s.TotalAnswered,
		TotalSkipped:    s.TotalSkipped,
		OverallSkipRate: s.OverallSkipRate.String(),
	}

	charts := Charts{
		AnswersByLevel: Series{Title: "Answers by level", Buckets: make([]Bucket, 0, len(s.LevelCounts))},
		Correctness: Series{Title: "Response correctness", Buckets: []Bucket{
			{Key: "correct", Label: "Correct", Value: s.Distribution.Correct},
			{Key: "incorrect", Label: "Incorrect", Value: s.Distribution.Incorrect},
			{Key: "skipped", Label: "Skipped", Value: s.Distribution.Skipped},
		}},
		AnswersByCategory: Series{Title: "Answers by category", Buckets: make([]Bucket, 0, len(s.Categories))},
	}
	for _, lc := range s.LevelCounts {
		charts.AnswersByLevel.Buckets = append(charts.AnswersByLevel.Buckets, Bucket{Key: string(lc.Level), Label: string(lc.Level), Value: lc.Answered})
	}
	for _, c := range s.Categories {
		charts.AnswersByCategory.Buckets = append(charts.AnswersByCategory.Buckets, Bucket{Key: c.Key, Label: categoryLabel(c.Key), Value: c.Answered})
	}

	tables := Tables{
		MostSkipped:       make([]SkippedRow, 0, len(s.MostSkipped)),
		CategorySkipRates: skipRateRows(s.Categories, categoryLabel),
		LevelSkipRates:    skipRateRows(s.LevelSkipRates, func(k string) string { return k }),
		Leaderboard:       make([]LeaderboardRow, 0, len(s.Leaderboard)),
		RecentAnswers:     make([]RecentRow, 0, len(s.RecentAnswers)),
	}
	for i, q := range s.MostSkipped {
		tables.MostSkipped = append(tables.MostSkipped, SkippedRow{
			Rank:        i + 1,
			Question:    q.Text,
			CategoryKey: q.Category,
			Category:    categoryLabel(q.Category),
			Level:       string(q.Level),
			Answered:    q.Answered,
			Skipped:     q.Skipped,
			SkipRate:    q.SkipRate.String(),
		})
	}
	for _, e := range s.Leaderboard {
		tables.Leaderboard = append(tables.Leaderboard, LeaderboardRow{
			Rank:        e.Rank,
			CategoryKey: e.Category,
			Category:    categoryLabel(e.Category),
			Answered:    e.Answered,
			Correct:     e.Correct,
			Accuracy:    e.Accuracy.String(),
		})
	}

	texts := make(map[string]string, len(questions))
	for _, q := range questions {
		texts[q.ID] = q.Text
	}
	for _, a := range s.RecentAnswers {
		tables.RecentAnswers = append(tables.RecentAnswers, RecentRow{
			QuestionID: a.QuestionID,
			Question:   texts[a.QuestionID],
			Correct:    a.IsCorrect,
			AnsweredAt: a.CreatedAt,
		})
	}

	return totals, charts, tables
}

func skipRateRows(groups []analytics.Breakdown, label func(string) string) []SkipRateRow {
	rows := make([]SkipRateRow, 0, len(groups))
	for i, g := range groups {
		rows = append(rows, SkipRateRow{
			Rank:      i + 1,
			Key:       g.Key,
			Name:      label(g.Key),
			Questions: g.Questions,
			Answered:  g.Answered,
			Skipped:   g.Skipped,
			SkipRate:  g.SkipRate.String(),
		})
	}
	return rows
}

func categoryLabel(c string) string {
	if c == "" {
		return UncategorizedLabel
	}
	return c
}
