package analytics

import (
	"github.com/surveyadmin/backend/internal/domain/question"
)

// MostSkippedLimit caps the "most skipped" ranking.
const MostSkippedLimit = 3

type Options struct {
	LeaderboardSize int // entries kept on the leaderboard; <= 0 keeps all
	RecentLimit     int // recent answers kept; <= 0 keeps all
}

func DefaultOptions() Options {
	return Options{
		LeaderboardSize: 5,
		RecentLimit:     10,
	}
}

// LevelCount is the number of answers given to questions of one level.
type LevelCount struct {
	Level    question.Level `json:"level"`
	Answered int            `json:"answered"`
}

// Breakdown aggregates answered and skipped counts for one group of questions.
type Breakdown struct {
	Key       string `json:"key"`
	Questions int    `json:"questions"`
	Answered  int    `json:"answered"`
	Skipped   int    `json:"skipped"`
	Total     int    `json:"total"`
	SkipRate  Rate   `json:"skip_rate"`
}

// Summary holds every statistic derived from one fetch.
type Summary struct {
	TotalQuestions  int  `json:"total_questions"`
	TotalAnswered   int  `json:"total_answered"`
	TotalSkipped    int  `json:"total_skipped"`
	TotalResponses  int  `json:"total_responses"`
	OverallSkipRate Rate `json:"overall_skip_rate"`

	LevelCounts    []LevelCount       `json:"level_counts"`
	LevelSkipRates []Breakdown        `json:"level_skip_rates"`
	Categories     []Breakdown        `json:"categories"`
	MostSkipped    []SkippedQuestion  `json:"most_skipped"`
	Distribution   Distribution       `json:"distribution"`
	Leaderboard    []LeaderboardEntry `json:"leaderboard"`

	RecentAnswers     []question.Answer `json:"recent_answers"`
	RecentQuestionIDs []string          `json:"recent_question_ids"`
}

// Compute normalizes a fetched dataset and aggregates it.
func Compute(ds question.Dataset, opts Options) Summary {
	return Aggregate(NormalizeQuestions(ds.Questions), ds.Answers, opts)
}

// Aggregate derives the summary from normalized questions and answers.
// It is pure: the same input always yields the same summary.
func Aggregate(questions []question.Question, answers []question.Answer, opts Options) Summary {
	s := Summary{TotalQuestions: len(questions)}
	for _, q := range questions {
		s.TotalAnswered += q.TimesAnswered
		s.TotalSkipped += q.TimesSkipped
	}
	s.TotalResponses = s.TotalAnswered + s.TotalSkipped
	s.OverallSkipRate = NewRate(s.TotalSkipped, s.TotalResponses)

	s.LevelCounts = LevelCounts(questions)
	s.LevelSkipRates = RankLevels(questions)
	s.Categories = RankCategories(questions)
	s.MostSkipped = MostSkipped(questions, MostSkippedLimit)
	s.Distribution = Distribute(questions, s.TotalAnswered, s.TotalSkipped)
	s.Leaderboard = Leaderboard(questions, opts.LeaderboardSize)

	s.RecentAnswers = RecentAnswers(answers, opts.RecentLimit)
	s.RecentQuestionIDs = RecentQuestionIDs(s.RecentAnswers)
	return s
}

// LevelCounts sums TimesAnswered per fixed level, in level order. Questions
// with an unrecognized level are left out.
func LevelCounts(questions []question.Question) []LevelCount {
	levels := question.Levels()
	counts := make([]LevelCount, len(levels))
	index := make(map[question.Level]int, len(levels))
	for i, lvl := range levels {
		counts[i].Level = lvl
		index[lvl] = i
	}
	for _, q := range questions {
		if i, ok := index[q.Level]; ok {
			counts[i].Answered += q.TimesAnswered
		}
	}
	return counts
}
