package analytics

import (
	"slices"

	"github.com/surveyadmin/backend/internal/domain/question"
)

// SkippedQuestion is one row of the "most skipped" ranking.
type SkippedQuestion struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Category string         `json:"category"`
	Level    question.Level `json:"level"`
	Answered int            `json:"answered"`
	Skipped  int            `json:"skipped"`
	Total    int            `json:"total"`
	SkipRate Rate           `json:"skip_rate"`
}

// MostSkipped ranks Input questions by skip rate, highest first, and keeps
// the top limit. Equal rates keep their input order.
func MostSkipped(questions []question.Question, limit int) []SkippedQuestion {
	ranked := make([]SkippedQuestion, 0, len(questions))
	for _, q := range questions {
		if q.Type != question.TypeInput {
			continue
		}
		ranked = append(ranked, SkippedQuestion{
			ID:       q.ID,
			Text:     q.Text,
			Category: q.Category,
			Level:    q.Level,
			Answered: q.TimesAnswered,
			Skipped:  q.TimesSkipped,
			Total:    q.Total(),
			SkipRate: SkipRate(q.TimesSkipped, q.TimesAnswered),
		})
	}

	slices.SortStableFunc(ranked, func(a, b SkippedQuestion) int {
		return b.SkipRate.Compare(a.SkipRate)
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// RankCategories groups questions by exact category string and orders the
// groups by skip rate, highest first. Equal rates keep first-appearance order.
// Questions without a category form their own group.
func RankCategories(questions []question.Question) []Breakdown {
	groups := []Breakdown{}
	index := make(map[string]int)
	for _, q := range questions {
		i, ok := index[q.Category]
		if !ok {
			i = len(groups)
			index[q.Category] = i
			groups = append(groups, Breakdown{Key: q.Category})
		}
		add(&groups[i], q)
	}
	return rankBreakdowns(groups)
}

// RankLevels computes a breakdown per fixed level and orders them by skip
// rate, highest first. Equal rates keep level order.
func RankLevels(questions []question.Question) []Breakdown {
	levels := question.Levels()
	groups := make([]Breakdown, len(levels))
	index := make(map[question.Level]int, len(levels))
	for i, lvl := range levels {
		groups[i].Key = string(lvl)
		index[lvl] = i
	}
	for _, q := range questions {
		if i, ok := index[q.Level]; ok {
			add(&groups[i], q)
		}
	}
	return rankBreakdowns(groups)
}

func add(b *Breakdown, q question.Question) {
	b.Questions++
	b.Answered += q.TimesAnswered
	b.Skipped += q.TimesSkipped
}

func rankBreakdowns(groups []Breakdown) []Breakdown {
	for i := range groups {
		groups[i].Total = groups[i].Answered + groups[i].Skipped
		groups[i].SkipRate = NewRate(groups[i].Skipped, groups[i].Total)
	}
	slices.SortStableFunc(groups, func(a, b Breakdown) int {
		return b.SkipRate.Compare(a.SkipRate)
	})
	return groups
}
