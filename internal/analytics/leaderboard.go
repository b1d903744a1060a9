package analytics

import (
	"cmp"
	"slices"

	"github.com/surveyadmin/backend/internal/domain/question"
)

// LeaderboardEntry ranks one category.
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	Category  string `json:"category"`
	Answered  int    `json:"answered"`
	Correct   int    `json:"correct"`
	Incorrect int    `json:"incorrect"`
	Accuracy  Rate   `json:"accuracy"`
}

// Leaderboard ranks categories by accuracy, then by answered count, then by
// category name. The order is total: two distinct categories never tie.
func Leaderboard(questions []question.Question, size int) []LeaderboardEntry {
	entries := []LeaderboardEntry{}
	index := make(map[string]int)
	for _, q := range questions {
		i, ok := index[q.Category]
		if !ok {
			i = len(entries)
			index[q.Category] = i
			entries = append(entries, LeaderboardEntry{Category: q.Category})
		}
		entries[i].Answered += q.TimesAnswered
		c, inc := OptionCounts([]question.Question{q})
		entries[i].Correct += c
		entries[i].Incorrect += inc
	}

	for i := range entries {
		entries[i].Accuracy = NewRate(entries[i].Correct, entries[i].Correct+entries[i].Incorrect)
	}

	slices.SortFunc(entries, func(a, b LeaderboardEntry) int {
		if c := b.Accuracy.Compare(a.Accuracy); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Answered, a.Answered); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})

	if size > 0 && len(entries) > size {
		entries = entries[:size]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
