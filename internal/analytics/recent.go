package analytics

import (
	"slices"

	"github.com/surveyadmin/backend/internal/domain/question"
)

// RecentAnswers returns the newest answers first, keeping at most limit.
func RecentAnswers(answers []question.Answer, limit int) []question.Answer {
	recent := slices.Clone(answers)
	if recent == nil {
		recent = []question.Answer{}
	}
	slices.SortStableFunc(recent, func(a, b question.Answer) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// RecentQuestionIDs lists the distinct question IDs of answers, in order.
func RecentQuestionIDs(answers []question.Answer) []string {
	ids := []string{}
	seen := make(map[string]bool, len(answers))
	for _, a := range answers {
		if a.QuestionID == "" || seen[a.QuestionID] {
			continue
		}
		seen[a.QuestionID] = true
		ids = append(ids, a.QuestionID)
	}
	return ids
}
