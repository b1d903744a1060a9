package analytics

import "github.com/surveyadmin/backend/internal/domain/question"

// Distribution splits responses into correct, incorrect and skipped.
type Distribution struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
	Skipped   int `json:"skipped"`

	// Raw counts taken from the embedded option flags before scaling.
	RawCorrect   int `json:"raw_correct"`
	RawIncorrect int `json:"raw_incorrect"`
}

// OptionCounts counts correct and incorrect embedded options of Input
// questions. Other question types are ignored.
func OptionCounts(questions []question.Question) (correct, incorrect int) {
	for _, q := range questions {
		if q.Type != question.TypeInput {
			continue
		}
		for _, opt := range q.Options {
			if opt.IsCorrect {
				correct++
			} else {
				incorrect++
			}
		}
	}
	return correct, incorrect
}

// Distribute reconciles the option flags with the totalAnswered counter.
//
// The option flags only give a proportion; it is scaled linearly onto
// totalAnswered so Correct+Incorrect always equals totalAnswered. This is an
// approximation: when the flags and the counter describe different
// populations the split is only as good as the flags' proportion.
// With no flags at all, both Correct and Incorrect are 0.
func Distribute(questions []question.Question, totalAnswered, totalSkipped int) Distribution {
	correct, incorrect := OptionCounts(questions)
	d := Distribution{
		Skipped:      totalSkipped,
		RawCorrect:   correct,
		RawIncorrect: incorrect,
	}

	rawTotal := int64(correct + incorrect)
	if rawTotal == 0 {
		return d
	}

	// round half up of correct/rawTotal*totalAnswered, in integers
	answered := int64(totalAnswered)
	d.Correct = int((2*int64(correct)*answered + rawTotal) / (2 * rawTotal))
	d.Incorrect = totalAnswered - d.Correct
	return d
}
