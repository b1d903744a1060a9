// simulation/simulation.go
package simulation

import (
	"context"
	"math/rand/v2"
	"strconv"

	"github.com/surveyadmin/backend/internal/domain/question"
	"github.com/surveyadmin/backend/internal/store"
	"github.com/surveyadmin/backend/internal/worker"
)

// Recorder stores one respondent interaction.
type Recorder interface {
	RecordResponse(ctx context.Context, r store.Response) (*question.Answer, error)
}

type Options struct {
	Responses   int
	Workers     int
	SkipRate    float64 // probability that a respondent skips
	CorrectRate float64 // probability that an answer is correct
	Seed        uint64
}

func DefaultOptions() Options {
	return Options{
		Responses:   100,
		Workers:     3,
		SkipRate:    0.2,
		CorrectRate: 0.6,
		Seed:        1,
	}
}

type Result struct {
	Answered int
	Skipped  int
	Correct  int
	Failed   int
}

type outcome struct {
	skipped bool
	correct bool
	err     error
}

// Run plays simulated respondents against the given questions. The choice of
// question and response is drawn up front from Seed, so runs are repeatable.
func Run(ctx context.Context, rec Recorder, questions []question.Question, opts Options) Result {
	var res Result
	if len(questions) == 0 || opts.Responses <= 0 {
		return res
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	responses := make([]store.Response, opts.Responses)
	for i := range responses {
		q := questions[rng.IntN(len(questions))]
		skipped := rng.Float64() < opts.SkipRate
		responses[i] = store.Response{
			QuestionID: q.ID,
			Skipped:    skipped,
			IsCorrect:  !skipped && rng.Float64() < opts.CorrectRate,
		}
	}

	pool := worker.NewPool[outcome](opts.Workers, len(responses))
	for i, r := range responses {
		pool.Submit(strconv.Itoa(i), func() outcome {
			_, err := rec.RecordResponse(ctx, r)
			return outcome{skipped: r.Skipped, correct: r.IsCorrect, err: err}
		})
	}
	pool.Close()

	for out := range pool.Results() {
		o := out.Output
		switch {
		case o.err != nil:
			res.Failed++
		case o.skipped:
			res.Skipped++
		default:
			res.Answered++
			if o.correct {
				res.Correct++
			}
		}
	}
	return res
}
