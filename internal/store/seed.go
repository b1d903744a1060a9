package store

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/surveyadmin/backend/internal/domain/question"
)

type seedFile struct {
	Questions []question.Question `yaml:"questions"`
}

// LoadSeed reads and validates a YAML file of questions.
func LoadSeed(path string) ([]question.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes seed YAML. Unknown fields are rejected.
func ParseSeed(data []byte) ([]question.Question, error) {
	var seed seedFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	for i := range seed.Questions {
		q := &seed.Questions[i]
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("questions[%d]: %w", i, err)
		}
		q.Level = question.ParseLevel(string(q.Level))
		if q.Level == question.LevelUnknown {
			return nil, fmt.Errorf("questions[%d]: %w", i, question.ErrUnknownLevel)
		}
		q.Type = question.ParseType(string(q.Type))
		if q.Type == question.TypeUnknown {
			q.Type = question.TypeInput
		}
		if q.Options == nil {
			q.Options = []question.AnswerOption{}
		}
	}
	return seed.Questions, nil
}

// Seed inserts the questions when the store holds none yet. It reports how
// many questions were created.
func Seed(ctx context.Context, s Store, questions []question.Question) (int, error) {
	existing, err := s.ListQuestions(ctx)
	if err != nil {
		return 0, fmt.Errorf("list questions: %w", err)
	}
	if len(existing) > 0 || len(questions) == 0 {
		return 0, nil
	}
	if err := s.CreateQuestions(ctx, questions); err != nil {
		return 0, fmt.Errorf("seed questions: %w", err)
	}
	return len(questions), nil
}
