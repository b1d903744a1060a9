package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/surveyadmin/backend/internal/domain/question"
	"github.com/surveyadmin/backend/internal/id"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    type TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    level TEXT NOT NULL,
    times_answered INTEGER NOT NULL DEFAULT 0,
    times_skipped INTEGER NOT NULL DEFAULT 0,
    options JSONB NOT NULL DEFAULT '[]',
    position BIGSERIAL
);

CREATE TABLE IF NOT EXISTS answers (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    is_correct BOOLEAN NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

type PoolConfig struct {
	MaxConns        int32
	MaxConnLifetime time.Duration
}

// PostgresStore keeps questions in PostgreSQL; options live in a JSONB column.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

func NewPostgres(ctx context.Context, dsn string, cfg PoolConfig) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) withinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *PostgresStore) ListQuestions(ctx context.Context) ([]question.Question, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, text, type, category, level, times_answered, times_skipped, options
		FROM questions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions := []question.Question{}
	for rows.Next() {
		var q question.Question
		var qType, level string
		var options []byte
		if err := rows.Scan(&q.ID, &q.Text, &qType, &q.Category, &level, &q.TimesAnswered, &q.TimesSkipped, &options); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Type = question.Type(qType)
		q.Level = question.Level(level)
		q.Options = []question.AnswerOption{}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("question %s: decode options: %w", q.ID, err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *PostgresStore) ListAnswers(ctx context.Context) ([]question.Answer, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, question_id, is_correct, created_at FROM answers ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	answers := []question.Answer{}
	for rows.Next() {
		var a question.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.IsCorrect, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		a.CreatedAt = a.CreatedAt.UTC()
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (s *PostgresStore) CreateQuestions(ctx context.Context, questions []question.Question) error {
	return s.withinTx(ctx, func(tx pgx.Tx) error {
		for i := range questions {
			q := &questions[i]
			q.AssignID()
			options, err := encodeOptions(q.Options)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO questions (id, text, type, category, level, times_answered, times_skipped, options)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb)`,
				q.ID, q.Text, string(q.Type), q.Category, string(q.Level), q.TimesAnswered, q.TimesSkipped, options,
			)
			if err != nil {
				return fmt.Errorf("insert question %s: %w", q.ID, err)
			}
		}
		return nil
	})
}

func (s *PostgresStore) UpdateQuestions(ctx context.Context, questions []question.Question) error {
	return s.withinTx(ctx, func(tx pgx.Tx) error {
		for _, q := range questions {
			options, err := encodeOptions(q.Options)
			if err != nil {
				return err
			}
			tag, err := tx.Exec(ctx,
				`UPDATE questions SET text = $1, type = $2, category = $3, options = $4::jsonb,
				 position = CASE WHEN level = $5 THEN position ELSE nextval(pg_get_serial_sequence('questions', 'position')) END,
				 level = $5
				 WHERE id = $6`,
				q.Text, string(q.Type), q.Category, options, string(q.Level), q.ID,
			)
			if err != nil {
				return fmt.Errorf("update question %s: %w", q.ID, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("question %s: %w", q.ID, ErrNotFound)
			}
		}
		return nil
	})
}

func (s *PostgresStore) DeleteQuestions(ctx context.Context, ids []string) error {
	return s.withinTx(ctx, func(tx pgx.Tx) error {
		for _, qid := range ids {
			tag, err := tx.Exec(ctx, "DELETE FROM questions WHERE id = $1", qid)
			if err != nil {
				return fmt.Errorf("delete question %s: %w", qid, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("question %s: %w", qid, ErrNotFound)
			}
		}
		return nil
	})
}

func (s *PostgresStore) RecordResponse(ctx context.Context, r Response) (*question.Answer, error) {
	var answer *question.Answer
	err := s.withinTx(ctx, func(tx pgx.Tx) error {
		query := "UPDATE questions SET times_answered = times_answered + 1 WHERE id = $1 RETURNING id"
		if r.Skipped {
			query = "UPDATE questions SET times_skipped = times_skipped + 1 WHERE id = $1 RETURNING id"
		}
		var qid string
		if err := tx.QueryRow(ctx, query, r.QuestionID).Scan(&qid); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("question %s: %w", r.QuestionID, ErrNotFound)
			}
			return err
		}
		if r.Skipped {
			return nil
		}

		a := question.Answer{
			ID:         id.GenerateID(),
			QuestionID: r.QuestionID,
			IsCorrect:  r.IsCorrect,
		}
		err := tx.QueryRow(ctx,
			"INSERT INTO answers (id, question_id, is_correct) VALUES ($1, $2, $3) RETURNING created_at",
			a.ID, a.QuestionID, a.IsCorrect,
		).Scan(&a.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert answer: %w", err)
		}
		a.CreatedAt = a.CreatedAt.UTC()
		answer = &a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return answer, nil
}

func encodeOptions(options []question.AnswerOption) (string, error) {
	if options == nil {
		options = []question.AnswerOption{}
	}
	b, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("encode options: %w", err)
	}
	return string(b), nil
}
