// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/surveyadmin/backend/internal/domain/question"
	"github.com/surveyadmin/backend/internal/id"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    type TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    level TEXT NOT NULL,
    times_answered INTEGER NOT NULL DEFAULT 0,
    times_skipped INTEGER NOT NULL DEFAULT 0,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS question_options (
    question_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    text TEXT NOT NULL,
    is_correct INTEGER NOT NULL,
    PRIMARY KEY (question_id, position)
);

CREATE TABLE IF NOT EXISTS answers (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL,
    is_correct INTEGER NOT NULL,
    created_at TEXT NOT NULL
);
`

// timeLayout is fixed-width so created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens (or creates) the database at dbPath. ":memory:" gives a
// private in-memory database.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// one connection: keeps :memory: databases shared and avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{
		db:  db,
		now: time.Now,
	}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Questions
// ============================================================================

func (s *SQLiteStore) ListQuestions(ctx context.Context) ([]question.Question, error) {
	questions, err := s.listQuestionRows(ctx)
	if err != nil {
		return nil, err
	}
	options, err := s.listOptions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		if opts, ok := options[questions[i].ID]; ok {
			questions[i].Options = opts
		}
	}
	return questions, nil
}

func (s *SQLiteStore) listQuestionRows(ctx context.Context) ([]question.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, type, category, level, times_answered, times_skipped
		FROM questions ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []question.Question{}
	for rows.Next() {
		var q question.Question
		var qType, level string
		if err := rows.Scan(&q.ID, &q.Text, &qType, &q.Category, &level, &q.TimesAnswered, &q.TimesSkipped); err != nil {
			return nil, err
		}
		q.Type = question.Type(qType)
		q.Level = question.Level(level)
		q.Options = []question.AnswerOption{}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *SQLiteStore) listOptions(ctx context.Context) (map[string][]question.AnswerOption, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT question_id, text, is_correct FROM question_options ORDER BY question_id, position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make(map[string][]question.AnswerOption)
	for rows.Next() {
		var questionID string
		var opt question.AnswerOption
		if err := rows.Scan(&questionID, &opt.Text, &opt.IsCorrect); err != nil {
			return nil, err
		}
		options[questionID] = append(options[questionID], opt)
	}
	return options, rows.Err()
}

// CreateQuestions inserts the questions at the end of the list, assigning IDs
// to new ones.
func (s *SQLiteStore) CreateQuestions(ctx context.Context, questions []question.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var position int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), -1) FROM questions").Scan(&position); err != nil {
		return err
	}

	for i := range questions {
		q := &questions[i]
		q.AssignID()
		position++
		_, err := tx.ExecContext(ctx,
			`INSERT INTO questions (id, text, type, category, level, times_answered, times_skipped, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			q.ID, q.Text, string(q.Type), q.Category, string(q.Level), q.TimesAnswered, q.TimesSkipped, position,
		)
		if err != nil {
			return fmt.Errorf("insert question %s: %w", q.ID, err)
		}
		if err := insertOptions(ctx, tx, q.ID, q.Options); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// UpdateQuestions rewrites content, level and options. Counters are owned by
// RecordResponse and left untouched. A question whose level changes moves to
// the end of the list.
func (s *SQLiteStore) UpdateQuestions(ctx context.Context, questions []question.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range questions {
		var level string
		err := tx.QueryRowContext(ctx, "SELECT level FROM questions WHERE id = ?", q.ID).Scan(&level)
		if err == sql.ErrNoRows {
			return fmt.Errorf("question %s: %w", q.ID, ErrNotFound)
		}
		if err != nil {
			return err
		}

		if level != string(q.Level) {
			_, err = tx.ExecContext(ctx,
				`UPDATE questions SET text = ?, type = ?, category = ?, level = ?,
				 position = (SELECT COALESCE(MAX(position), -1) + 1 FROM questions)
				 WHERE id = ?`,
				q.Text, string(q.Type), q.Category, string(q.Level), q.ID,
			)
		} else {
			_, err = tx.ExecContext(ctx,
				"UPDATE questions SET text = ?, type = ?, category = ? WHERE id = ?",
				q.Text, string(q.Type), q.Category, q.ID,
			)
		}
		if err != nil {
			return fmt.Errorf("update question %s: %w", q.ID, err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM question_options WHERE question_id = ?", q.ID); err != nil {
			return err
		}
		if err := insertOptions(ctx, tx, q.ID, q.Options); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteQuestions removes questions with their options and answers.
func (s *SQLiteStore) DeleteQuestions(ctx context.Context, ids []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, qid := range ids {
		if _, err := tx.ExecContext(ctx, "DELETE FROM question_options WHERE question_id = ?", qid); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM answers WHERE question_id = ?", qid); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", qid)
		if err != nil {
			return err
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return fmt.Errorf("question %s: %w", qid, ErrNotFound)
		}
	}

	return tx.Commit()
}

func insertOptions(ctx context.Context, tx *sql.Tx, questionID string, options []question.AnswerOption) error {
	for i, opt := range options {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO question_options (question_id, position, text, is_correct) VALUES (?, ?, ?, ?)",
			questionID, i, opt.Text, opt.IsCorrect,
		)
		if err != nil {
			return fmt.Errorf("insert option %d of %s: %w", i, questionID, err)
		}
	}
	return nil
}

// ============================================================================
// Answers
// ============================================================================

func (s *SQLiteStore) ListAnswers(ctx context.Context) ([]question.Answer, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, question_id, is_correct, created_at FROM answers ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := []question.Answer{}
	for rows.Next() {
		var a question.Answer
		var createdAt string
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.IsCorrect, &createdAt); err != nil {
			return nil, err
		}
		a.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("answer %s: bad created_at %q: %w", a.ID, createdAt, err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (s *SQLiteStore) RecordResponse(ctx context.Context, r Response) (*question.Answer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	counter := "times_answered"
	if r.Skipped {
		counter = "times_skipped"
	}
	result, err := tx.ExecContext(ctx, "UPDATE questions SET "+counter+" = "+counter+" + 1 WHERE id = ?", r.QuestionID)
	if err != nil {
		return nil, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, fmt.Errorf("question %s: %w", r.QuestionID, ErrNotFound)
	}

	var answer *question.Answer
	if !r.Skipped {
		answer = &question.Answer{
			ID:         id.GenerateID(),
			QuestionID: r.QuestionID,
			IsCorrect:  r.IsCorrect,
			CreatedAt:  s.now().UTC(),
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO answers (id, question_id, is_correct, created_at) VALUES (?, ?, ?, ?)",
			answer.ID, answer.QuestionID, answer.IsCorrect, answer.CreatedAt.Format(timeLayout),
		)
		if err != nil {
			return nil, err
		}
	}

	return answer, tx.Commit()
}
