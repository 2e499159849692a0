package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pgcet-quiz/internal/domain"
	"pgcet-quiz/internal/repository/models"
	"pgcet-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id, question_hash, question_text, option_a, option_b, option_c, option_d,
	correct_option, explanation, exam_year, source_url, fetched_at, created_at, updated_at`

// sqlxQuestionRepository implements domain.QuestionRepository using sqlx.
type sqlxQuestionRepository struct {
	db *sqlx.DB
	tm domain.TransactionManager
}

// NewSQLXQuestionRepository creates a question repository backed by db.
func NewSQLXQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &sqlxQuestionRepository{db: db, tm: NewTransactionManagerAdapter(db)}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	return &domain.Question{
		ID:   m.ID,
		Text: m.QuestionText,
		Options: domain.Options{
			A: m.OptionA,
			B: m.OptionB,
			C: m.OptionC,
			D: m.OptionD,
		},
		CorrectOption: domain.OptionLetter(strings.ToUpper(strings.TrimSpace(m.CorrectOption))),
		Explanation:   m.Explanation.String,
		Year:          util.NullInt64ToIntPtr(m.ExamYear),
		SourceURL:     m.SourceURL.String,
		FetchedAt:     m.FetchedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromDomainQuestion(q *domain.Question) *models.Question {
	if q == nil {
		return nil
	}
	return &models.Question{
		ID:            q.ID,
		QuestionHash:  q.Hash(),
		QuestionText:  strings.TrimSpace(q.Text),
		OptionA:       q.Options.A,
		OptionB:       q.Options.B,
		OptionC:       q.Options.C,
		OptionD:       q.Options.D,
		CorrectOption: string(q.CorrectOption),
		Explanation:   util.StringToNullString(q.Explanation),
		ExamYear:      util.IntPtrToNullInt64(q.Year),
		SourceURL:     util.StringToNullString(q.SourceURL),
		FetchedAt:     q.FetchedAt.UTC(),
		CreatedAt:     q.CreatedAt.UTC(),
		UpdatedAt:     q.UpdatedAt.UTC(),
	}
}

func toDomainQuestions(rows []models.Question) []*domain.Question {
	out := make([]*domain.Question, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainQuestion(&rows[i]))
	}
	return out
}

// ListYears returns the distinct year tags in ascending order.
func (r *sqlxQuestionRepository) ListYears(ctx context.Context) ([]int, error) {
	exec := GetExecutor(ctx, r.db)
	query := `SELECT DISTINCT exam_year FROM questions WHERE exam_year IS NOT NULL ORDER BY exam_year`

	years := make([]int, 0)
	if err := exec.SelectContext(ctx, &years, query); err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}
	return years, nil
}

// ListQuestionsForYear returns the questions tagged with year in insertion order.
func (r *sqlxQuestionRepository) ListQuestionsForYear(ctx context.Context, year int) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT ` + questionColumns + ` FROM questions WHERE exam_year = ? ORDER BY id`)

	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, query, year); err != nil {
		return nil, fmt.Errorf("failed to list questions for year %d: %w", year, err)
	}
	return toDomainQuestions(rows), nil
}

// ListLatestQuestions returns up to limit questions, most recently fetched first.
func (r *sqlxQuestionRepository) ListLatestQuestions(ctx context.Context, limit int) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT ` + questionColumns + ` FROM questions ORDER BY fetched_at DESC, id DESC` + limitClause(r.db.DriverName()))

	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list latest questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// CountQuestions returns the number of stored questions.
func (r *sqlxQuestionRepository) CountQuestions(ctx context.Context) (int, error) {
	exec := GetExecutor(ctx, r.db)
	var count int
	if err := exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM questions`); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// UpsertQuestions stores the batch in one transaction. A question whose text hash
// already exists keeps its ID and creation time; everything else is refreshed.
func (r *sqlxQuestionRepository) UpsertQuestions(ctx context.Context, questions []*domain.Question) (int, int, error) {
	var inserted, updated int

	err := r.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, r.db)
		selectQuery := exec.Rebind(`SELECT id FROM questions WHERE question_hash = ?`)
		insertQuery := exec.Rebind(`INSERT INTO questions (` + questionColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		updateQuery := exec.Rebind(`UPDATE questions SET
			question_text = ?, option_a = ?, option_b = ?, option_c = ?, option_d = ?,
			correct_option = ?, explanation = ?, exam_year = ?, source_url = ?,
			fetched_at = ?, updated_at = ?
			WHERE id = ?`)

		for _, q := range questions {
			if q == nil {
				continue
			}
			now := time.Now().UTC()
			if q.FetchedAt.IsZero() {
				q.FetchedAt = now
			}
			q.UpdatedAt = now

			var existingID string
			err := exec.GetContext(ctx, &existingID, selectQuery, q.Hash())
			switch {
			case errors.Is(err, sql.ErrNoRows):
				if q.ID == "" {
					q.ID = util.NewULID()
				}
				q.CreatedAt = now
				m := fromDomainQuestion(q)
				if _, err := exec.ExecContext(ctx, insertQuery,
					m.ID, m.QuestionHash, m.QuestionText,
					m.OptionA, m.OptionB, m.OptionC, m.OptionD,
					m.CorrectOption, m.Explanation, m.ExamYear, m.SourceURL,
					m.FetchedAt, m.CreatedAt, m.UpdatedAt,
				); err != nil {
					return fmt.Errorf("failed to insert question %s: %w", m.QuestionHash, err)
				}
				inserted++
			case err != nil:
				return fmt.Errorf("failed to look up question %s: %w", q.Hash(), err)
			default:
				q.ID = existingID
				m := fromDomainQuestion(q)
				if _, err := exec.ExecContext(ctx, updateQuery,
					m.QuestionText,
					m.OptionA, m.OptionB, m.OptionC, m.OptionD,
					m.CorrectOption, m.Explanation, m.ExamYear, m.SourceURL,
					m.FetchedAt, m.UpdatedAt,
					m.ID,
				); err != nil {
					return fmt.Errorf("failed to update question %s: %w", m.ID, err)
				}
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return inserted, updated, nil
}
