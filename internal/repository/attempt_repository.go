package repository

import (
	"context"
	"fmt"
	"time"

	"pgcet-quiz/internal/domain"
	"pgcet-quiz/internal/repository/models"
	"pgcet-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

const detailQuestionColumns = `q.question_text, q.option_a, q.option_b, q.option_c, q.option_d,
	q.correct_option, q.explanation, q.exam_year`

// sqlxAttemptRepository implements domain.AttemptRepository using sqlx.
type sqlxAttemptRepository struct {
	db *sqlx.DB
	tm domain.TransactionManager
}

// NewSQLXAttemptRepository creates an attempt repository backed by db.
func NewSQLXAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db, tm: NewTransactionManagerAdapter(db)}
}

func toDomainAnswerDetail(m *models.AnswerDetail) domain.AnswerDetail {
	options := domain.Options{A: m.OptionA, B: m.OptionB, C: m.OptionC, D: m.OptionD}
	correct := domain.OptionLetter(m.CorrectOption)
	correctText, _ := options.Get(correct)
	return domain.AnswerDetail{
		AttemptID:      m.AttemptID.String,
		QuestionID:     m.QuestionID,
		QuestionText:   m.QuestionText,
		Options:        options,
		CorrectOption:  correct,
		CorrectText:    correctText,
		SelectedOption: domain.OptionLetter(m.SelectedOption),
		SelectedText:   m.SelectedText,
		IsCorrect:      m.IsCorrect != 0,
		Explanation:    m.Explanation.String,
		Year:           int(m.ExamYear.Int64),
		AnsweredAt:     m.AnsweredAt,
	}
}

func toDomainResponse(m *models.AttemptResponse) domain.Response {
	return domain.Response{
		ID:             m.ID,
		AttemptID:      m.AttemptID,
		QuestionID:     m.QuestionID,
		Position:       m.QuestionOrder,
		SelectedOption: domain.OptionLetter(m.SelectedOption),
		SelectedText:   m.SelectedText,
		IsCorrect:      m.IsCorrect != 0,
		AnsweredAt:     m.CreatedAt,
	}
}

func toDomainAttempt(m *models.QuizAttempt) *domain.Attempt {
	return &domain.Attempt{
		ID:             m.ID,
		Year:           m.ExamYear,
		TotalQuestions: m.TotalQuestions,
		CorrectAnswers: m.CorrectAnswers,
		WrongAnswers:   m.WrongAnswers,
		CreatedAt:      m.CreatedAt,
		Responses:      make([]domain.Response, 0),
	}
}

func stampUTC(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

// InsertAnswer writes one per-question answer record.
func (r *sqlxAttemptRepository) InsertAnswer(ctx context.Context, record *domain.AnswerRecord) error {
	if record.ID == "" {
		record.ID = util.NewULID()
	}
	record.CreatedAt = stampUTC(record.CreatedAt)

	m := models.Answer{
		ID:             record.ID,
		QuestionID:     record.QuestionID,
		SelectedOption: string(record.SelectedOption),
		SelectedText:   record.SelectedText,
		IsCorrect:      util.BoolToInt(record.IsCorrect),
		CreatedAt:      record.CreatedAt,
	}

	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`INSERT INTO answers (id, question_id, selected_option, selected_text, is_correct, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := exec.ExecContext(ctx, query,
		m.ID, m.QuestionID, m.SelectedOption, m.SelectedText, m.IsCorrect, m.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert answer for question %s: %w", m.QuestionID, err)
	}
	return nil
}

// InsertAttempt writes the attempt aggregate row. Responses are written separately.
func (r *sqlxAttemptRepository) InsertAttempt(ctx context.Context, attempt *domain.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	attempt.CreatedAt = stampUTC(attempt.CreatedAt)

	m := models.QuizAttempt{
		ID:             attempt.ID,
		ExamYear:       attempt.Year,
		TotalQuestions: attempt.TotalQuestions,
		CorrectAnswers: attempt.CorrectAnswers,
		WrongAnswers:   attempt.WrongAnswers,
		CreatedAt:      attempt.CreatedAt,
	}

	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`INSERT INTO quiz_attempts (id, exam_year, total_questions, correct_answers, wrong_answers, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := exec.ExecContext(ctx, query,
		m.ID, m.ExamYear, m.TotalQuestions, m.CorrectAnswers, m.WrongAnswers, m.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert attempt: %w", err)
	}
	return nil
}

// InsertResponses writes all responses of one attempt in a single transaction.
func (r *sqlxAttemptRepository) InsertResponses(ctx context.Context, attemptID string, responses []domain.Response) error {
	if len(responses) == 0 {
		return nil
	}
	return r.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, r.db)
		query := exec.Rebind(`INSERT INTO attempt_responses
			(id, attempt_id, question_id, question_order, selected_option, selected_text, is_correct, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)

		for i := range responses {
			resp := &responses[i]
			if resp.ID == "" {
				resp.ID = util.NewULID()
			}
			resp.AttemptID = attemptID
			resp.AnsweredAt = stampUTC(resp.AnsweredAt)

			if _, err := exec.ExecContext(ctx, query,
				resp.ID, attemptID, resp.QuestionID, resp.Position,
				string(resp.SelectedOption), resp.SelectedText, util.BoolToInt(resp.IsCorrect), resp.AnsweredAt,
			); err != nil {
				return fmt.Errorf("failed to insert response %d of attempt %s: %w", resp.Position, attemptID, err)
			}
		}
		return nil
	})
}

// ListAnswerDetails returns every per-question answer joined with its question, oldest first.
func (r *sqlxAttemptRepository) ListAnswerDetails(ctx context.Context) ([]domain.AnswerDetail, error) {
	exec := GetExecutor(ctx, r.db)
	query := `SELECT a.question_id, ` + detailQuestionColumns + `,
		a.selected_option, a.selected_text, a.is_correct, a.created_at AS answered_at
		FROM answers a
		JOIN questions q ON q.id = a.question_id
		ORDER BY a.created_at, a.id`

	var rows []models.AnswerDetail
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list answer details: %w", err)
	}
	return toDomainAnswerDetails(rows), nil
}

// ListResponseDetails returns every attempt response joined with its question, oldest first.
func (r *sqlxAttemptRepository) ListResponseDetails(ctx context.Context) ([]domain.AnswerDetail, error) {
	exec := GetExecutor(ctx, r.db)
	query := `SELECT r.attempt_id, r.question_id, ` + detailQuestionColumns + `,
		r.selected_option, r.selected_text, r.is_correct, r.created_at AS answered_at
		FROM attempt_responses r
		JOIN questions q ON q.id = r.question_id
		ORDER BY r.created_at, r.attempt_id, r.question_order`

	var rows []models.AnswerDetail
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list response details: %w", err)
	}
	return toDomainAnswerDetails(rows), nil
}

func toDomainAnswerDetails(rows []models.AnswerDetail) []domain.AnswerDetail {
	out := make([]domain.AnswerDetail, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainAnswerDetail(&rows[i]))
	}
	return out
}

// ListAttempts returns up to limit attempts, newest first, with their responses.
func (r *sqlxAttemptRepository) ListAttempts(ctx context.Context, limit int) ([]*domain.Attempt, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT id, exam_year, total_questions, correct_answers, wrong_answers, created_at
		FROM quiz_attempts ORDER BY created_at DESC, id DESC` + limitClause(r.db.DriverName()))

	var rows []models.QuizAttempt
	if err := exec.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	attempts := make([]*domain.Attempt, 0, len(rows))
	if len(rows) == 0 {
		return attempts, nil
	}

	ids := make([]string, 0, len(rows))
	byID := make(map[string]*domain.Attempt, len(rows))
	for i := range rows {
		a := toDomainAttempt(&rows[i])
		attempts = append(attempts, a)
		ids = append(ids, a.ID)
		byID[a.ID] = a
	}

	inQuery, args, err := sqlx.In(`SELECT id, attempt_id, question_id, question_order, selected_option, selected_text, is_correct, created_at
		FROM attempt_responses WHERE attempt_id IN (?) ORDER BY attempt_id, question_order`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build response query: %w", err)
	}

	var responses []models.AttemptResponse
	if err := exec.SelectContext(ctx, &responses, exec.Rebind(inQuery), args...); err != nil {
		return nil, fmt.Errorf("failed to list attempt responses: %w", err)
	}
	for i := range responses {
		if a, ok := byID[responses[i].AttemptID]; ok {
			a.Responses = append(a.Responses, toDomainResponse(&responses[i]))
		}
	}
	return attempts, nil
}
