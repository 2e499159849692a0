package models

import (
	"database/sql"
	"time"
)

// Answer is the row shape of the per-question answers table.
type Answer struct {
	ID             string    `db:"id"`
	QuestionID     string    `db:"question_id"`
	SelectedOption string    `db:"selected_option"`
	SelectedText   string    `db:"selected_text"`
	IsCorrect      int       `db:"is_correct"`
	CreatedAt      time.Time `db:"created_at"`
}

// QuizAttempt is the row shape of the quiz_attempts table.
type QuizAttempt struct {
	ID             string    `db:"id"`
	ExamYear       int       `db:"exam_year"`
	TotalQuestions int       `db:"total_questions"`
	CorrectAnswers int       `db:"correct_answers"`
	WrongAnswers   int       `db:"wrong_answers"`
	CreatedAt      time.Time `db:"created_at"`
}

// AttemptResponse is the row shape of the attempt_responses table.
type AttemptResponse struct {
	ID             string    `db:"id"`
	AttemptID      string    `db:"attempt_id"`
	QuestionID     string    `db:"question_id"`
	QuestionOrder  int       `db:"question_order"`
	SelectedOption string    `db:"selected_option"`
	SelectedText   string    `db:"selected_text"`
	IsCorrect      int       `db:"is_correct"`
	CreatedAt      time.Time `db:"created_at"`
}

// AnswerDetail is an answer or response row joined with its question.
type AnswerDetail struct {
	AttemptID      sql.NullString `db:"attempt_id"`
	QuestionID     string         `db:"question_id"`
	QuestionText   string         `db:"question_text"`
	OptionA        string         `db:"option_a"`
	OptionB        string         `db:"option_b"`
	OptionC        string         `db:"option_c"`
	OptionD        string         `db:"option_d"`
	CorrectOption  string         `db:"correct_option"`
	Explanation    sql.NullString `db:"explanation"`
	ExamYear       sql.NullInt64  `db:"exam_year"`
	SelectedOption string         `db:"selected_option"`
	SelectedText   string         `db:"selected_text"`
	IsCorrect      int            `db:"is_correct"`
	AnsweredAt     time.Time      `db:"answered_at"`
}
