package models

import (
	"database/sql"
	"time"
)

// Question is the row shape of the questions table.
type Question struct {
	ID            string         `db:"id"`
	QuestionHash  string         `db:"question_hash"`
	QuestionText  string         `db:"question_text"`
	OptionA       string         `db:"option_a"`
	OptionB       string         `db:"option_b"`
	OptionC       string         `db:"option_c"`
	OptionD       string         `db:"option_d"`
	CorrectOption string         `db:"correct_option"`
	Explanation   sql.NullString `db:"explanation"`
	ExamYear      sql.NullInt64  `db:"exam_year"`
	SourceURL     sql.NullString `db:"source_url"`
	FetchedAt     time.Time      `db:"fetched_at"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}
