package dto

import "time"

// SelectYearRequest is the body of POST /api/sessions/:id/year
// @Description Year whose questions the session should load
type SelectYearRequest struct {
	Year int `json:"year" validate:"required,min=1990,max=2100"`
}

// SelectOptionRequest is the body of POST /api/sessions/:id/select
// @Description Option letter to mark as the pending answer
type SelectOptionRequest struct {
	Option string `json:"option" validate:"required,oneof=A B C D a b c d"`
}

// OptionView is one answer option as shown to the player.
type OptionView struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// QuestionView is a question without its answer.
// @Description Question information; the correct option is never included
type QuestionView struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Options []OptionView `json:"options"`
	Year    int          `json:"year,omitempty"`
}

// FeedbackView is revealed once the current question has been submitted.
type FeedbackView struct {
	SelectedOption string `json:"selected_option"`
	SelectedText   string `json:"selected_text"`
	IsCorrect      bool   `json:"is_correct"`
	CorrectOption  string `json:"correct_option"`
	CorrectText    string `json:"correct_text"`
	Explanation    string `json:"explanation,omitempty"`
}

// SessionView is the client-facing state of a quiz session.
// @Description Quiz session state
type SessionView struct {
	ID        string        `json:"id"`
	State     string        `json:"state"`
	Mode      string        `json:"mode"`
	Year      int           `json:"year,omitempty"`
	Position  int           `json:"position"`
	Total     int           `json:"total"`
	Score     int           `json:"score"`
	Finished  bool          `json:"finished"`
	Selected  string        `json:"selected,omitempty"`
	Question  *QuestionView `json:"question,omitempty"`
	Feedback  *FeedbackView `json:"feedback,omitempty"`
	LastError string        `json:"last_error,omitempty"`
}

// HealthResponse is returned by GET /api/health
type HealthResponse struct {
	Status        string `json:"status"`
	QuestionCount int    `json:"question_count"`
}

// YearsResponse lists the years that have questions.
type YearsResponse struct {
	Years []int `json:"years"`
}

// LatestQuestionsResponse lists the most recently fetched questions.
type LatestQuestionsResponse struct {
	Questions []QuestionView `json:"questions"`
}

// ResponseView is one graded question of an attempt.
type ResponseView struct {
	QuestionID     string    `json:"question_id"`
	Position       int       `json:"position"`
	SelectedOption string    `json:"selected_option"`
	SelectedText   string    `json:"selected_text"`
	IsCorrect      bool      `json:"is_correct"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// AttemptView is a finished session in the per-attempt schema.
type AttemptView struct {
	ID             string         `json:"id"`
	Year           int            `json:"year"`
	TotalQuestions int            `json:"total_questions"`
	CorrectAnswers int            `json:"correct_answers"`
	WrongAnswers   int            `json:"wrong_answers"`
	CreatedAt      time.Time      `json:"created_at"`
	Responses      []ResponseView `json:"responses"`
}

// AttemptsResponse is returned by GET /api/attempts
type AttemptsResponse struct {
	Attempts []AttemptView `json:"attempts"`
}

// AnswerDetailView is one answer inside a stats row.
type AnswerDetailView struct {
	AttemptID      string       `json:"attempt_id,omitempty"`
	QuestionID     string       `json:"question_id"`
	QuestionText   string       `json:"question_text"`
	Options        []OptionView `json:"options"`
	CorrectOption  string       `json:"correct_option"`
	CorrectText    string       `json:"correct_text"`
	SelectedOption string       `json:"selected_option"`
	SelectedText   string       `json:"selected_text"`
	IsCorrect      bool         `json:"is_correct"`
	Explanation    string       `json:"explanation,omitempty"`
	AnsweredAt     time.Time    `json:"answered_at"`
}

// StatsRowView summarizes one calendar day.
type StatsRowView struct {
	Date    string             `json:"date"`
	Total   int                `json:"total"`
	Correct int                `json:"correct"`
	Wrong   int                `json:"wrong"`
	Details []AnswerDetailView `json:"details"`
}

// StatsResponse is returned by GET /api/stats
// @Description Per-day answer statistics, oldest day first
type StatsResponse struct {
	Schema    string         `json:"schema"`
	WrongOnly bool           `json:"wrong_only"`
	Rows      []StatsRowView `json:"rows"`
}

// SourceReport is the outcome of one scraped page.
type SourceReport struct {
	URL       string `json:"url"`
	Questions int    `json:"questions"`
	Dropped   int    `json:"dropped"`
}

// IngestResponse is returned by the fetch-questions endpoint.
// @Description Result of one ingestion run
type IngestResponse struct {
	Inserted int            `json:"inserted"`
	Updated  int            `json:"updated"`
	Dropped  int            `json:"dropped"`
	Sources  []SourceReport `json:"sources"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
