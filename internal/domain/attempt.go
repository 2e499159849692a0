package domain

import "time"

// AnswerRecord is one graded submission in the per-question schema.
type AnswerRecord struct {
	ID             string
	QuestionID     string
	SelectedOption OptionLetter
	SelectedText   string
	IsCorrect      bool
	CreatedAt      time.Time
}

// Response is one graded question inside an Attempt.
type Response struct {
	ID             string       `json:"id,omitempty"`
	AttemptID      string       `json:"attempt_id,omitempty"`
	QuestionID     string       `json:"question_id"`
	Position       int          `json:"position"`
	SelectedOption OptionLetter `json:"selected_option"`
	SelectedText   string       `json:"selected_text"`
	IsCorrect      bool         `json:"is_correct"`
	AnsweredAt     time.Time    `json:"answered_at"`
}

// Attempt is one completed session in the per-attempt schema.
type Attempt struct {
	ID             string
	Year           int
	TotalQuestions int
	CorrectAnswers int
	WrongAnswers   int
	CreatedAt      time.Time
	Responses      []Response
}

// NewAttempt derives the attempt aggregates from its responses.
func NewAttempt(year int, responses []Response, at time.Time) *Attempt {
	a := &Attempt{
		Year:           year,
		TotalQuestions: len(responses),
		CreatedAt:      at,
		Responses:      responses,
	}
	for _, r := range responses {
		if r.IsCorrect {
			a.CorrectAnswers++
		} else {
			a.WrongAnswers++
		}
	}
	return a
}

// AnswerDetail is an answer joined with the question it refers to.
// It is the input of the stats aggregation for both persistence schemas.
type AnswerDetail struct {
	AttemptID      string       `json:"attempt_id,omitempty"`
	QuestionID     string       `json:"question_id"`
	QuestionText   string       `json:"question_text"`
	Options        Options      `json:"options"`
	CorrectOption  OptionLetter `json:"correct_option"`
	CorrectText    string       `json:"correct_text"`
	SelectedOption OptionLetter `json:"selected_option"`
	SelectedText   string       `json:"selected_text"`
	IsCorrect      bool         `json:"is_correct"`
	Explanation    string       `json:"explanation,omitempty"`
	Year           int          `json:"year,omitempty"`
	AnsweredAt     time.Time    `json:"answered_at"`
}
