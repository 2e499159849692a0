package domain

import (
	"math/rand/v2"
	"time"
)

// SessionState is the position of a quiz session in its lifecycle.
type SessionState string

const (
	StateSelectingYear SessionState = "selecting_year"
	StateAnswering     SessionState = "answering"
	StateSubmitted     SessionState = "submitted"
	StateFinished      SessionState = "finished"
)

// PersistenceMode decides when graded answers are written.
type PersistenceMode string

const (
	// PersistPerAnswer writes one AnswerRecord on every submit.
	PersistPerAnswer PersistenceMode = "answer"
	// PersistPerAttempt buffers responses and writes one Attempt when the session finishes.
	PersistPerAttempt PersistenceMode = "attempt"
)

// Command is a store write produced by a session transition.
// Transitions never perform I/O themselves; the caller executes the commands.
type Command interface {
	isCommand()
}

// SaveAnswer asks for one AnswerRecord to be inserted.
type SaveAnswer struct {
	Record AnswerRecord
}

// SaveAttempt asks for an Attempt and its responses to be inserted.
type SaveAttempt struct {
	Attempt Attempt
}

func (SaveAnswer) isCommand()  {}
func (SaveAttempt) isCommand() {}

// Shuffler permutes n elements through swap.
type Shuffler func(n int, swap func(i, j int))

// UniformShuffler returns a Fisher-Yates shuffler backed by r.
func UniformShuffler(r *rand.Rand) Shuffler {
	return r.Shuffle
}

// Session is one user's traversal of the questions of a year.
// Every operation takes the session by value and returns the next value,
// so a rejected operation leaves the caller's copy untouched.
type Session struct {
	ID        string          `json:"id"`
	Mode      PersistenceMode `json:"mode"`
	State     SessionState    `json:"state"`
	Year      int             `json:"year,omitempty"`
	Questions []Question      `json:"questions,omitempty"`
	Cursor    int             `json:"cursor"`
	Selected  OptionLetter    `json:"selected,omitempty"`
	Score     int             `json:"score"`
	Finished  bool            `json:"finished"`
	Responses []Response      `json:"responses,omitempty"`
	LastError string          `json:"last_error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewSession returns a session waiting for a year to be chosen.
func NewSession(id string, mode PersistenceMode, now time.Time) Session {
	return Session{
		ID:        id,
		Mode:      mode,
		State:     StateSelectingYear,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Total is the number of questions in the session.
func (s Session) Total() int {
	return len(s.Questions)
}

// Current returns the question under the cursor.
func (s Session) Current() (Question, bool) {
	if s.State == StateSelectingYear || s.Cursor < 0 || s.Cursor >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Cursor], true
}

// LastResponse returns the most recent graded response.
func (s Session) LastResponse() (Response, bool) {
	if len(s.Responses) == 0 {
		return Response{}, false
	}
	return s.Responses[len(s.Responses)-1], true
}

// WithError records a failure the client should see; the state is unchanged.
func (s Session) WithError(msg string, now time.Time) Session {
	s.LastError = msg
	s.UpdatedAt = now
	return s
}

// SelectYear starts answering the given questions in a random order.
// The order is fixed for the rest of the session.
func (s Session) SelectYear(year int, questions []Question, shuffle Shuffler, now time.Time) (Session, error) {
	if s.State != StateSelectingYear {
		return s, NewInvalidTransitionError("selectYear", s.State)
	}
	if len(questions) == 0 {
		return s, NewNoQuestionsError(year)
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return s, err
		}
	}

	ordered := make([]Question, len(questions))
	copy(ordered, questions)
	if shuffle != nil {
		shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	}

	s.Year = year
	s.Questions = ordered
	s.Cursor = 0
	s.Selected = ""
	s.Score = 0
	s.Finished = false
	s.Responses = nil
	s.LastError = ""
	s.State = StateAnswering
	s.UpdatedAt = now
	return s, nil
}

// SelectOption sets the pending selection for the current question.
func (s Session) SelectOption(letter OptionLetter, now time.Time) (Session, error) {
	if s.State != StateAnswering {
		return s, NewInvalidTransitionError("selectOption", s.State)
	}
	if !letter.Valid() {
		return s, NewInvalidInputError("option must be one of A, B, C, D")
	}
	s.Selected = letter
	s.LastError = ""
	s.UpdatedAt = now
	return s, nil
}

// Submit grades the pending selection. Submitting twice is rejected, so a
// question is graded and recorded at most once.
func (s Session) Submit(now time.Time) (Session, []Command, error) {
	if s.State != StateAnswering {
		return s, nil, NewInvalidTransitionError("submit", s.State)
	}
	if s.Selected == "" {
		return s, nil, NewInvalidInputError("select an option before submitting")
	}
	q, ok := s.Current()
	if !ok {
		return s, nil, NewInternalError("cursor out of range", nil)
	}

	correct := q.Grade(s.Selected)
	text, _ := q.Options.Get(s.Selected)
	resp := Response{
		QuestionID:     q.ID,
		Position:       s.Cursor,
		SelectedOption: s.Selected,
		SelectedText:   text,
		IsCorrect:      correct,
		AnsweredAt:     now,
	}

	responses := make([]Response, len(s.Responses), len(s.Responses)+1)
	copy(responses, s.Responses)
	s.Responses = append(responses, resp)
	if correct {
		s.Score++
	}
	s.State = StateSubmitted
	s.LastError = ""
	s.UpdatedAt = now

	var cmds []Command
	if s.Mode == PersistPerAnswer {
		cmds = append(cmds, SaveAnswer{Record: AnswerRecord{
			QuestionID:     q.ID,
			SelectedOption: resp.SelectedOption,
			SelectedText:   resp.SelectedText,
			IsCorrect:      correct,
			CreatedAt:      now,
		}})
	}
	return s, cmds, nil
}

// Advance moves to the next question, or finishes the session after the last one.
// Finishing in PersistPerAttempt mode emits the attempt flush.
func (s Session) Advance(now time.Time) (Session, []Command, error) {
	if s.State != StateSubmitted {
		return s, nil, NewInvalidTransitionError("advance", s.State)
	}
	s.LastError = ""
	s.UpdatedAt = now

	if s.Cursor < len(s.Questions)-1 {
		s.Cursor++
		s.Selected = ""
		s.State = StateAnswering
		return s, nil, nil
	}

	s.State = StateFinished
	s.Finished = true

	var cmds []Command
	if s.Mode == PersistPerAttempt {
		responses := make([]Response, len(s.Responses))
		copy(responses, s.Responses)
		cmds = append(cmds, SaveAttempt{Attempt: *NewAttempt(s.Year, responses, now)})
	}
	return s, cmds, nil
}

// Restart discards everything and waits for a new year. Valid from any state.
func (s Session) Restart(now time.Time) Session {
	next := NewSession(s.ID, s.Mode, now)
	next.CreatedAt = s.CreatedAt
	return next
}
