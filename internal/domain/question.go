package domain

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// OptionLetter names one of the four option slots of a question.
type OptionLetter string

const (
	OptionA OptionLetter = "A"
	OptionB OptionLetter = "B"
	OptionC OptionLetter = "C"
	OptionD OptionLetter = "D"
)

// OptionLetters lists the slots in display order.
var OptionLetters = [4]OptionLetter{OptionA, OptionB, OptionC, OptionD}

var letterPattern = regexp.MustCompile(`^(?i)(?:answer|ans|option|correct)?\s*[:.\-]?\s*\(?([a-d])\)?[.):]?$`)

// ParseOptionLetter accepts "b", "B", "(b)", "B.", "Answer: B", "Option C" and returns the slot letter.
func ParseOptionLetter(raw string) (OptionLetter, error) {
	m := letterPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", fmt.Errorf("unknown option letter %q", raw)
	}
	return OptionLetter(strings.ToUpper(m[1])), nil
}

// Valid reports whether l names one of the four slots.
func (l OptionLetter) Valid() bool {
	switch l {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// Options holds the four option texts of a question.
type Options struct {
	A string `json:"a" validate:"required"`
	B string `json:"b" validate:"required"`
	C string `json:"c" validate:"required"`
	D string `json:"d" validate:"required"`
}

// Get returns the text stored in slot l.
func (o Options) Get(l OptionLetter) (string, bool) {
	switch l {
	case OptionA:
		return o.A, true
	case OptionB:
		return o.B, true
	case OptionC:
		return o.C, true
	case OptionD:
		return o.D, true
	}
	return "", false
}

// LetterOf returns the first slot whose text equals text.
func (o Options) LetterOf(text string) (OptionLetter, bool) {
	for _, l := range OptionLetters {
		if v, _ := o.Get(l); v == text {
			return l, true
		}
	}
	return "", false
}

// Question is a canonical multiple-choice item with exactly one correct slot.
type Question struct {
	ID            string       `json:"id"`
	Text          string       `json:"text" validate:"required"`
	Options       Options      `json:"options"`
	CorrectOption OptionLetter `json:"correct_option" validate:"required,oneof=A B C D"`
	Explanation   string       `json:"explanation,omitempty"`
	Year          *int         `json:"year,omitempty"`
	SourceURL     string       `json:"source_url,omitempty"`
	FetchedAt     time.Time    `json:"fetched_at"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// NewQuestion creates a new Question instance
func NewQuestion(text string, options Options, correct OptionLetter) *Question {
	now := time.Now()
	return &Question{
		Text:          strings.TrimSpace(text),
		Options:       options,
		CorrectOption: correct,
		FetchedAt:     now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate rejects records whose correct letter does not name a slot or whose slots are empty.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewInvalidInputError("question text is required")
	}
	for _, l := range OptionLetters {
		if v, _ := q.Options.Get(l); strings.TrimSpace(v) == "" {
			return NewInvalidInputError(fmt.Sprintf("option %s is empty", l))
		}
	}
	if !q.CorrectOption.Valid() {
		return NewInvalidInputError(fmt.Sprintf("correct option %q does not name a slot", q.CorrectOption))
	}
	return nil
}

// CorrectValue resolves the text of the slot named by the correct letter.
func (q *Question) CorrectValue() string {
	v, _ := q.Options.Get(q.CorrectOption)
	return v
}

// YearValue returns the year tag or 0 when the question has none.
func (q *Question) YearValue() int {
	if q.Year == nil {
		return 0
	}
	return *q.Year
}

// Grade reports whether the selected slot is the correct one.
// Two slots holding the same text are still different answers.
func (q *Question) Grade(selected OptionLetter) bool {
	return selected.Valid() && selected == q.CorrectOption
}

// Hash is the upsert key of a question: sha256 of its trimmed text.
func (q *Question) Hash() string {
	return QuestionHash(q.Text)
}

// QuestionHash returns the hex sha256 of the trimmed question text.
func QuestionHash(text string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return fmt.Sprintf("%x", sum)
}
