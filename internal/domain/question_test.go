package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestion(id string, correct OptionLetter) Question {
	return Question{
		ID:            id,
		Text:          "What is the capital of " + id + "?",
		Options:       Options{A: "alpha", B: "beta", C: "gamma", D: "delta"},
		CorrectOption: correct,
	}
}

func TestParseOptionLetter(t *testing.T) {
	tests := []struct {
		raw     string
		want    OptionLetter
		wantErr bool
	}{
		{"A", OptionA, false},
		{"b", OptionB, false},
		{" (c) ", OptionC, false},
		{"D.", OptionD, false},
		{"Answer: B", OptionB, false},
		{"Option c", OptionC, false},
		{"ans - a", OptionA, false},
		{"E", "", true},
		{"", "", true},
		{"AB", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseOptionLetter(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestion_Validate(t *testing.T) {
	valid := sampleQuestion("q1", OptionB)
	assert.NoError(t, valid.Validate())

	unknownLetter := sampleQuestion("q2", "E")
	err := unknownLetter.Validate()
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeInvalidInput))

	emptyOption := sampleQuestion("q3", OptionA)
	emptyOption.Options.C = "  "
	assert.Error(t, emptyOption.Validate())

	emptyText := sampleQuestion("q4", OptionA)
	emptyText.Text = ""
	assert.Error(t, emptyText.Validate())
}

func TestQuestion_Grade(t *testing.T) {
	for _, correct := range OptionLetters {
		q := sampleQuestion("q", correct)
		for _, selected := range OptionLetters {
			assert.Equal(t, selected == correct, q.Grade(selected), "correct=%s selected=%s", correct, selected)
		}
		assert.False(t, q.Grade("X"))
	}
}

func TestQuestion_Grade_DuplicateOptionText(t *testing.T) {
	q := Question{
		Text:          "Pick the prime",
		Options:       Options{A: "7", B: "4", C: "7", D: "9"},
		CorrectOption: OptionA,
	}

	assert.True(t, q.Grade(OptionA))
	assert.False(t, q.Grade(OptionC), "same text in another slot is a different answer")
	assert.Equal(t, "7", q.CorrectValue())
}

func TestOptions_LetterOf(t *testing.T) {
	o := Options{A: "x", B: "y", C: "z", D: "y"}

	l, ok := o.LetterOf("y")
	assert.True(t, ok)
	assert.Equal(t, OptionB, l)

	_, ok = o.LetterOf("w")
	assert.False(t, ok)
}

func TestQuestionHash_TrimsText(t *testing.T) {
	assert.Equal(t, QuestionHash("What is 2+2?"), QuestionHash("  What is 2+2?\n"))
	assert.NotEqual(t, QuestionHash("What is 2+2?"), QuestionHash("What is 2+3?"))
	assert.Len(t, QuestionHash("x"), 64)
}
