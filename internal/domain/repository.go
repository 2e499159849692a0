package domain

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned by a SessionStore when the id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// QuestionRepository is the persistent question bank.
type QuestionRepository interface {
	// ListYears returns the distinct year tags in ascending order.
	ListYears(ctx context.Context) ([]int, error)

	// ListQuestionsForYear returns every question tagged with year.
	ListQuestionsForYear(ctx context.Context, year int) ([]*Question, error)

	// ListLatestQuestions returns the most recently fetched questions.
	ListLatestQuestions(ctx context.Context, limit int) ([]*Question, error)

	// CountQuestions returns the size of the bank.
	CountQuestions(ctx context.Context) (int, error)

	// UpsertQuestions inserts new questions and refreshes existing ones keyed by text hash.
	UpsertQuestions(ctx context.Context, questions []*Question) (inserted int, updated int, err error)
}

// AttemptRepository stores graded answers in either persistence schema.
type AttemptRepository interface {
	// InsertAnswer writes one per-question record.
	InsertAnswer(ctx context.Context, record *AnswerRecord) error

	// InsertAttempt writes the attempt row and fills in its ID.
	InsertAttempt(ctx context.Context, attempt *Attempt) error

	// InsertResponses writes the responses of an already stored attempt.
	InsertResponses(ctx context.Context, attemptID string, responses []Response) error

	// ListAnswerDetails joins per-question records with their questions, oldest first.
	ListAnswerDetails(ctx context.Context) ([]AnswerDetail, error)

	// ListResponseDetails joins attempt responses with their questions, oldest first.
	ListResponseDetails(ctx context.Context) ([]AnswerDetail, error)

	// ListAttempts returns stored attempts, newest first.
	ListAttempts(ctx context.Context, limit int) ([]*Attempt, error)
}

// SessionStore keeps in-flight sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, session Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
