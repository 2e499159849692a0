package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeValidation    ErrorCode = "VALIDATION_FAILED"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Store errors
	CodeFetch       ErrorCode = "FETCH_ERROR"
	CodePersistence ErrorCode = "PERSISTENCE_ERROR"

	// Quiz specific errors
	CodeSessionNotFound   ErrorCode = "SESSION_NOT_FOUND"
	CodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	CodeNoQuestions       ErrorCode = "NO_QUESTIONS"

	// Ingestion errors
	CodeValidationGap   ErrorCode = "VALIDATION_GAP"
	CodeIngestionFailed ErrorCode = "INGESTION_FAILED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Context map[string]interface{} `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Context: e.Context,
	})
}

// WithContext attaches a key/value pair that is reported alongside the error.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

// NewFetchError reports that the Question or Attempt Store could not be read.
func NewFetchError(message string, cause error) *DomainError {
	return NewError(CodeFetch, message, cause)
}

// NewPersistenceError reports that a write to the Attempt Store failed.
func NewPersistenceError(message string, cause error) *DomainError {
	return NewError(CodePersistence, message, cause)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("session not found: %s", sessionID), nil)
}

func NewInvalidTransitionError(op string, state SessionState) *DomainError {
	return NewError(CodeInvalidTransition, fmt.Sprintf("%s is not allowed in state %s", op, state), nil).
		WithContext("state", string(state))
}

func NewNoQuestionsError(year int) *DomainError {
	return NewError(CodeNoQuestions, fmt.Sprintf("no questions available for year %d", year), nil).
		WithContext("year", year)
}

// NewValidationGapError describes a scraped block that lacks text, an option or the answer.
func NewValidationGapError(message string) *DomainError {
	return NewError(CodeValidationGap, message, nil)
}

func NewIngestionError(message string, cause error) *DomainError {
	return NewError(CodeIngestionFailed, message, cause)
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
