package validation

import (
	"errors"
	"reflect"
	"strings"

	"pgcet-quiz/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	MaxLatestLimit  = 100
	MaxAttemptLimit = 500
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates the `validate` tags of s.
func (v *Validator) Struct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{Field: "body", Code: domain.CodeInvalidInput, Message: err.Error()}}
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			out = append(out, domain.NewMissingFieldError(fe.Field()))
		case "min", "max", "gte", "lte":
			out = append(out, domain.ValidationError{
				Field:   fe.Field(),
				Code:    domain.CodeOutOfRange,
				Message: "must satisfy " + fe.Tag() + "=" + fe.Param(),
				Value:   fe.Value(),
			})
		default:
			out = append(out, domain.NewInvalidFormatError(fe.Field(), fe.Value()))
		}
	}
	return out
}

// ValidateSessionID checks that id is a session token issued by the server.
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", id)}
	}
	return nil
}

// ValidateLimit checks a list size query parameter.
func (v *Validator) ValidateLimit(limit, max int) domain.ValidationErrors {
	if limit < 1 || limit > max {
		return domain.ValidationErrors{domain.NewOutOfRangeError("limit", limit, 1, max)}
	}
	return nil
}
