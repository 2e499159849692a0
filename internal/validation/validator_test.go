package validation

import (
	"testing"

	"pgcet-quiz/internal/domain"
	"pgcet-quiz/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Struct(t *testing.T) {
	v := NewValidator()

	assert.Nil(t, v.Struct(dto.SelectYearRequest{Year: 2023}))
	assert.Nil(t, v.Struct(dto.SelectOptionRequest{Option: "c"}))

	errs := v.Struct(dto.SelectYearRequest{})
	require.Len(t, errs, 1)
	assert.Equal(t, "year", errs[0].Field)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)

	errs = v.Struct(dto.SelectYearRequest{Year: 1800})
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)

	errs = v.Struct(dto.SelectOptionRequest{Option: "E"})
	require.Len(t, errs, 1)
	assert.Equal(t, "option", errs[0].Field)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
}

func TestValidator_ValidateSessionID(t *testing.T) {
	v := NewValidator()

	assert.Nil(t, v.ValidateSessionID(uuid.NewString()))
	assert.Equal(t, domain.CodeMissingField, v.ValidateSessionID(" ")[0].Code)
	assert.Equal(t, domain.CodeInvalidFormat, v.ValidateSessionID("not-a-session")[0].Code)
}

func TestValidator_ValidateLimit(t *testing.T) {
	v := NewValidator()

	assert.Nil(t, v.ValidateLimit(10, MaxLatestLimit))
	assert.Len(t, v.ValidateLimit(0, MaxLatestLimit), 1)
	assert.Len(t, v.ValidateLimit(MaxLatestLimit+1, MaxLatestLimit), 1)
}
