package middleware

import (
	"strconv"

	"pgcet-quiz/internal/domain"
	"pgcet-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	LocalSessionID = "validated_session_id"
	LocalLimit     = "validated_limit"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSessionID validates the :id path parameter of the session routes.
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateSessionID(id); len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}
		c.Locals(LocalSessionID, id)
		return c.Next()
	}
}

// ValidateLimit validates the optional limit query parameter.
func (vm *ValidationMiddleware) ValidateLimit(defaultLimit, max int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := defaultLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return domain.ValidationErrors{domain.NewInvalidFormatError("limit", raw)}
			}
			limit = parsed
		}
		if errs := vm.validator.ValidateLimit(limit, max); len(errs) > 0 {
			return errs
		}
		c.Locals(LocalLimit, limit)
		return c.Next()
	}
}
