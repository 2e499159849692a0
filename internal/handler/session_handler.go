package handler

import (
	"pgcet-quiz/internal/domain"
	"pgcet-quiz/internal/dto"
	"pgcet-quiz/internal/middleware"
	"pgcet-quiz/internal/service"
	"pgcet-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler exposes the quiz session state machine.
type SessionHandler struct {
	service   service.SessionService
	validator *validation.Validator
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

func sessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.LocalSessionID).(string)
	return id
}

// Create godoc
// @Summary Start a session
// @Description Creates a session waiting for an exam year
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionView
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	view, err := h.service.Create(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// Get godoc
// @Summary Get a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	view, err := h.service.Get(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// SelectYear godoc
// @Summary Choose the exam year
// @Description Loads and shuffles the questions of the year
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectYearRequest true "Year"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /sessions/{id}/year [post]
func (h *SessionHandler) SelectYear(c *fiber.Ctx) error {
	var req dto.SelectYearRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.Struct(req); len(errs) > 0 {
		return errs
	}

	view, err := h.service.SelectYear(c.UserContext(), sessionID(c), req.Year)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// SelectOption godoc
// @Summary Select an option
// @Description Marks an option letter as the pending answer of the current question
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectOptionRequest true "Option letter"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/select [post]
func (h *SessionHandler) SelectOption(c *fiber.Ctx) error {
	var req dto.SelectOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.Struct(req); len(errs) > 0 {
		return errs
	}
	letter, err := domain.ParseOptionLetter(req.Option)
	if err != nil {
		return domain.NewInvalidInputError(err.Error())
	}

	view, err := h.service.SelectOption(c.UserContext(), sessionID(c), letter)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Submit godoc
// @Summary Submit the selection
// @Description Grades the pending selection and reveals the correct option
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sessions/{id}/submit [post]
func (h *SessionHandler) Submit(c *fiber.Ctx) error {
	view, err := h.service.Submit(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Advance godoc
// @Summary Next question
// @Description Moves to the next question or finishes the session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionView
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sessions/{id}/advance [post]
func (h *SessionHandler) Advance(c *fiber.Ctx) error {
	view, err := h.service.Advance(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Restart godoc
// @Summary Restart a session
// @Description Discards progress and waits for a new exam year
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/restart [post]
func (h *SessionHandler) Restart(c *fiber.Ctx) error {
	view, err := h.service.Restart(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}
