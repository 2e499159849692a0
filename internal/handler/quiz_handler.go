package handler

import (
	"pgcet-quiz/internal/middleware"
	"pgcet-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler serves the read-only question bank endpoints.
type QuizHandler struct {
	service service.QuestionService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuestionService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the question store is reachable and how many questions it holds
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /health [get]
func (h *QuizHandler) Health(c *fiber.Ctx) error {
	resp, err := h.service.Health(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListYears godoc
// @Summary List exam years
// @Description Returns every year that has at least one question, oldest first
// @Tags questions
// @Produce json
// @Success 200 {object} dto.YearsResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /years [get]
func (h *QuizHandler) ListYears(c *fiber.Ctx) error {
	resp, err := h.service.ListYears(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListLatest godoc
// @Summary Latest questions
// @Description Returns the most recently fetched questions without their answers
// @Tags questions
// @Produce json
// @Param limit query int false "Number of questions (1-100)" default(20)
// @Success 200 {object} dto.LatestQuestionsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /questions/latest [get]
func (h *QuizHandler) ListLatest(c *fiber.Ctx) error {
	limit, _ := c.Locals(middleware.LocalLimit).(int)
	resp, err := h.service.ListLatest(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
