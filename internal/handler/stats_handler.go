package handler

import (
	"pgcet-quiz/internal/middleware"
	"pgcet-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler serves answer statistics.
type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats godoc
// @Summary Daily statistics
// @Description Answers grouped by calendar day (UTC), oldest day first
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	resp, err := h.service.GetStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListAttempts godoc
// @Summary Finished attempts
// @Description Attempts with their responses, newest first
// @Tags stats
// @Produce json
// @Param limit query int false "Number of attempts (1-500)" default(50)
// @Success 200 {object} dto.AttemptsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /attempts [get]
func (h *StatsHandler) ListAttempts(c *fiber.Ctx) error {
	limit, _ := c.Locals(middleware.LocalLimit).(int)
	resp, err := h.service.ListAttempts(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
