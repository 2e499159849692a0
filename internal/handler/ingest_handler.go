package handler

import (
	"pgcet-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IngestHandler triggers a question ingestion run.
type IngestHandler struct {
	service service.IngestService
}

func NewIngestHandler(service service.IngestService) *IngestHandler {
	return &IngestHandler{service: service}
}

// FetchQuestions godoc
// @Summary Ingest questions
// @Description Scrapes the configured sources and upserts their questions
// @Tags ingestion
// @Produce json
// @Success 200 {object} dto.IngestResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fetch-questions [get]
// @Router /fetch-questions [post]
func (h *IngestHandler) FetchQuestions(c *fiber.Ctx) error {
	resp, err := h.service.Run(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
