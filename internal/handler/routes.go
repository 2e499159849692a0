package handler

import (
	"pgcet-quiz/internal/middleware"
	"pgcet-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultLatestLimit  = 20
	defaultAttemptLimit = 50
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Quiz    *QuizHandler
	Session *SessionHandler
	Stats   *StatsHandler
	Ingest  *IngestHandler
}

// RegisterRoutes mounts the API on router. ingestGuards run in front of the
// ingestion endpoint, e.g. a rate limiter.
func RegisterRoutes(router fiber.Router, h Handlers, ingestGuards ...fiber.Handler) {
	vm := middleware.NewValidationMiddleware()

	router.Get("/health", h.Quiz.Health)
	router.Get("/years", h.Quiz.ListYears)
	router.Get("/questions/latest", vm.ValidateLimit(defaultLatestLimit, validation.MaxLatestLimit), h.Quiz.ListLatest)

	validID := vm.ValidateSessionID()
	router.Post("/sessions", h.Session.Create)
	router.Get("/sessions/:id", validID, h.Session.Get)
	router.Post("/sessions/:id/year", validID, h.Session.SelectYear)
	router.Post("/sessions/:id/select", validID, h.Session.SelectOption)
	router.Post("/sessions/:id/submit", validID, h.Session.Submit)
	router.Post("/sessions/:id/advance", validID, h.Session.Advance)
	router.Post("/sessions/:id/restart", validID, h.Session.Restart)

	router.Get("/stats", h.Stats.GetStats)
	router.Get("/attempts", vm.ValidateLimit(defaultAttemptLimit, validation.MaxAttemptLimit), h.Stats.ListAttempts)

	ingest := append(append([]fiber.Handler{}, ingestGuards...), h.Ingest.FetchQuestions)
	router.Get("/fetch-questions", ingest...)
	router.Post("/fetch-questions", ingest...)
}
