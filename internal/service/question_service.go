package service

import (
	"context"

	"pgcet-quiz/internal/domain"
	"pgcet-quiz/internal/dto"
	"pgcet-quiz/internal/logger"

	"go.uber.org/zap"
)

// QuestionService exposes read-only views of the question bank.
type QuestionService interface {
	Health(ctx context.Context) (*dto.HealthResponse, error)
	ListYears(ctx context.Context) (*dto.YearsResponse, error)
	ListLatest(ctx context.Context, limit int) (*dto.LatestQuestionsResponse, error)
}

type questionService struct {
	repo domain.QuestionRepository
}

func NewQuestionService(repo domain.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

// Health doubles as a store probe: it fails when the question bank cannot be read.
func (s *questionService) Health(ctx context.Context) (*dto.HealthResponse, error) {
	count, err := s.repo.CountQuestions(ctx)
	if err != nil {
		logger.Get().Error("Health check failed", zap.Error(err))
		return nil, domain.NewFetchError("question store unavailable", err)
	}
	return &dto.HealthResponse{Status: "ok", QuestionCount: count}, nil
}

func (s *questionService) ListYears(ctx context.Context) (*dto.YearsResponse, error) {
	years, err := s.repo.ListYears(ctx)
	if err != nil {
		logger.Get().Error("Failed to list years", zap.Error(err))
		return nil, domain.NewFetchError("failed to load years", err)
	}
	if years == nil {
		years = []int{}
	}
	return &dto.YearsResponse{Years: years}, nil
}

func (s *questionService) ListLatest(ctx context.Context, limit int) (*dto.LatestQuestionsResponse, error) {
	questions, err := s.repo.ListLatestQuestions(ctx, limit)
	if err != nil {
		logger.Get().Error("Failed to list latest questions", zap.Int("limit", limit), zap.Error(err))
		return nil, domain.NewFetchError("failed to load questions", err)
	}
	views := make([]dto.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, toQuestionView(q))
	}
	return &dto.LatestQuestionsResponse{Questions: views}, nil
}
