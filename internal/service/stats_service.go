package service

import (
	"context"

	"pgcet-quiz/internal/config"
	"pgcet-quiz/internal/domain"
	"pgcet-quiz/internal/dto"
	"pgcet-quiz/internal/logger"

	"go.uber.org/zap"
)

// StatsService reports recorded answers per day.
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
	ListAttempts(ctx context.Context, limit int) (*dto.AttemptsResponse, error)
}

type statsService struct {
	attempts  domain.AttemptRepository
	schema    string
	wrongOnly bool
}

func NewStatsService(attempts domain.AttemptRepository, cfg *config.Config) StatsService {
	return &statsService{
		attempts:  attempts,
		schema:    cfg.Quiz.Schema,
		wrongOnly: cfg.Stats.WrongOnly,
	}
}

// GetStats aggregates the answers of the configured schema. No answers yield no rows.
func (s *statsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	var (
		details []domain.AnswerDetail
		err     error
	)
	if s.schema == config.SchemaAnswer {
		details, err = s.attempts.ListAnswerDetails(ctx)
	} else {
		details, err = s.attempts.ListResponseDetails(ctx)
	}
	if err != nil {
		logger.Get().Error("Failed to load answers for stats", zap.String("schema", s.schema), zap.Error(err))
		return nil, domain.NewFetchError("failed to load answers", err)
	}

	if s.wrongOnly {
		details = domain.OnlyWrong(details)
	}
	return &dto.StatsResponse{
		Schema:    s.schema,
		WrongOnly: s.wrongOnly,
		Rows:      toStatsRowViews(domain.AggregateStats(details)),
	}, nil
}

func (s *statsService) ListAttempts(ctx context.Context, limit int) (*dto.AttemptsResponse, error) {
	attempts, err := s.attempts.ListAttempts(ctx, limit)
	if err != nil {
		logger.Get().Error("Failed to list attempts", zap.Error(err))
		return nil, domain.NewFetchError("failed to load attempts", err)
	}
	views := make([]dto.AttemptView, 0, len(attempts))
	for _, a := range attempts {
		views = append(views, toAttemptView(a))
	}
	return &dto.AttemptsResponse{Attempts: views}, nil
}
