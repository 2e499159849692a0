package service

import (
	"context"
	"fmt"
	"time"

	"pgcet-quiz/internal/adapter/scraper"
	"pgcet-quiz/internal/config"
	"pgcet-quiz/internal/domain"
	"pgcet-quiz/internal/dto"
	"pgcet-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fetcher downloads and parses one source page.
type Fetcher interface {
	Fetch(ctx context.Context, src scraper.Source) (*scraper.Result, error)
}

// IngestService refreshes the question bank from the configured sources.
type IngestService interface {
	Run(ctx context.Context) (*dto.IngestResponse, error)
}

type ingestService struct {
	fetcher     Fetcher
	questions   domain.QuestionRepository
	sources     []scraper.Source
	concurrency int
	timeout     time.Duration
}

func NewIngestService(fetcher Fetcher, questions domain.QuestionRepository, cfg *config.Config) IngestService {
	sources := make([]scraper.Source, 0, len(cfg.Ingest.Sources))
	for _, s := range cfg.Ingest.Sources {
		sources = append(sources, scraper.Source{URL: s.URL, Year: s.Year})
	}
	concurrency := cfg.Ingest.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &ingestService{
		fetcher:     fetcher,
		questions:   questions,
		sources:     sources,
		concurrency: concurrency,
		timeout:     cfg.Ingest.Timeout,
	}
}

// Run scrapes every source and upserts what they yield. A failing source
// fails the whole run and nothing is written.
func (s *ingestService) Run(ctx context.Context) (*dto.IngestResponse, error) {
	start := time.Now()
	logger.Get().Info("Starting question ingestion", zap.Int("sources", len(s.sources)))

	results := make([]*scraper.Result, len(s.sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, src := range s.sources {
		g.Go(func() error {
			fetchCtx := gctx
			if s.timeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(gctx, s.timeout)
				defer cancel()
			}
			res, err := s.fetcher.Fetch(fetchCtx, src)
			if err != nil {
				logger.Get().Error("Failed to fetch source", zap.String("url", src.URL), zap.Error(err))
				return err
			}
			for _, gap := range res.Gaps {
				logger.Get().Debug("Dropped question block", zap.String("url", src.URL), zap.Error(gap))
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, domain.NewIngestionError("failed to fetch questions", err)
	}

	report := &dto.IngestResponse{Sources: make([]dto.SourceReport, 0, len(results))}
	var batch []*domain.Question
	index := make(map[string]int)
	for _, res := range results {
		report.Dropped += res.Dropped
		report.Sources = append(report.Sources, dto.SourceReport{
			URL:       res.URL,
			Questions: len(res.Questions),
			Dropped:   res.Dropped,
		})
		// A question appearing twice keeps the version seen last.
		for _, q := range res.Questions {
			hash := q.Hash()
			if i, ok := index[hash]; ok {
				batch[i] = q
				continue
			}
			index[hash] = len(batch)
			batch = append(batch, q)
		}
	}

	if len(batch) > 0 {
		inserted, updated, err := s.questions.UpsertQuestions(ctx, batch)
		if err != nil {
			logger.Get().Error("Failed to store questions", zap.Int("questions", len(batch)), zap.Error(err))
			return nil, domain.NewIngestionError(fmt.Sprintf("failed to store %d questions", len(batch)), err)
		}
		report.Inserted = inserted
		report.Updated = updated
	}

	logger.Get().Info("Question ingestion finished",
		zap.Int("inserted", report.Inserted),
		zap.Int("updated", report.Updated),
		zap.Int("dropped", report.Dropped),
		zap.Duration("elapsed", time.Since(start)),
	)
	return report, nil
}
