package main

import (
	"context"
	"fmt" // For initial error printing before logger is up
	"os"
	"os/signal"
	"syscall"

	"pgcet-quiz/internal/adapter/scraper"
	"pgcet-quiz/internal/config"
	"pgcet-quiz/internal/database"
	"pgcet-quiz/internal/logger"
	"pgcet-quiz/internal/repository"
	"pgcet-quiz/internal/service"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Get().Info("Ingestion run starting up...", zap.Int("sources", len(cfg.Ingest.Sources)))
	if len(cfg.Ingest.Sources) == 0 {
		logger.Get().Warn("No ingest.sources configured, nothing to do")
		return
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		logger.Get().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.DB.Driver == config.DriverSQLite {
		if err := database.Migrate(db.DB, cfg.DB.Driver, database.Up); err != nil {
			logger.Get().Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	questionRepo := repository.NewSQLXQuestionRepository(db)
	ingestService := service.NewIngestService(scraper.New(nil, cfg.Ingest.Timeout), questionRepo, cfg)

	report, err := ingestService.Run(ctx)
	if err != nil {
		logger.Get().Error("Ingestion run failed", zap.Error(err))
		os.Exit(1)
	}
	for _, src := range report.Sources {
		logger.Get().Info("Source ingested",
			zap.String("source_url", src.URL),
			zap.Int("questions", src.Questions),
			zap.Int("dropped", src.Dropped),
		)
	}
	fmt.Printf("Inserted %d, updated %d, dropped %d\n", report.Inserted, report.Updated, report.Dropped)
}
