package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pgcet-quiz/internal/config"
	"pgcet-quiz/internal/dto"
	"pgcet-quiz/internal/logger"

	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// trigger calls the ingestion endpoint once and logs its report.
func trigger(ctx context.Context, client *http.Client, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("invalid target url: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return fmt.Errorf("ingestion failed with status %d: %s", resp.StatusCode, body.Error)
	}

	var report dto.IngestResponse
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return fmt.Errorf("failed to decode ingestion report: %w", err)
	}
	logger.Get().Info("Scheduled ingestion finished",
		zap.Int("inserted", report.Inserted),
		zap.Int("updated", report.Updated),
		zap.Int("dropped", report.Dropped),
	)
	return nil
}

func main() {
	once := pflag.Bool("once", false, "trigger ingestion once and exit")
	pflag.String("scheduler.spec", "0 2 * * *", "cron expression")
	pflag.String("scheduler.target_url", "http://localhost:8090/api/fetch-questions", "ingestion endpoint")
	pflag.Parse()

	v := viper.GetViper()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatalf("Failed to bind flags: %v", err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	client := &http.Client{Timeout: 5 * time.Minute}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *once {
		if err := trigger(ctx, client, cfg.Scheduler.TargetURL); err != nil {
			logger.Get().Error("Ingestion trigger failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	c := cron.New(cron.WithLocation(time.UTC))
	_, err = c.AddFunc(cfg.Scheduler.Spec, func() {
		logger.Get().Info("Triggering scheduled ingestion", zap.String("target_url", cfg.Scheduler.TargetURL))
		if err := trigger(ctx, client, cfg.Scheduler.TargetURL); err != nil {
			logger.Get().Error("Scheduled ingestion failed", zap.Error(err))
		}
	})
	if err != nil {
		logger.Get().Fatal("Invalid scheduler.spec", zap.String("spec", cfg.Scheduler.Spec), zap.Error(err))
	}

	c.Start()
	logger.Get().Info("Scheduler started", zap.String("spec", cfg.Scheduler.Spec))
	<-ctx.Done()

	logger.Get().Info("Stopping scheduler...")
	<-c.Stop().Done()
}
