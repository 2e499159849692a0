// @title PGCET Quiz API
// @version 1.0
// @description Year-based multiple-choice practice quiz with daily statistics.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "pgcet-quiz/cmd/api/docs"
	"pgcet-quiz/internal/adapter"
	"pgcet-quiz/internal/adapter/scraper"
	"pgcet-quiz/internal/cache"
	"pgcet-quiz/internal/config"
	"pgcet-quiz/internal/database"
	"pgcet-quiz/internal/domain"
	"pgcet-quiz/internal/dto"
	"pgcet-quiz/internal/handler"
	"pgcet-quiz/internal/logger"
	"pgcet-quiz/internal/middleware"
	"pgcet-quiz/internal/repository"
	"pgcet-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// newCache returns the redis cache when an address is configured and a
// process-local one otherwise.
func newCache(cfg *config.Config) (domain.Cache, func()) {
	if cfg.Redis.Address == "" {
		logger.Get().Warn("redis.address is empty, sessions are kept in memory")
		memCache := adapter.NewMemoryCacheAdapter()
		return memCache, memCache.Close
	}
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Get().Fatal("Failed to connect to Redis", zap.Error(err))
	}
	logger.Get().Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	return adapter.NewRedisCacheAdapter(redisClient), func() { redisClient.Close() }
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewDB(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// The embedded sqlite store is migrated on start; server databases use cmd/migrate.
	if cfg.DB.Driver == config.DriverSQLite {
		if err := database.Migrate(db.DB, cfg.DB.Driver, database.Up); err != nil {
			appLogger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Initialize repositories
	questionRepository := repository.NewSQLXQuestionRepository(db)
	attemptRepository := repository.NewSQLXAttemptRepository(db)

	sessionCache, closeCache := newCache(cfg)
	defer closeCache()
	sessionStore := adapter.NewCacheSessionStore(sessionCache)

	// Initialize services
	questionService := service.NewQuestionService(questionRepository)
	sessionService := service.NewSessionService(sessionStore, questionRepository, attemptRepository, cfg)
	statsService := service.NewStatsService(attemptRepository, cfg)
	ingestService := service.NewIngestService(scraper.New(nil, cfg.Ingest.Timeout), questionRepository, cfg)
	appLogger.Info("Services initialized",
		zap.String("schema", cfg.Quiz.Schema),
		zap.Bool("wrong_only", cfg.Stats.WrongOnly),
		zap.Int("ingest_sources", len(cfg.Ingest.Sources)),
	)

	// Initialize handlers
	handlers := handler.Handlers{
		Quiz:    handler.NewQuizHandler(questionService),
		Session: handler.NewSessionHandler(sessionService),
		Stats:   handler.NewStatsHandler(statsService),
		Ingest:  handler.NewIngestHandler(ingestService),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	// Scraping is expensive; the scheduler calls it once a day.
	ingestLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
			})
		},
	})
	handler.RegisterRoutes(app.Group("/api"), handlers, ingestLimiter)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
