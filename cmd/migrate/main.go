package main

import (
	"fmt"
	"log"

	"pgcet-quiz/internal/config"
	"pgcet-quiz/internal/database"
	"pgcet-quiz/internal/logger"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	direction := pflag.String("direction", string(database.Up), "migration direction: up or down")
	pflag.String("db.driver", config.DriverSQLite, "database driver: sqlite, oracle or mysql")
	pflag.String("db.path", "pgcet-quiz.db", "sqlite database file")
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
	l := logger.Get()
	defer logger.Sync()

	dir := database.Direction(*direction)
	if dir != database.Up && dir != database.Down {
		l.Fatal("Unknown migration direction", zap.String("direction", *direction))
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db.DB, cfg.DB.Driver, dir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	fmt.Printf("Migrations %s applied for %s\n", dir, cfg.DB.Driver)
}
