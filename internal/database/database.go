package database

import (
	"fmt"
	"strings"

	"pgcet-quiz/internal/config"
	"pgcet-quiz/internal/logger"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver
)

func init() {
	// go-ora registers as "oracle", which sqlx does not know; it takes :name placeholders.
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// NewDB opens the database selected by cfg.DB.Driver.
func NewDB(cfg *config.Config) (*sqlx.DB, error) {
	switch cfg.DB.Driver {
	case config.DriverOracle:
		return NewSQLXOracleDB(cfg.GetDSN())
	case config.DriverMySQL:
		return NewSQLXMySQLDB(cfg.GetDSN())
	case config.DriverSQLite:
		return NewSQLiteDB(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

func NewSQLXOracleDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("oracle", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}
	// Oracle reports unquoted identifiers in upper case.
	db.Mapper = reflectx.NewMapperTagFunc("db", strings.ToUpper, strings.ToUpper)

	logger.Get().Info("Connected to database", zap.String("driver", config.DriverOracle))
	return db, nil
}

func NewSQLXMySQLDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	logger.Get().Info("Connected to database", zap.String("driver", config.DriverMySQL))
	return db, nil
}

// NewSQLiteDB opens a SQLite file, or an in-memory database for ":memory:".
// SQLite serializes writers, so the pool is limited to one connection; this
// also keeps an in-memory database alive for the lifetime of the pool.
func NewSQLiteDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	logger.Get().Info("Connected to database", zap.String("driver", config.DriverSQLite), zap.String("path", path))
	return db, nil
}
