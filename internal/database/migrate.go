package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"pgcet-quiz/internal/config"
	"pgcet-quiz/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// Direction of a migration run.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Migrate brings the schema of db to the latest version (Up) or removes it (Down).
func Migrate(db *sql.DB, driver string, dir Direction) error {
	if driver == config.DriverOracle {
		if dir == Down {
			return errors.New("down migrations are not supported for oracle")
		}
		return RunMigrations(db, migrationsFS, "migrations/oracle")
	}

	m, src, err := newMigrator(db, driver)
	if err != nil {
		return err
	}
	// m.Close would also close db, which the caller still owns.
	defer src.Close()

	switch dir {
	case Down:
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate %s %s: %w", driver, dir, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", verr)
	}
	logger.Get().Info("Migrations completed",
		zap.String("driver", driver),
		zap.String("direction", string(dir)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

func newMigrator(db *sql.DB, driver string) (*migrate.Migrate, source.Driver, error) {
	src, err := iofs.New(migrationsFS, path.Join("migrations", driver))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open embedded migrations for %s: %w", driver, err)
	}

	var target migratedb.Driver
	switch driver {
	case config.DriverSQLite:
		target, err = sqlite.WithInstance(db, &sqlite.Config{})
	case config.DriverMySQL:
		target, err = mysql.WithInstance(db, &mysql.Config{})
	default:
		err = fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		src.Close()
		return nil, nil, fmt.Errorf("failed to prepare migration target: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		src.Close()
		return nil, nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, src, nil
}

// RunMigrations executes every *.up.sql file under dir in name order, one
// statement at a time. Objects that already exist are skipped so the run can
// be repeated.
func RunMigrations(db *sql.DB, fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.Exec(stmt); err != nil {
				if strings.Contains(err.Error(), "ORA-00955") {
					continue
				}
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}
	return nil
}

// SplitStatements splits a script on ';' and drops empty statements.
func SplitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
