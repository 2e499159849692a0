package database

import (
	"testing"
	"testing/fstest"

	"pgcet-quiz/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_SQLiteMigrateUpAndDown(t *testing.T) {
	cfg := &config.Config{DB: config.DBConfig{Driver: config.DriverSQLite, Path: ":memory:"}}
	db, err := NewDB(cfg)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db.DB, config.DriverSQLite, Up))
	// A second run is a no-op.
	require.NoError(t, Migrate(db.DB, config.DriverSQLite, Up))

	for _, table := range []string{"questions", "answers", "quiz_attempts", "attempt_responses"} {
		var n int
		err := db.Get(&n, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		require.NoError(t, err)
		assert.Equal(t, 1, n, table)
	}

	require.NoError(t, Migrate(db.DB, config.DriverSQLite, Down))
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'questions'`))
	assert.Equal(t, 0, n)
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(&config.Config{DB: config.DBConfig{Driver: "postgres"}})
	assert.Error(t, err)
}

func TestMigrate_OracleDownRejected(t *testing.T) {
	err := Migrate(nil, config.DriverOracle, Down)
	assert.Error(t, err)
}

func TestSplitStatements(t *testing.T) {
	stmts := SplitStatements("CREATE TABLE a (x INT);\n\nCREATE INDEX i ON a (x);\n  ")
	assert.Equal(t, []string{"CREATE TABLE a (x INT)", "CREATE INDEX i ON a (x)"}, stmts)
	assert.Empty(t, SplitStatements("  \n"))
}

func TestRunMigrations_ExecutesUpFilesInOrder(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	fsys := fstest.MapFS{
		"m/000002_b.up.sql":   {Data: []byte("CREATE INDEX ib ON b (x);")},
		"m/000001_a.up.sql":   {Data: []byte("CREATE TABLE a (x INT);\nCREATE TABLE b (x INT);")},
		"m/000001_a.down.sql": {Data: []byte("DROP TABLE a;")},
	}

	mock.ExpectExec(`CREATE TABLE a \(x INT\)`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE b \(x INT\)`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX ib ON b \(x\)`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, RunMigrations(mockDB, fsys, "m"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_SkipsExistingObjects(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	fsys := fstest.MapFS{
		"m/000001_a.up.sql": {Data: []byte("CREATE TABLE a (x INT);CREATE TABLE c (x INT)")},
	}
	mock.ExpectExec(`CREATE TABLE a`).WillReturnError(assert.AnError)
	err = RunMigrations(mockDB, fsys, "m")
	assert.Error(t, err)

	mock2DB, mock2, err := sqlmock.New()
	require.NoError(t, err)
	defer mock2DB.Close()
	mock2.ExpectExec(`CREATE TABLE a`).WillReturnError(errORA955{})
	mock2.ExpectExec(`CREATE TABLE c`).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, RunMigrations(mock2DB, fsys, "m"))
	assert.NoError(t, mock2.ExpectationsWereMet())
}

type errORA955 struct{}

func (errORA955) Error() string { return "ORA-00955: name is already used by an existing object" }
