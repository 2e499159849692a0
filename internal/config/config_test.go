package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "pgcet-quiz.db", cfg.GetDSN())
	assert.Equal(t, SchemaAttempt, cfg.Quiz.Schema)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "0 2 * * *", cfg.Scheduler.Spec)
	assert.Equal(t, 4, cfg.Ingest.Concurrency)
	assert.False(t, cfg.Stats.WrongOnly)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUIZ_SCHEMA", "answer")
	t.Setenv("STATS_WRONG_ONLY", "true")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, SchemaAnswer, cfg.Quiz.Schema)
	assert.True(t, cfg.Stats.WrongOnly)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"sqlite attempt", Config{DB: DBConfig{Driver: DriverSQLite}, Quiz: QuizConfig{Schema: SchemaAttempt}}, false},
		{"oracle answer", Config{DB: DBConfig{Driver: DriverOracle}, Quiz: QuizConfig{Schema: SchemaAnswer}}, false},
		{"unknown driver", Config{DB: DBConfig{Driver: "postgres"}, Quiz: QuizConfig{Schema: SchemaAttempt}}, true},
		{"unknown schema", Config{DB: DBConfig{Driver: DriverMySQL}, Quiz: QuizConfig{Schema: "mixed"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, tt.cfg.Ingest.Concurrency, 1)
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{DB: DBConfig{Driver: DriverOracle, User: "u", Password: "p", Host: "h", Port: 1521, DBName: "QUIZ"}}
	assert.Equal(t, "oracle://u:p@h:1521/QUIZ", cfg.GetDSN())

	cfg.DB.Driver = DriverMySQL
	cfg.DB.Port = 3306
	assert.Equal(t, "u:p@tcp(h:3306)/QUIZ?parseTime=true&multiStatements=true", cfg.GetDSN())
}
