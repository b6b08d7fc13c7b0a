package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	db := Database{Driver: "postgres", User: "app", Password: "secret", URL: "db:5432/perf"}
	assert.Equal(t, "postgres://app:secret@db:5432/perf", BuildDSN(db))

	db.Password = ""
	assert.Equal(t, "postgres://app@db:5432/perf", BuildDSN(db))
}

func TestNewConfigReadsEnvironment(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("QUERY_TIMEOUT", "5s")
	t.Setenv("DAILY_REPORT_ENABLED", "true")
	t.Setenv("DATABASE_PASSWORD", "pw")

	cfg, _, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Server.QueryTimeout)
	assert.True(t, cfg.DailyReport.Enabled)
	assert.Equal(t, "preceding", cfg.DailyReport.CompareMode)
	assert.Equal(t, "campaign_performance", cfg.Metrics.Namespace)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "postgres://postgres:pw@localhost:5432/campaign_performance?sslmode=disable", cfg.Database.DSN)
}

func TestLoggerOptions(t *testing.T) {
	opts := Log{Level: "warn", File: "/tmp/api.log", MaxSizeMB: 10, MaxBackups: 2, MaxAgeDays: 3, JSON: true}.LoggerOptions()

	assert.Equal(t, "warn", opts.Level)
	assert.Equal(t, "/tmp/api.log", opts.File)
	assert.Equal(t, 10, opts.MaxSizeMB)
	assert.Equal(t, 2, opts.MaxBackups)
	assert.Equal(t, 3, opts.MaxAgeDays)
	assert.True(t, opts.JSON)
}
