package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "PORT", "REDIS_HOST", "RATE_WINDOW", "DEFAULT_TZ", "SNAPSHOT_TTL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.Equal(t, 30*time.Minute, cfg.SnapshotTTL)
	assert.Equal(t, time.UTC, cfg.DefaultTZ)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/insights.db")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("RATE_LIMIT", "20")
	t.Setenv("RATE_WINDOW", "90")
	t.Setenv("WARM_INTERVAL", "5m")
	t.Setenv("DEFAULT_TZ", "Europe/Rome")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/insights.db", cfg.SQLitePath)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 20, cfg.RateLimit)
	assert.Equal(t, 90*time.Second, cfg.RateWindow)
	assert.Equal(t, 5*time.Minute, cfg.WarmInterval)
	assert.Equal(t, "Europe/Rome", cfg.DefaultTZ.String())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("timezone", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "")
		t.Setenv("DEFAULT_TZ", "Nowhere/Special")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("malformed numbers fall back", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "")
		t.Setenv("DEFAULT_TZ", "")
		t.Setenv("RATE_LIMIT", "lots")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.RateLimit)
	})
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5433", DBName: "n"}
	assert.Equal(t, "postgres://u:p@db:5433/n?sslmode=disable", cfg.PostgresDSN())
}
