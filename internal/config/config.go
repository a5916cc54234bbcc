// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	JWTSecret string
	JWTIssuer string

	Port         string
	RateLimit    int
	RateWindow   time.Duration
	SnapshotTTL  time.Duration
	WarmInterval time.Duration
	WarmDays     int
	DefaultTZ    *time.Location
}

const (
	defaultRateWindow   = time.Minute
	defaultSnapshotTTL  = 30 * time.Minute
	defaultWarmInterval = 15 * time.Minute
)

// Load reads .env when present and then the process environment, which wins.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:   strings.ToLower(getEnvString("DB_DRIVER", DriverPostgres)),
		DBHost:     getEnvString("DB_HOST", "localhost"),
		DBPort:     getEnvString("DB_PORT", "5432"),
		DBUser:     getEnvString("DB_USER", "user"),
		DBPassword: getEnvString("DB_PASSWORD", "password"),
		DBName:     getEnvString("DB_NAME", "nutrition_db"),
		SQLitePath: getEnvString("SQLITE_PATH", "nutrition.db"),

		RedisHost:     getEnvString("REDIS_HOST", ""),
		RedisPort:     getEnvString("REDIS_PORT", "6379"),
		RedisPassword: getEnvString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		JWTSecret: getEnvString("JWT_SECRET", ""),
		JWTIssuer: getEnvString("JWT_ISSUER", "nutrition-insights"),

		Port:         getEnvString("PORT", "8080"),
		RateLimit:    getEnvInt("RATE_LIMIT", 100),
		RateWindow:   getEnvDuration("RATE_WINDOW", defaultRateWindow),
		SnapshotTTL:  getEnvDuration("SNAPSHOT_TTL", defaultSnapshotTTL),
		WarmInterval: getEnvDuration("WARM_INTERVAL", defaultWarmInterval),
		WarmDays:     getEnvInt("WARM_DAYS", 30),
	}

	tz := getEnvString("DEFAULT_TZ", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("config: invalid DEFAULT_TZ %q: %w", tz, err)
	}
	cfg.DefaultTZ = loc

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("config: unsupported DB_DRIVER %q (postgres or sqlite)", cfg.DBDriver)
	}

	return cfg, nil
}

// PostgresDSN is only meaningful when DBDriver is postgres.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("90s", "15m") or bare seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
