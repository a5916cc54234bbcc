package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/config"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "insights.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db), "migrations must be re-runnable")
	return db
}

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	_ = godotenv.Load("../../../.env")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "insights_user"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "insights_db"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db, err := OpenPostgres(ctx, dsn)
	if err != nil {
		t.Skipf("Database connection failed (skipping integration tests): %v", err)
	}
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func TestSQLRepositories_SQLite(t *testing.T) {
	db := setupSQLite(t)
	runLogRepositorySuite(t, NewSQLLogRepository(db))
	runGoalRepositorySuite(t, NewSQLGoalRepository(db))
}

func TestSQLRepositories_Postgres(t *testing.T) {
	db := setupPostgres(t)
	runLogRepositorySuite(t, NewSQLLogRepository(db))
	runGoalRepositorySuite(t, NewSQLGoalRepository(db))
}

func runLogRepositorySuite(t *testing.T, repo *SQLLogRepository) {
	ctx := context.Background()
	uid := uuid.NewString()

	breakfast := domain.NewLogEntry(uid, domain.KindMeal, "2024-03-01", "08:00")
	breakfast.Calories = 520.5
	breakfast.ProteinG = 31
	breakfast.SugarG = 12
	breakfast.Notes = "oats"

	lateSnack := domain.NewLogEntry(uid, domain.KindMeal, "2024-03-01", "21:15")
	lateSnack.Calories = 300

	water := domain.NewLogEntry(uid, domain.KindHydration, "2024-03-02", "")
	water.VolumeMl = 750

	for _, e := range []*domain.LogEntry{lateSnack, breakfast, water} {
		require.NoError(t, repo.Create(ctx, e))
	}

	t.Run("Create and read back", func(t *testing.T) {
		got, err := repo.GetByID(ctx, breakfast.ID)
		require.NoError(t, err)

		assert.Equal(t, uid, got.UserID)
		assert.Equal(t, domain.KindMeal, got.Kind)
		assert.Equal(t, "2024-03-01", got.LogDate)
		require.NotNil(t, got.LogTime)
		assert.Equal(t, "08:00", *got.LogTime)
		assert.Equal(t, 520.5, got.Calories)
		assert.Equal(t, "oats", got.Notes)
		assert.WithinDuration(t, breakfast.CreatedAt, got.CreatedAt, time.Second)
		assert.Nil(t, got.DeletedAt)

		gotWater, err := repo.GetByID(ctx, water.ID)
		require.NoError(t, err)
		assert.Nil(t, gotWater.LogTime)
	})

	t.Run("Duplicate id conflicts", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(ctx, breakfast), domain.ErrLogConflict)
	})

	t.Run("Fetch by kind and inclusive range", func(t *testing.T) {
		meals, err := repo.FetchLogs(ctx, uid, domain.KindMeal, "2024-03-01", "2024-03-02")
		require.NoError(t, err)
		require.Len(t, meals, 2)
		assert.Equal(t, breakfast.ID, meals[0].ID)

		hydration, err := repo.FetchLogs(ctx, uid, domain.KindHydration, "2024-03-02", "2024-03-02")
		require.NoError(t, err)
		require.Len(t, hydration, 1)
		assert.Equal(t, 750.0, hydration[0].VolumeMl)

		empty, err := repo.FetchLogs(ctx, uid, domain.KindCaffeine, "2024-03-01", "2024-03-31")
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})

	t.Run("Active users", func(t *testing.T) {
		users, err := repo.ListActiveUsers(ctx, "2024-03-02")
		require.NoError(t, err)
		assert.Contains(t, users, uid)

		users, err = repo.ListActiveUsers(ctx, "2024-03-03")
		require.NoError(t, err)
		assert.NotContains(t, users, uid)
	})

	t.Run("Soft delete", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, lateSnack.ID, "someone-else"), domain.ErrLogNotFound)
		require.NoError(t, repo.Delete(ctx, lateSnack.ID, uid))

		_, err := repo.GetByID(ctx, lateSnack.ID)
		assert.ErrorIs(t, err, domain.ErrLogNotFound)

		meals, err := repo.FetchLogs(ctx, uid, domain.KindMeal, "2024-03-01", "2024-03-01")
		require.NoError(t, err)
		assert.Len(t, meals, 1)

		var deleted int
		query := repo.db.Rebind("SELECT COUNT(*) FROM log_entries WHERE id = ? AND deleted_at IS NOT NULL")
		require.NoError(t, repo.db.Get(&deleted, query, lateSnack.ID))
		assert.Equal(t, 1, deleted, "row must remain with deleted_at set")

		assert.ErrorIs(t, repo.Delete(ctx, lateSnack.ID, uid), domain.ErrLogNotFound)
	})
}

func runGoalRepositorySuite(t *testing.T, repo *SQLGoalRepository) {
	ctx := context.Background()
	uid := uuid.NewString()

	t.Run("Upsert keeps one row per type", func(t *testing.T) {
		first, err := domain.NewGoal(uid, domain.GoalProtein, 140)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, first))

		second, err := domain.NewGoal(uid, domain.GoalProtein, 165)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, second))

		cal, err := domain.NewGoal(uid, domain.GoalDailyCalories, 2400)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, cal))

		goals, err := repo.ListActive(ctx, uid)
		require.NoError(t, err)
		require.Len(t, goals, 2)
		assert.Equal(t, domain.GoalDailyCalories, goals[0].Type)
		assert.Equal(t, 2400.0, goals[0].TargetValue)
		assert.Equal(t, domain.GoalProtein, goals[1].Type)
		assert.Equal(t, 165.0, goals[1].TargetValue)
	})

	t.Run("Unknown user has no goals", func(t *testing.T) {
		goals, err := repo.ListActive(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, goals)
	})
}

func TestOpen_SQLiteFromConfig(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "open.db"),
	})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, DriverSQLite, db.DriverName())

	var tables int
	require.NoError(t, db.GetContext(ctx, &tables,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('log_entries', 'goals')`))
	assert.Equal(t, 2, tables)
}
