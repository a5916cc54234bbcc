package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/adapters/repository"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/config"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/services"
)

type engine struct {
	cfg          *config.Config
	insights     *services.InsightGenerator
	habits       *services.HabitDetector
	correlations *services.CorrelationEngine
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBDriver = config.DriverSQLite
		cfg.SQLitePath = dbPath
	}
	return cfg, nil
}

// withEngine opens the store for one command. The CLI reads the store
// directly, so no snapshot cache is involved.
func withEngine(ctx context.Context, run func(*engine) error) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("--user is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	aggregator := services.NewAggregator(repository.NewSQLLogRepository(db), nil)
	goals := services.NewGoalService(repository.NewSQLGoalRepository(db))

	return run(&engine{
		cfg:          cfg,
		insights:     services.NewInsightGenerator(aggregator, goals),
		habits:       services.NewHabitDetector(aggregator),
		correlations: services.NewCorrelationEngine(aggregator),
	})
}

// resolveAsOf applies --as-of and --tz the same way the API applies as_of and tz.
func resolveAsOf(defaultLoc *time.Location) (time.Time, error) {
	return domain.ParseAsOf(asOfArg, tzArg, time.Now(), defaultLoc)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
