package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/adapters/cache"
	adapterHTTP "github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/adapters/handler/http"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/adapters/repository"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/config"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/services"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/workers"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/scheduler"
)

const tokenDuration = 24 * time.Hour

// application is the fully wired service. Background work only runs after Start.
type application struct {
	db        *sqlx.DB
	redis     *redis.Client
	worker    *workers.SnapshotWorker
	scheduler *scheduler.Scheduler
	router    *gin.Engine
}

func newApplication(ctx context.Context, cfg *config.Config, startTime time.Time) (*application, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	db, err := repository.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("Database connected (%s).", cfg.DBDriver)

	app := &application{db: db}

	var goalRepo domain.GoalRepository = repository.NewSQLGoalRepository(db)
	logRepo := repository.NewSQLLogRepository(db)

	var snapshotCache domain.SnapshotCache
	if cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Printf("[CACHE] Redis unavailable, running without cache: %v", err)
		} else {
			app.redis = rdb
			snapshotCache = cache.NewSnapshotCache(rdb, cfg.SnapshotTTL)
			goalRepo = repository.NewCachedGoalRepository(goalRepo, rdb, cfg.SnapshotTTL)
		}
	}

	aggregator := services.NewAggregator(logRepo, snapshotCache)

	var queue services.SnapshotQueue
	if snapshotCache != nil {
		app.worker = workers.NewSnapshotWorker(aggregator)
		app.scheduler = scheduler.New(logRepo, app.worker, cfg.WarmInterval, cfg.WarmDays, cfg.DefaultTZ)
		queue = app.worker
	}

	goalSvc := services.NewGoalService(goalRepo)
	insights := services.NewInsightGenerator(aggregator, goalSvc)
	habits := services.NewHabitDetector(aggregator)
	correlations := services.NewCorrelationEngine(aggregator)
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, tokenDuration)

	app.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		LogHandler:   adapterHTTP.NewLogHandler(services.NewLogService(logRepo, snapshotCache, queue), nil),
		GoalHandler:  adapterHTTP.NewGoalHandler(goalSvc),
		StatsHandler: adapterHTTP.NewStatsHandler(services.NewStatsService(aggregator, goalSvc), nil),
		AnalyticsHandler: adapterHTTP.NewAnalyticsHandler(adapterHTTP.AnalyticsHandlerConfig{
			Aggregator:   aggregator,
			Insights:     insights,
			Habits:       habits,
			Correlations: correlations,
			Dashboard:    services.NewDashboardService(insights, habits, correlations),
			Location:     cfg.DefaultTZ,
		}),
		Tokens:     tokens,
		DB:         db,
		Redis:      app.redis,
		StartTime:  startTime,
		RateLimit:  cfg.RateLimit,
		RateWindow: cfg.RateWindow,
	})

	return app, nil
}

func (a *application) Start(ctx context.Context) error {
	if a.worker != nil {
		a.worker.Start(ctx)
	}
	if a.scheduler != nil {
		if err := a.scheduler.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *application) Close() {
	if a.scheduler != nil {
		if err := a.scheduler.Shutdown(); err != nil {
			log.Printf("[SCHEDULER] Shutdown error: %v", err)
		}
	}
	if a.redis != nil {
		a.redis.Close()
	}
	a.db.Close()
}
