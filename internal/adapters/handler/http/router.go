package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/adapters/handler/http/middleware"
)

const (
	defaultRateLimit  = 100
	defaultRateWindow = time.Minute
)

type RouterDependencies struct {
	LogHandler       *LogHandler
	GoalHandler      *GoalHandler
	StatsHandler     *StatsHandler
	AnalyticsHandler *AnalyticsHandler
	Tokens           middleware.TokenValidator
	DB               *sqlx.DB
	Redis            *redis.Client
	StartTime        time.Time
	RateLimit        int
	RateWindow       time.Duration
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		if deps.DB == nil || deps.DB.PingContext(c.Request.Context()) != nil {
			dbStatus = "unreachable"
		}

		// Redis is optional; only a configured but unreachable one degrades health.
		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if deps.Redis.Ping(c.Request.Context()).Err() != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode := 200
		if dbStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = 503
		}

		c.JSON(statusCode, gin.H{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	if deps.Redis != nil {
		limit, window := deps.RateLimit, deps.RateWindow
		if limit <= 0 {
			limit = defaultRateLimit
		}
		if window <= 0 {
			window = defaultRateWindow
		}
		protected.Use(middleware.RateLimiterMiddleware(deps.Redis, limit, window))
	}
	{
		deps.LogHandler.RegisterRoutes(protected)
		deps.GoalHandler.RegisterRoutes(protected)
		deps.StatsHandler.RegisterRoutes(protected)
		deps.AnalyticsHandler.RegisterRoutes(protected)
	}

	return router
}
