package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/services"
)

const defaultHabitWindowDays = 30

type AnalyticsHandler struct {
	aggregator   *services.Aggregator
	insights     *services.InsightGenerator
	habits       *services.HabitDetector
	correlations *services.CorrelationEngine
	dashboard    *services.DashboardService
	now          Clock
	location     *time.Location
}

type AnalyticsHandlerConfig struct {
	Aggregator   *services.Aggregator
	Insights     *services.InsightGenerator
	Habits       *services.HabitDetector
	Correlations *services.CorrelationEngine
	Dashboard    *services.DashboardService
	Now          Clock
	Location     *time.Location
}

func NewAnalyticsHandler(cfg AnalyticsHandlerConfig) *AnalyticsHandler {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &AnalyticsHandler{
		aggregator:   cfg.Aggregator,
		insights:     cfg.Insights,
		habits:       cfg.Habits,
		correlations: cfg.Correlations,
		dashboard:    cfg.Dashboard,
		now:          cfg.Now,
		location:     cfg.Location,
	}
}

type habitResponse struct {
	domain.HabitPattern
	Severity string `json:"severity"`
}

type correlationResponse struct {
	domain.MetricCorrelation
	Strength string `json:"strength"`
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/snapshots", h.Snapshots)
	router.GET("/insights", h.Insights)
	router.GET("/habits", h.Habits)
	router.GET("/correlations", h.Correlation)
	router.GET("/correlations/all", h.AllCorrelations)
	router.GET("/dashboard", h.Dashboard)
}

// Snapshots godoc
// @Summary      Daily snapshots of a date range
// @Tags         analytics
// @Produce      json
// @Param        from  query     string  true  "YYYY-MM-DD"
// @Param        to    query     string  true  "YYYY-MM-DD"
// @Success      200   {array}   domain.DailySnapshot
// @Failure      400   {object}  errorResponse
// @Security     BearerAuth
// @Router       /snapshots [get]
func (h *AnalyticsHandler) Snapshots(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	r := domain.DateRange{From: c.Query("from"), To: c.Query("to")}
	dates := r.Dates()
	if len(dates) == 0 || len(dates) > services.MaxWindowDays {
		handleError(c, domain.ErrInvalidDateRange)
		return
	}

	snapshots, err := h.aggregator.Aggregate(c.Request.Context(), userID, r)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]domain.DailySnapshot, 0, len(dates))
	for _, d := range dates {
		if s, ok := snapshots[d]; ok {
			out = append(out, s)
			continue
		}
		out = append(out, domain.NewDailySnapshot(d))
	}

	c.JSON(http.StatusOK, out)
}

// Insights godoc
// @Summary      Prioritized insights for a day
// @Tags         analytics
// @Produce      json
// @Param        as_of  query     string  false  "RFC3339 instant or YYYY-MM-DD"
// @Param        tz     query     string  false  "IANA timezone"
// @Success      200    {array}   domain.Insight
// @Security     BearerAuth
// @Router       /insights [get]
func (h *AnalyticsHandler) Insights(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	asOf, err := resolveAsOf(c, h.now, h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	insights, err := h.insights.Generate(c.Request.Context(), userID, asOf)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

// Habits godoc
// @Summary      Habit patterns over a trailing window
// @Tags         analytics
// @Produce      json
// @Param        window_days  query     int     false  "1..366, default 30"
// @Param        as_of        query     string  false  "RFC3339 instant or YYYY-MM-DD"
// @Param        tz           query     string  false  "IANA timezone"
// @Success      200          {array}   habitResponse
// @Failure      400          {object}  errorResponse
// @Security     BearerAuth
// @Router       /habits [get]
func (h *AnalyticsHandler) Habits(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	asOf, err := resolveAsOf(c, h.now, h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	window, err := windowDays(c, defaultHabitWindowDays)
	if err != nil {
		handleError(c, err)
		return
	}

	patterns, err := h.habits.Detect(c.Request.Context(), userID, window, asOf)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]habitResponse, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, habitResponse{HabitPattern: p, Severity: domain.Severity(p.FrequencyScore)})
	}

	c.JSON(http.StatusOK, out)
}

// Correlation godoc
// @Summary      Pearson correlation between two daily metrics
// @Tags         analytics
// @Produce      json
// @Param        a            query     string  true   "Metric name"
// @Param        b            query     string  true   "Metric name"
// @Param        window_days  query     int     false  "1..366, default 30"
// @Success      200          {object}  correlationResponse
// @Failure      400          {object}  errorResponse
// @Security     BearerAuth
// @Router       /correlations [get]
func (h *AnalyticsHandler) Correlation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	asOf, err := resolveAsOf(c, h.now, h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	window, err := windowDays(c, defaultHabitWindowDays)
	if err != nil {
		handleError(c, err)
		return
	}

	corr, err := h.correlations.Correlate(c.Request.Context(), userID, c.Query("a"), c.Query("b"), window, asOf)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, correlationResponse{
		MetricCorrelation: *corr,
		Strength:          domain.CorrelationStrength(corr.CorrelationCoefficient),
	})
}

func (h *AnalyticsHandler) AllCorrelations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	asOf, err := resolveAsOf(c, h.now, h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	window, err := windowDays(c, defaultHabitWindowDays)
	if err != nil {
		handleError(c, err)
		return
	}

	all, err := h.correlations.CorrelateAll(c.Request.Context(), userID, window, asOf)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]correlationResponse, 0, len(all))
	for _, corr := range all {
		out = append(out, correlationResponse{
			MetricCorrelation: corr,
			Strength:          domain.CorrelationStrength(corr.CorrelationCoefficient),
		})
	}

	c.JSON(http.StatusOK, out)
}

// Dashboard godoc
// @Summary      Insights, habits and correlations in one call
// @Tags         analytics
// @Produce      json
// @Param        window_days  query     int     false  "1..366, default 30"
// @Param        as_of        query     string  false  "RFC3339 instant or YYYY-MM-DD"
// @Param        tz           query     string  false  "IANA timezone"
// @Success      200          {object}  services.Dashboard
// @Security     BearerAuth
// @Router       /dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	asOf, err := resolveAsOf(c, h.now, h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	window, err := windowDays(c, services.DefaultDashboardWindowDays)
	if err != nil {
		handleError(c, err)
		return
	}

	d, err := h.dashboard.Build(c.Request.Context(), userID, window, asOf)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}
