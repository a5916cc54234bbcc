package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
	now Clock
}

func NewStatsHandler(svc *services.StatsService, now Clock) *StatsHandler {
	if now == nil {
		now = time.Now
	}
	return &StatsHandler{svc: svc, now: now}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats/weekly", h.GetWeeklyStats)
}

// GetWeeklyStats godoc
// @Summary      Totals, averages and calorie adherence over a date range
// @Tags         stats
// @Produce      json
// @Param        start_date  query     string  false  "YYYY-MM-DD, defaults to 6 days before end_date"
// @Param        end_date    query     string  false  "YYYY-MM-DD, defaults to today"
// @Success      200         {object}  domain.WeeklyStats
// @Failure      400         {object}  errorResponse
// @Security     BearerAuth
// @Router       /stats/weekly [get]
func (h *StatsHandler) GetWeeklyStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	endDate := c.Query("end_date")
	if endDate == "" {
		endDate = h.now().UTC().Format(domain.DateLayout)
	}

	startDate := c.Query("start_date")
	if startDate == "" {
		end, err := time.Parse(domain.DateLayout, endDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid end_date format, expected YYYY-MM-DD"})
			return
		}
		startDate = end.AddDate(0, 0, -6).Format(domain.DateLayout)
	}

	stats, err := h.svc.GetWeeklyStats(c.Request.Context(), domain.StatsInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
