package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/services"
)

const defaultLogListDays = 7

type LogHandler struct {
	svc *services.LogService
	now Clock
}

func NewLogHandler(svc *services.LogService, now Clock) *LogHandler {
	if now == nil {
		now = time.Now
	}
	return &LogHandler{
		svc: svc,
		now: now,
	}
}

type createLogRequest struct {
	Kind          string  `json:"kind" binding:"required"`
	LogDate       string  `json:"log_date" binding:"required"`
	LogTime       string  `json:"log_time"`
	Calories      float64 `json:"calories"`
	ProteinG      float64 `json:"protein_g"`
	CarbsG        float64 `json:"carbs_g"`
	FatG          float64 `json:"fat_g"`
	FiberG        float64 `json:"fiber_g"`
	SugarG        float64 `json:"sugar_g"`
	VolumeMl      float64 `json:"volume_ml"`
	AmountMg      float64 `json:"amount_mg"`
	TotalVolume   float64 `json:"total_volume"`
	DurationHours float64 `json:"duration_hours"`
	WeightKg      float64 `json:"weight_kg"`
	Notes         string  `json:"notes"`
}

func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.POST("", h.Create)
		logs.GET("", h.List)
		logs.GET("/:id", h.Get)
		logs.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary      Record a log entry
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        entry  body      createLogRequest  true  "Log entry"
// @Success      201    {object}  domain.LogEntry
// @Failure      400    {object}  errorResponse
// @Security     BearerAuth
// @Router       /logs [post]
func (h *LogHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req createLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	entry, err := h.svc.Create(c.Request.Context(), services.CreateLogInput{
		UserID:        userID,
		Kind:          req.Kind,
		LogDate:       req.LogDate,
		LogTime:       req.LogTime,
		Calories:      req.Calories,
		ProteinG:      req.ProteinG,
		CarbsG:        req.CarbsG,
		FatG:          req.FatG,
		FiberG:        req.FiberG,
		SugarG:        req.SugarG,
		VolumeMl:      req.VolumeMl,
		AmountMg:      req.AmountMg,
		TotalVolume:   req.TotalVolume,
		DurationHours: req.DurationHours,
		WeightKg:      req.WeightKg,
		Notes:         req.Notes,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// List godoc
// @Summary      List log entries
// @Tags         logs
// @Produce      json
// @Param        kind  query     string  false  "meal, hydration, caffeine, workout, sleep or body_weight"
// @Param        from  query     string  false  "YYYY-MM-DD, defaults to 6 days before to"
// @Param        to    query     string  false  "YYYY-MM-DD, defaults to today"
// @Success      200   {array}   domain.LogEntry
// @Security     BearerAuth
// @Router       /logs [get]
func (h *LogHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	to := c.Query("to")
	if to == "" {
		to = h.now().UTC().Format(domain.DateLayout)
	}
	from := c.Query("from")
	if from == "" {
		end, err := time.Parse(domain.DateLayout, to)
		if err != nil {
			handleError(c, domain.ErrInvalidDateRange)
			return
		}
		from = end.AddDate(0, 0, -(defaultLogListDays - 1)).Format(domain.DateLayout)
	}

	entries, err := h.svc.List(c.Request.Context(), services.ListLogsInput{
		UserID: userID,
		Kind:   c.Query("kind"),
		From:   from,
		To:     to,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *LogHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Delete godoc
// @Summary      Delete a log entry
// @Tags         logs
// @Param        id   path  string  true  "Entry id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /logs/{id} [delete]
func (h *LogHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
