package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/services"
)

type GoalHandler struct {
	svc *services.GoalService
}

func NewGoalHandler(svc *services.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

type setGoalRequest struct {
	TargetValue float64 `json:"target_value" binding:"required"`
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/goals", h.Resolve)
	router.PUT("/goals/:type", h.Set)
}

// Resolve godoc
// @Summary      Active goal targets, defaults filled in
// @Tags         goals
// @Produce      json
// @Success      200  {object}  map[string]float64
// @Security     BearerAuth
// @Router       /goals [get]
func (h *GoalHandler) Resolve(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	targets, err := h.svc.Resolve(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, targets)
}

// Set godoc
// @Summary      Set a goal target
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        type  path      string          true  "daily_calories, protein_target, carb_target or fat_target"
// @Param        goal  body      setGoalRequest  true  "Target"
// @Success      200   {object}  domain.Goal
// @Failure      400   {object}  errorResponse
// @Security     BearerAuth
// @Router       /goals/{type} [put]
func (h *GoalHandler) Set(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req setGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	goal, err := h.svc.SetGoal(c.Request.Context(), services.SetGoalInput{
		UserID:      userID,
		Type:        c.Param("type"),
		TargetValue: req.TargetValue,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}
