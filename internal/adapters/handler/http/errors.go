package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type insufficientDataResponse struct {
	Status     string `json:"status"`
	SampleSize int    `json:"sample_size"`
	Required   int    `json:"required"`
}

func handleError(c *gin.Context, err error) {
	var insufficient *domain.InsufficientDataError
	var invalidMetric *domain.InvalidMetricError

	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusOK, insufficientDataResponse{
			Status:     "insufficient_data",
			SampleSize: insufficient.SampleSize,
			Required:   insufficient.Required,
		})

	case errors.As(err, &invalidMetric):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid metric", Message: invalidMetric.Error()})

	case errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidLogEntry),
		errors.Is(err, domain.ErrInvalidLogKind),
		errors.Is(err, domain.ErrInvalidLogDate),
		errors.Is(err, domain.ErrInvalidLogTime),
		errors.Is(err, domain.ErrInvalidGoalType),
		errors.Is(err, domain.ErrInvalidGoalValue):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request", Message: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, errorResponse{Error: "unauthorized access"})

	case errors.Is(err, domain.ErrLogNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})

	case errors.Is(err, domain.ErrLogConflict):
		c.JSON(http.StatusConflict, errorResponse{Error: "log entry already exists"})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error", Message: "please retry later"})
	}
}
