package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/adapters/handler/http/middleware"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

// Clock supplies the request's notion of "now"; tests pin it.
type Clock func() time.Time

func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return "", false
	}
	return userID, true
}

// resolveAsOf reads the as_of and tz query parameters.
func resolveAsOf(c *gin.Context, now Clock, defaultLoc *time.Location) (time.Time, error) {
	return domain.ParseAsOf(c.Query("as_of"), c.Query("tz"), now(), defaultLoc)
}

func windowDays(c *gin.Context, fallback int) (int, error) {
	raw := c.Query("window_days")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrInvalidWindow
	}
	return n, nil
}
