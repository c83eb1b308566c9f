package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// UserRateLimit limits task mutations per user (not per IP).
// Requires Identity to run before this.
func UserRateLimit(maxOps int, window time.Duration) gin.HandlerFunc {
	mem := newMemoryLimiter()
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		key := "task_rl:" + userID + ":" + strconv.FormatInt(int64(window.Seconds()), 10)
		val, err := hit(c.Request.Context(), mem, key, window)
		if err != nil {
			c.Header("X-TaskRateLimit-Error", "redis-error")
			c.Next()
			return
		}

		c.Header("X-TaskRateLimit-Limit", strconv.Itoa(maxOps))
		c.Header("X-TaskRateLimit-Remaining", strconv.FormatInt(max(0, int64(maxOps)-val), 10))

		if val > int64(maxOps) {
			RLBlocked.WithLabelValues("task").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "task rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			return
		}

		RLRequests.WithLabelValues("task").Inc()
		c.Next()
	}
}
