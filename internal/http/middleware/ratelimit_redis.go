package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/logger"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// InitRedisRateLimiter initializes a shared Redis client used by the limiters.
// If addr is empty or the ping fails, redisClient stays nil and the limiters
// count in process memory instead.
func InitRedisRateLimiter(addr, password string, db int) bool {
	if addr == "" {
		return false
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, using in-memory rate limiting", "addr", addr, "error", err)
		_ = client.Close()
		return false
	}
	redisClient = client
	return true
}

// CloseRedis releases the shared client, if any.
func CloseRedis() {
	if redisClient != nil {
		_ = redisClient.Close()
		redisClient = nil
	}
}

// hit increments the fixed-window counter for key, in Redis when configured.
func hit(ctx context.Context, mem *memoryLimiter, key string, window time.Duration) (int64, error) {
	if redisClient == nil {
		return mem.incr(key, window), nil
	}
	val, err := redisClient.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if val == 1 {
		// first increment, set expiry
		redisClient.Expire(ctx, key, window)
	}
	return val, nil
}

// RedisRateLimit limits requests per client IP with a fixed window.
// key format: rl:<scope>:<window_seconds>:<ip>
func RedisRateLimit(scope string, maxRequests int, window time.Duration) gin.HandlerFunc {
	mem := newMemoryLimiter()
	return func(c *gin.Context) {
		key := "rl:" + scope + ":" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + c.ClientIP()

		val, err := hit(c.Request.Context(), mem, key, window)
		if err != nil {
			// on Redis error, fail-open (allow) but set header
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(0, int64(maxRequests)-val), 10))

		if val > int64(maxRequests) {
			RLBlocked.WithLabelValues(scope).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			return
		}

		RLRequests.WithLabelValues(scope).Inc()
		c.Next()
	}
}
