package middleware

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time windows

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Login rate limit: 5 attempts per 15 minutes per client IP
const (
	loginMaxAttempts = 5
	loginWindow      = 15 * time.Minute
)

// LoginRateLimitMiddleware throttles login attempts with a fixed-window
// counter in Redis keyed by client IP. The clock is injectable so tests can
// control window boundaries.
func LoginRateLimitMiddleware(rdb *redis.Client, now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now // Default clock
	}
	return func(c *gin.Context) {
		// Window identified by its start time
		window := now().Unix() / int64(loginWindow.Seconds())
		key := "ratelimit:login:" + c.ClientIP() + ":" + strconv.FormatInt(window, 10)
		count, err := rdb.Incr(c.Request.Context(), key).Result() // Count this attempt
		if err != nil {
			// If Redis is down, let the request through rather than lock everyone out
			c.Next()
			return
		}
		// First attempt in the window sets the expiry
		if count == 1 {
			_ = rdb.Expire(c.Request.Context(), key, loginWindow).Err()
		}
		// Reject once over the limit
		if count > loginMaxAttempts {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts. Try again later"})
			return
		}
		c.Next() // Proceed to the next handler
	}
}
