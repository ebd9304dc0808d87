package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prio/internal/infrastructure/ratelimit"
	"prio/internal/shared/logger"
	"prio/internal/shared/utils"
)

// RateLimit throttles requests per client IP. A limiter failure fails open
// so a Redis outage does not take the API down with it.
func RateLimit(limiter ratelimit.Limiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}
