package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"prio/internal/shared/logger"
)

// RequestLogger logs each request with method, path, status and latency.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Errorw("request completed", fields...)
		case c.Writer.Status() >= 400:
			log.Warnw("request completed", fields...)
		default:
			log.Infow("request completed", fields...)
		}
	}
}
