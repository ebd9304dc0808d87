// Package middleware contains the Gin middleware stack.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prio/internal/infrastructure/auth"
	"prio/internal/shared/logger"
	"prio/internal/shared/utils"
)

// Context keys set by Auth.
const (
	ContextUserIDKey  = "user_id"
	ContextUserSIDKey = "user_sid"
)

// Auth verifies the bearer token and stores the caller's identity on the
// request context.
func Auth(tokens *auth.TokenService, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Debugw("token verification failed", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserSIDKey, claims.UserSID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's numeric ID.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	userID, ok := v.(uint)
	return userID, ok
}

// CurrentUserSID returns the authenticated user's public ID.
func CurrentUserSID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserSIDKey)
	if !ok {
		return "", false
	}
	sid, ok := v.(string)
	return sid, ok
}
