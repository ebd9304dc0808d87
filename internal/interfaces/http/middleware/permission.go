package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prio/internal/infrastructure/permission"
	"prio/internal/shared/logger"
	"prio/internal/shared/utils"
)

// RequireProjectPermission checks that the authenticated user may perform
// the action on the entity type within the project named in the URL. It runs
// after Auth.
func RequireProjectPermission(svc *permission.Service, entity, action string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		userSID, ok := CurrentUserSID(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}

		projectSID := c.Param("project_id")
		if projectSID == "" {
			utils.ErrorResponse(c, http.StatusBadRequest, "project ID is required")
			c.Abort()
			return
		}

		allowed, err := svc.CanAccess(userSID, projectSID, entity, action)
		if err != nil {
			log.Errorw("permission check failed",
				"user_sid", userSID,
				"project_sid", projectSID,
				"entity", entity,
				"action", action,
				"error", err,
			)
			utils.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusForbidden, "permission denied")
			c.Abort()
			return
		}

		c.Next()
	}
}
