// Package routes wires handlers and middleware onto the router.
package routes

import (
	"github.com/gin-gonic/gin"

	"prio/internal/infrastructure/permission"
	"prio/internal/interfaces/http/handlers/checklist"
	"prio/internal/interfaces/http/middleware"
	"prio/internal/shared/logger"
)

// RegisterChecklistRoutes mounts the checklist item endpoints under the
// authenticated API group.
func RegisterChecklistRoutes(api *gin.RouterGroup, h *checklist.Handler, perms *permission.Service, log logger.Interface) {
	items := api.Group("/workspaces/:workspace_slug/projects/:project_id/issues/:issue_id/checklist-items")

	items.GET("",
		middleware.RequireProjectPermission(perms, permission.EntityChecklistItem, permission.ActionRead, log),
		h.List)
	items.POST("",
		middleware.RequireProjectPermission(perms, permission.EntityChecklistItem, permission.ActionCreate, log),
		h.Create)
	items.GET("/:checklist_item_id",
		middleware.RequireProjectPermission(perms, permission.EntityChecklistItem, permission.ActionRead, log),
		h.Get)
	items.PATCH("/:checklist_item_id",
		middleware.RequireProjectPermission(perms, permission.EntityChecklistItem, permission.ActionUpdate, log),
		h.Update)
	items.DELETE("/:checklist_item_id",
		middleware.RequireProjectPermission(perms, permission.EntityChecklistItem, permission.ActionDelete, log),
		h.Delete)
}
