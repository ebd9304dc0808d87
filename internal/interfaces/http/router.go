// Package http assembles the Gin engine from configuration and dependencies.
package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"prio/internal/infrastructure/auth"
	"prio/internal/infrastructure/permission"
	"prio/internal/infrastructure/ratelimit"
	"prio/internal/interfaces/http/handlers/checklist"
	"prio/internal/interfaces/http/middleware"
	"prio/internal/interfaces/http/routes"
	"prio/internal/shared/config"
	"prio/internal/shared/logger"
)

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Config           *config.Config
	ChecklistHandler *checklist.Handler
	Tokens           *auth.TokenService
	Permissions      *permission.Service
	Limiter          ratelimit.Limiter
	Logger           logger.Interface
}

// NewRouter builds the engine with the full middleware stack.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORS())
	if deps.Config.RateLimit.Enabled {
		router.Use(middleware.RateLimit(deps.Limiter, deps.Logger))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.Auth(deps.Tokens, deps.Logger))

	routes.RegisterChecklistRoutes(api, deps.ChecklistHandler, deps.Permissions, deps.Logger)

	return router
}
