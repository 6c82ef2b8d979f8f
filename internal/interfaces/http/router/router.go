// Package router assembles the gin engine: global middleware, the
// versioned API group and every handler's routes.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Manzp111/smartville/internal/infrastructure/auth"
	"github.com/Manzp111/smartville/internal/infrastructure/logger"
	"github.com/Manzp111/smartville/internal/interfaces/http/handler"
	"github.com/Manzp111/smartville/internal/interfaces/http/middleware"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	System       *handler.SystemHandler
	Auth         *handler.AuthHandler
	Resident     *handler.ResidentHandler
	Village      *handler.VillageHandler
	Event        *handler.EventHandler
	Alert        *handler.AlertHandler
	Complaint    *handler.ComplaintHandler
	Volunteering *handler.VolunteeringHandler
	Visitor      *handler.VisitorHandler
	Contact      *handler.ContactHandler
}

// Config carries the router's dependencies
type Config struct {
	Logger        *zap.Logger
	JWTService    *auth.JWTService
	ActorResolver *middleware.ActorResolver
	CORS          middleware.CORSConfig
	Handlers      Handlers
}

// New builds the gin engine with all middleware and routes mounted
func New(cfg Config) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.CORSWithConfig(cfg.CORS))

	engine.GET("/health", cfg.Handlers.System.Health)

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: cfg.JWTService,
		SkipPaths: []string{
			"/api/v1/health",
			"/api/v1/villages/hierarchical",
			"/api/v1/villages/lookup",
		},
		SkipPathPrefixes: []string{
			"/api/v1/auth/",
		},
		Logger: cfg.Logger,
	}))
	api.Use(cfg.ActorResolver.Middleware())

	api.GET("/health", cfg.Handlers.System.Health)

	cfg.Handlers.Auth.RegisterRoutes(api)
	cfg.Handlers.Resident.RegisterRoutes(api)
	cfg.Handlers.Village.RegisterRoutes(api, middleware.RequireAdmin())
	cfg.Handlers.Event.RegisterRoutes(api)
	cfg.Handlers.Alert.RegisterRoutes(api)
	cfg.Handlers.Complaint.RegisterRoutes(api)
	cfg.Handlers.Volunteering.RegisterRoutes(api)
	cfg.Handlers.Visitor.RegisterRoutes(api)
	cfg.Handlers.Contact.RegisterRoutes(api)

	return engine
}
