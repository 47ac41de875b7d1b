package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketsystem/internal/infrastructure/config"
	"ticketsystem/internal/interfaces/http/middleware"
	"ticketsystem/internal/interfaces/http/routes"
	"ticketsystem/internal/shared/logger"
)

// Router owns the Gin engine and wires middleware and route groups from a
// fully built container.
type Router struct {
	engine    *gin.Engine
	container *Container
	cfg       *config.Config
	logger    logger.Interface
}

func NewRouter(container *Container, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	return &Router{
		engine:    engine,
		container: container,
		cfg:       cfg,
		logger:    log,
	}
}

// SetupRoutes installs the global middleware chain and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	if r.cfg.RateLimit.Enabled {
		r.engine.Use(middleware.RateLimit(r.container.RateLimiter, r.logger))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:        r.container.TicketHandler,
		AuthMiddleware:       r.container.AuthMiddleware,
		PermissionMiddleware: r.container.PermissionMiddleware,
	})

	routes.SetupProjectRoutes(r.engine, &routes.ProjectRouteConfig{
		ProjectHandler:       r.container.ProjectHandler,
		AuthMiddleware:       r.container.AuthMiddleware,
		PermissionMiddleware: r.container.PermissionMiddleware,
	})

	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.container.NotificationHandler,
		AuthMiddleware:      r.container.AuthMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		DashboardHandler:     r.container.DashboardHandler,
		AuthMiddleware:       r.container.AuthMiddleware,
		PermissionMiddleware: r.container.PermissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production", "prod":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
