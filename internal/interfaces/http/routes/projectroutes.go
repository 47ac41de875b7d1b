package routes

import (
	"github.com/gin-gonic/gin"

	"ticketsystem/internal/domain/access"
	projecthandlers "ticketsystem/internal/interfaces/http/handlers/project"
	"ticketsystem/internal/interfaces/http/middleware"
)

type ProjectRouteConfig struct {
	ProjectHandler       *projecthandlers.ProjectHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupProjectRoutes(engine *gin.Engine, config *ProjectRouteConfig) {
	projects := engine.Group("/projects")
	projects.Use(config.AuthMiddleware.RequireAuth())
	{
		projects.POST("",
			config.PermissionMiddleware.RequireAction(access.ActionModifyProject),
			config.ProjectHandler.CreateProject)
		projects.GET("",
			config.ProjectHandler.ListProjects)
		projects.GET("/:id",
			config.ProjectHandler.GetProject)
		projects.PUT("/:id",
			config.PermissionMiddleware.RequireAction(access.ActionModifyProject),
			config.ProjectHandler.UpdateProject)
		projects.DELETE("/:id",
			config.PermissionMiddleware.RequireAction(access.ActionDeleteProject),
			config.ProjectHandler.DeleteProject)
	}
}
