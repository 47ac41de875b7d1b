package routes

import (
	"github.com/gin-gonic/gin"

	"ticketsystem/internal/domain/access"
	adminhandlers "ticketsystem/internal/interfaces/http/handlers/admin"
	"ticketsystem/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	DashboardHandler     *adminhandlers.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAuth())
	admin.Use(config.PermissionMiddleware.RequireAction(access.ActionViewDashboard))
	{
		admin.GET("/dashboard/weekly-report",
			config.DashboardHandler.GetWeeklyReport)
	}
}
