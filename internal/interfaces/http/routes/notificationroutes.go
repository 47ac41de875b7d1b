package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "ticketsystem/internal/interfaces/http/handlers/notification"
	"ticketsystem/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("",
			config.NotificationHandler.ListNotifications)
		notifications.GET("/unread-count",
			config.NotificationHandler.GetUnreadCount)
		notifications.POST("/read-all",
			config.NotificationHandler.MarkAllRead)
	}
}
