package routes

import (
	"github.com/gin-gonic/gin"

	"ticketsystem/internal/domain/access"
	tickethandlers "ticketsystem/internal/interfaces/http/handlers/ticket"
	"ticketsystem/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("",
			config.PermissionMiddleware.RequireAction(access.ActionCreateTicket),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Action endpoints come before the bare /:id routes. Gates that
		// depend on the ticket's assignee stay inside the use cases; the
		// route gate only rejects roles the matrix denies outright.
		tickets.POST("/:id/assign",
			config.PermissionMiddleware.RequireAction(access.ActionReassignTicket),
			config.TicketHandler.AssignTicket)
		tickets.POST("/:id/close",
			config.PermissionMiddleware.RequireAction(access.ActionCloseTicket),
			config.TicketHandler.CloseTicket)
		tickets.POST("/:id/reopen",
			config.PermissionMiddleware.RequireAction(access.ActionReopenTicket),
			config.TicketHandler.ReopenTicket)
		tickets.POST("/:id/comments",
			config.TicketHandler.AddComment)
		tickets.GET("/:id/attachments/:attachment_id",
			config.TicketHandler.DownloadAttachment)

		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			config.PermissionMiddleware.RequireAction(access.ActionEditTicket),
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.PermissionMiddleware.RequireAction(access.ActionDeleteTicket),
			config.TicketHandler.DeleteTicket)
	}
}
