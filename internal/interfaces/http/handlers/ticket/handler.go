// Package ticket exposes the ticket workflow over HTTP.
package ticket

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ticketsystem/internal/application/ticket/usecases"
	"ticketsystem/internal/interfaces/http/handlers/common"
	"ticketsystem/internal/shared/logger"
	"ticketsystem/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC       usecases.CreateTicketExecutor
	getTicketUC          usecases.GetTicketExecutor
	listTicketsUC        usecases.ListTicketsExecutor
	updateTicketUC       usecases.UpdateTicketExecutor
	assignTicketUC       usecases.AssignTicketExecutor
	closeTicketUC        usecases.CloseTicketExecutor
	reopenTicketUC       usecases.ReopenTicketExecutor
	deleteTicketUC       usecases.DeleteTicketExecutor
	addCommentUC         usecases.AddCommentExecutor
	downloadAttachmentUC usecases.DownloadAttachmentExecutor
	logger               logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	reopenTicketUC usecases.ReopenTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	downloadAttachmentUC usecases.DownloadAttachmentExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:       createTicketUC,
		getTicketUC:          getTicketUC,
		listTicketsUC:        listTicketsUC,
		updateTicketUC:       updateTicketUC,
		assignTicketUC:       assignTicketUC,
		closeTicketUC:        closeTicketUC,
		reopenTicketUC:       reopenTicketUC,
		deleteTicketUC:       deleteTicketUC,
		addCommentUC:         addCommentUC,
		downloadAttachmentUC: downloadAttachmentUC,
		logger:               logger,
	}
}

// CreateTicket handles POST /tickets. The request is either plain JSON or
// multipart form data when attachments ride along.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateTicketRequest
	var uploads []usecases.UploadPayload

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			h.logger.Warnw("invalid multipart create ticket request", "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
		form, err := c.MultipartForm()
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid multipart form")
			return
		}
		uploads = uploadsFromFileHeaders(form.File["attachments"])
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for create ticket", "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actor, uploads))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
		Actor:      actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assignment updated", result)
}

// CloseTicket handles POST /tickets/:id/close
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.closeTicketUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		TicketID: ticketID,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed", result)
}

// ReopenTicket handles POST /tickets/:id/reopen
func (h *TicketHandler) ReopenTicket(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reopenTicketUC.Execute(c.Request.Context(), usecases.ReopenTicketCommand{
		TicketID: ticketID,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket reopened", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: ticketID,
		Actor:    actor,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		Text:     req.Text,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// DownloadAttachment handles GET /tickets/:id/attachments/:attachment_id
func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	attachmentID, err := utils.ParseUintParam(c, "attachment_id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.downloadAttachmentUC.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{
		TicketID:     ticketID,
		AttachmentID: attachmentID,
		Actor:        actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer result.Content.Close()

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Header("Content-Type", result.ContentType)
	c.Header("Content-Length", strconv.FormatInt(result.Size, 10))
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, result.Content); err != nil {
		h.logger.Warnw("attachment download interrupted",
			"ticket_id", ticketID, "attachment_id", attachmentID, "error", err)
	}
}
