// Package notification exposes the per-user notification inbox over HTTP.
package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketsystem/internal/application/notification/usecases"
	"ticketsystem/internal/interfaces/http/handlers/common"
	"ticketsystem/internal/shared/logger"
	"ticketsystem/internal/shared/utils"
)

type NotificationHandler struct {
	listNotificationsUC usecases.ListNotificationsExecutor
	markAllReadUC       usecases.MarkAllReadExecutor
	getUnreadCountUC    usecases.GetUnreadCountExecutor
	logger              logger.Interface
}

func NewNotificationHandler(
	listNotificationsUC usecases.ListNotificationsExecutor,
	markAllReadUC usecases.MarkAllReadExecutor,
	getUnreadCountUC usecases.GetUnreadCountExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listNotificationsUC: listNotificationsUC,
		markAllReadUC:       markAllReadUC,
		getUnreadCountUC:    getUnreadCountUC,
		logger:              logger,
	}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	result, err := h.listNotificationsUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID: actor.UserID,
		Limit:  limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkAllRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.markAllReadUC.Execute(c.Request.Context(), usecases.MarkAllReadCommand{
		UserID: actor.UserID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}

// GetUnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	count, err := h.getUnreadCountUC.Execute(c.Request.Context(), usecases.GetUnreadCountQuery{
		UserID: actor.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"unread_count": count})
}
