// Package admin exposes the admin dashboard over HTTP.
package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketsystem/internal/application/report/usecases"
	"ticketsystem/internal/interfaces/http/handlers/common"
	"ticketsystem/internal/shared/logger"
	"ticketsystem/internal/shared/utils"
)

type DashboardHandler struct {
	weeklyReportUC usecases.WeeklyReportExecutor
	logger         logger.Interface
}

func NewDashboardHandler(weeklyReportUC usecases.WeeklyReportExecutor, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		weeklyReportUC: weeklyReportUC,
		logger:         logger,
	}
}

// GetWeeklyReport handles GET /admin/dashboard/weekly-report. The week query
// parameter selects the week relative to now, 0 being the current week and
// negative values going back.
func (h *DashboardHandler) GetWeeklyReport(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	weekOffset, err := strconv.Atoi(c.DefaultQuery("week", "0"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid week offset")
		return
	}

	result, err := h.weeklyReportUC.Execute(c.Request.Context(), usecases.WeeklyReportQuery{
		WeekOffset: weekOffset,
		Actor:      actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
