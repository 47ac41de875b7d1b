// Package project exposes project administration over HTTP.
package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketsystem/internal/application/project/usecases"
	"ticketsystem/internal/interfaces/http/handlers/common"
	"ticketsystem/internal/shared/logger"
	"ticketsystem/internal/shared/utils"
)

type ProjectHandler struct {
	createProjectUC usecases.CreateProjectExecutor
	updateProjectUC usecases.UpdateProjectExecutor
	deleteProjectUC usecases.DeleteProjectExecutor
	getProjectUC    usecases.GetProjectExecutor
	listProjectsUC  usecases.ListProjectsExecutor
	logger          logger.Interface
}

func NewProjectHandler(
	createProjectUC usecases.CreateProjectExecutor,
	updateProjectUC usecases.UpdateProjectExecutor,
	deleteProjectUC usecases.DeleteProjectExecutor,
	getProjectUC usecases.GetProjectExecutor,
	listProjectsUC usecases.ListProjectsExecutor,
	logger logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC: createProjectUC,
		updateProjectUC: updateProjectUC,
		deleteProjectUC: deleteProjectUC,
		getProjectUC:    getProjectUC,
		listProjectsUC:  listProjectsUC,
		logger:          logger,
	}
}

type ProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createProjectUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		Name:        req.Name,
		Description: req.Description,
		Actor:       actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update project", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateProjectUC.Execute(c.Request.Context(), usecases.UpdateProjectCommand{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		Actor:       actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project updated successfully", result)
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteProjectUC.Execute(c.Request.Context(), usecases.DeleteProjectCommand{
		ProjectID: projectID,
		Actor:     actor,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProjectUC.Execute(c.Request.Context(), usecases.GetProjectQuery{
		ProjectID: projectID,
		Actor:     actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	actor, ok := common.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.listProjectsUC.Execute(c.Request.Context(), usecases.ListProjectsQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
