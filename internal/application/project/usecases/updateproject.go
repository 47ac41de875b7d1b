package usecases

import (
	"context"
	"time"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/project"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type UpdateProjectCommand struct {
	ProjectID   uint
	Name        string
	Description string
	Actor       access.Actor
}

type UpdateProjectResult struct {
	ProjectID uint
	UpdatedAt time.Time
}

type UpdateProjectUseCase struct {
	projectRepo project.ProjectRepository
	logger      logger.Interface
}

func NewUpdateProjectUseCase(projectRepo project.ProjectRepository, logger logger.Interface) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*UpdateProjectResult, error) {
	uc.logger.Infow("executing update project use case", "project_id", cmd.ProjectID, "actor_id", cmd.Actor.UserID)

	if !access.CanPerform(cmd.Actor, access.ActionModifyProject) {
		return nil, errors.NewForbiddenError("not allowed to manage projects")
	}

	existing, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	if err := existing.UpdateDetails(cmd.Name, cmd.Description); err != nil {
		return nil, err
	}

	if err := uc.projectRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update project", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}

	uc.logger.Infow("project updated", "project_id", existing.ID())

	return &UpdateProjectResult{
		ProjectID: existing.ID(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
