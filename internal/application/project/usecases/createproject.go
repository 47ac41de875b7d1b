package usecases

import (
	"context"
	"time"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/project"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type CreateProjectCommand struct {
	Name        string
	Description string
	Actor       access.Actor
}

type CreateProjectResult struct {
	ProjectID uint
	CreatedAt time.Time
}

type CreateProjectUseCase struct {
	projectRepo project.ProjectRepository
	logger      logger.Interface
}

func NewCreateProjectUseCase(projectRepo project.ProjectRepository, logger logger.Interface) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error) {
	uc.logger.Infow("executing create project use case", "name", cmd.Name, "actor_id", cmd.Actor.UserID)

	if !access.CanPerform(cmd.Actor, access.ActionModifyProject) {
		return nil, errors.NewForbiddenError("not allowed to manage projects")
	}

	newProject, err := project.NewProject(cmd.Name, cmd.Description)
	if err != nil {
		return nil, err
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		uc.logger.Errorw("failed to save project", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("project created", "project_id", newProject.ID())

	return &CreateProjectResult{
		ProjectID: newProject.ID(),
		CreatedAt: newProject.CreatedAt(),
	}, nil
}
