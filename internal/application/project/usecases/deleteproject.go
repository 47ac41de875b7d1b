package usecases

import (
	"context"
	"fmt"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/project"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type DeleteProjectCommand struct {
	ProjectID uint
	Actor     access.Actor
}

type DeleteProjectUseCase struct {
	projectRepo project.ProjectRepository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
}

func NewDeleteProjectUseCase(
	projectRepo project.ProjectRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	uc.logger.Infow("executing delete project use case", "project_id", cmd.ProjectID, "actor_id", cmd.Actor.UserID)

	if !access.CanPerform(cmd.Actor, access.ActionDeleteProject) {
		return errors.NewForbiddenError("only admins can delete projects")
	}

	existing, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("project not found")
	}

	// Tickets keep their project reference, so a referenced project must
	// stay. The repository enforces the same rule at the database level.
	referencing, err := uc.ticketRepo.CountReferencingProject(ctx, cmd.ProjectID)
	if err != nil {
		return err
	}
	if referencing > 0 {
		return errors.NewConflictError(
			fmt.Sprintf("project is still referenced by %d tickets", referencing))
	}

	if err := uc.projectRepo.Delete(ctx, cmd.ProjectID); err != nil {
		uc.logger.Errorw("failed to delete project", "project_id", cmd.ProjectID, "error", err)
		return err
	}

	uc.logger.Infow("project deleted", "project_id", cmd.ProjectID)
	return nil
}
