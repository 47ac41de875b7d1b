package usecases

import (
	"context"

	"ticketsystem/internal/application/project/dto"
	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/project"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type GetProjectQuery struct {
	ProjectID uint
	Actor     access.Actor
}

type GetProjectUseCase struct {
	projectRepo project.ProjectRepository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
}

func NewGetProjectUseCase(
	projectRepo project.ProjectRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*dto.ProjectDTO, error) {
	existing, err := uc.projectRepo.GetByID(ctx, query.ProjectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	counts, err := uc.ticketRepo.CountByProject(ctx, access.ScopeFor(query.Actor))
	if err != nil {
		return nil, err
	}

	// Detail visibility follows listing: non-admins only see projects
	// holding at least one of their visible tickets.
	count := counts[existing.ID()]
	if !query.Actor.IsAdmin() && count == 0 {
		return nil, errors.NewForbiddenError("not allowed to access this project")
	}

	result := dto.ToProjectDTO(existing, count)
	return &result, nil
}
