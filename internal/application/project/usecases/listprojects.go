package usecases

import (
	"context"

	"ticketsystem/internal/application/project/dto"
	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/project"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/logger"
)

type ListProjectsQuery struct {
	Actor access.Actor
}

type ListProjectsUseCase struct {
	projectRepo project.ProjectRepository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
}

func NewListProjectsUseCase(
	projectRepo project.ProjectRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

// Execute lists projects with ticket counts limited to what the caller can
// see. Admins get every project; other roles only see projects holding at
// least one of their visible tickets.
func (uc *ListProjectsUseCase) Execute(ctx context.Context, query ListProjectsQuery) ([]dto.ProjectDTO, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, err
	}

	counts, err := uc.ticketRepo.CountByProject(ctx, access.ScopeFor(query.Actor))
	if err != nil {
		return nil, err
	}

	results := make([]dto.ProjectDTO, 0, len(projects))
	for _, p := range projects {
		count := counts[p.ID()]
		if !query.Actor.IsAdmin() && count == 0 {
			continue
		}
		results = append(results, dto.ToProjectDTO(p, count))
	}
	return results, nil
}
