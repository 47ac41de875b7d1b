package usecases

import (
	"context"

	"ticketsystem/internal/application/project/dto"
)

type CreateProjectExecutor interface {
	Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error)
}

type UpdateProjectExecutor interface {
	Execute(ctx context.Context, cmd UpdateProjectCommand) (*UpdateProjectResult, error)
}

type DeleteProjectExecutor interface {
	Execute(ctx context.Context, cmd DeleteProjectCommand) error
}

type GetProjectExecutor interface {
	Execute(ctx context.Context, query GetProjectQuery) (*dto.ProjectDTO, error)
}

type ListProjectsExecutor interface {
	Execute(ctx context.Context, query ListProjectsQuery) ([]dto.ProjectDTO, error)
}
