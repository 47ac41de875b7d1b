package project

import "context"

type ProjectRepository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	// Delete removes a project; implementations must fail when tickets
	// still reference it.
	Delete(ctx context.Context, projectID uint) error
	GetByID(ctx context.Context, projectID uint) (*Project, error)
	Exists(ctx context.Context, projectID uint) (bool, error)
	List(ctx context.Context) ([]*Project, error)
}
