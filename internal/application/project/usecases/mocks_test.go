package usecases

import (
	"context"
	"time"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/project"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/logger"
)

type mockProjectRepository struct {
	SaveFunc    func(ctx context.Context, p *project.Project) error
	UpdateFunc  func(ctx context.Context, p *project.Project) error
	DeleteFunc  func(ctx context.Context, projectID uint) error
	GetByIDFunc func(ctx context.Context, projectID uint) (*project.Project, error)
	ExistsFunc  func(ctx context.Context, projectID uint) (bool, error)
	ListFunc    func(ctx context.Context) ([]*project.Project, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, projectID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, projectID)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, projectID uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectRepository) Exists(ctx context.Context, projectID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, projectID)
	}
	return true, nil
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockTicketRepository struct {
	CountByProjectFunc          func(ctx context.Context, scope access.TicketScope) (map[uint]int64, error)
	CountReferencingProjectFunc func(ctx context.Context, projectID uint) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error    { return nil }

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByProject(ctx context.Context, scope access.TicketScope) (map[uint]int64, error) {
	if m.CountByProjectFunc != nil {
		return m.CountByProjectFunc(ctx, scope)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountReferencingProject(ctx context.Context, projectID uint) (int64, error) {
	if m.CountReferencingProjectFunc != nil {
		return m.CountReferencingProjectFunc(ctx, projectID)
	}
	return 0, nil
}

func (m *mockTicketRepository) Totals(ctx context.Context) (ticket.Totals, error) {
	return ticket.Totals{}, nil
}

func (m *mockTicketRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]ticket.CreationFact, error) {
	return nil, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Fatal(msg string, args ...any)                   {}
func (noopLogger) With(args ...any) logger.Interface               { return noopLogger{} }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
