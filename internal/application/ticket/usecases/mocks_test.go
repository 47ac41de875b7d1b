package usecases

import (
	"context"
	"io"
	"time"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/identity"
	"ticketsystem/internal/domain/project"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/authorization"
	"ticketsystem/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                    func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                  func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc                  func(ctx context.Context, ticketID uint) error
	GetByIDFunc                 func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc                    func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountByProjectFunc          func(ctx context.Context, scope access.TicketScope) (map[uint]int64, error)
	CountReferencingProjectFunc func(ctx context.Context, projectID uint) (int64, error)
	TotalsFunc                  func(ctx context.Context) (ticket.Totals, error)
	ListCreatedBetweenFunc      func(ctx context.Context, from, to time.Time) ([]ticket.CreationFact, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
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
	if m.TotalsFunc != nil {
		return m.TotalsFunc(ctx)
	}
	return ticket.Totals{}, nil
}

func (m *mockTicketRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]ticket.CreationFact, error) {
	if m.ListCreatedBetweenFunc != nil {
		return m.ListCreatedBetweenFunc(ctx, from, to)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc             func(ctx context.Context, c *ticket.Comment) error
	GetByTicketIDFunc    func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockAttachmentRepository struct {
	SaveBatchFunc        func(ctx context.Context, attachments []*ticket.Attachment) error
	GetByTicketIDFunc    func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	GetByIDFunc          func(ctx context.Context, attachmentID uint) (*ticket.Attachment, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockAttachmentRepository) SaveBatch(ctx context.Context, attachments []*ticket.Attachment) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, attachments)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*ticket.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

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
	return nil
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

type mockDirectory struct {
	GetByIDFunc    func(ctx context.Context, userID uint) (*identity.User, error)
	ExistsFunc     func(ctx context.Context, userID uint) (bool, error)
	ListByRoleFunc func(ctx context.Context, role authorization.UserRole) ([]*identity.User, error)
}

func (m *mockDirectory) GetByID(ctx context.Context, userID uint) (*identity.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockDirectory) Exists(ctx context.Context, userID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID)
	}
	return true, nil
}

func (m *mockDirectory) ListByRole(ctx context.Context, role authorization.UserRole) ([]*identity.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

type mockNotifier struct {
	created  []ticket.TicketCreatedEvent
	comments []ticket.CommentAddedEvent
	assigned []ticket.TicketAssignedEvent
}

func (m *mockNotifier) TicketCreated(ctx context.Context, ev ticket.TicketCreatedEvent) {
	m.created = append(m.created, ev)
}

func (m *mockNotifier) CommentAdded(ctx context.Context, ev ticket.CommentAddedEvent) {
	m.comments = append(m.comments, ev)
}

func (m *mockNotifier) TicketAssigned(ctx context.Context, ev ticket.TicketAssignedEvent) {
	m.assigned = append(m.assigned, ev)
}

type mockBlobStore struct {
	PutFunc          func(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error
	GetFunc          func(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFunc       func(ctx context.Context, path string) error
	DeletePrefixFunc func(ctx context.Context, prefix string) error

	stored  []string
	deleted []string
}

func (m *mockBlobStore) Put(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error {
	if m.PutFunc != nil {
		if err := m.PutFunc(ctx, path, reader, size, contentType); err != nil {
			return err
		}
	}
	m.stored = append(m.stored, path)
	return nil
}

func (m *mockBlobStore) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, path)
	}
	return nil, nil
}

func (m *mockBlobStore) Delete(ctx context.Context, path string) error {
	m.deleted = append(m.deleted, path)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, path)
	}
	return nil
}

func (m *mockBlobStore) DeletePrefix(ctx context.Context, prefix string) error {
	m.deleted = append(m.deleted, prefix)
	if m.DeletePrefixFunc != nil {
		return m.DeletePrefixFunc(ctx, prefix)
	}
	return nil
}

type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
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
