package notification

import (
	"context"
	"time"

	"ticketsystem/internal/domain/identity"
	domainnotification "ticketsystem/internal/domain/notification"
	"ticketsystem/internal/shared/authorization"
	"ticketsystem/internal/shared/logger"
)

type mockNotificationRepository struct {
	CreateFunc           func(ctx context.Context, n *domainnotification.Notification) error
	BulkCreateFunc       func(ctx context.Context, ns []*domainnotification.Notification) error
	ListByUserIDFunc     func(ctx context.Context, userID uint, limit int) ([]*domainnotification.Notification, error)
	CountUnreadFunc      func(ctx context.Context, userID uint) (int64, error)
	MarkAllReadFunc      func(ctx context.Context, userID uint) error
	DeleteReadBeforeFunc func(ctx context.Context, before time.Time) (int64, error)
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *domainnotification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) BulkCreate(ctx context.Context, ns []*domainnotification.Notification) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, ns)
	}
	return nil
}

func (m *mockNotificationRepository) ListByUserID(ctx context.Context, userID uint, limit int) ([]*domainnotification.Notification, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, userID)
	}
	return nil
}

func (m *mockNotificationRepository) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	if m.DeleteReadBeforeFunc != nil {
		return m.DeleteReadBeforeFunc(ctx, before)
	}
	return 0, nil
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

type mockSink struct {
	SendFunc func(ctx context.Context, userID uint, message string) error
	sent     []string
}

func (m *mockSink) Send(ctx context.Context, userID uint, message string) error {
	m.sent = append(m.sent, message)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, userID, message)
	}
	return nil
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
