package usecases

import (
	"context"
	"time"

	domainnotification "ticketsystem/internal/domain/notification"
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
