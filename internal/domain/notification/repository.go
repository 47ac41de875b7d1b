package notification

import (
	"context"
	"time"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	BulkCreate(ctx context.Context, notifications []*Notification) error
	// ListByUserID returns the newest notifications first, at most limit.
	ListByUserID(ctx context.Context, userID uint, limit int) ([]*Notification, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAllRead(ctx context.Context, userID uint) error
	// DeleteReadBefore removes read notifications created before the cutoff
	// and reports how many rows were deleted.
	DeleteReadBefore(ctx context.Context, before time.Time) (int64, error)
}
