package usecases

import (
	"context"

	"ticketsystem/internal/application/notification/dto"
)

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) ([]dto.NotificationDTO, error)
}

type MarkAllReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAllReadCommand) error
}

type GetUnreadCountExecutor interface {
	Execute(ctx context.Context, query GetUnreadCountQuery) (int64, error)
}
