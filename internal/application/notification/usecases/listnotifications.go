package usecases

import (
	"context"

	"ticketsystem/internal/application/notification/dto"
	"ticketsystem/internal/domain/notification"
	"ticketsystem/internal/shared/logger"
)

// DefaultInboxLimit caps how many entries one inbox fetch returns.
const DefaultInboxLimit = 100

type ListNotificationsQuery struct {
	UserID uint
	Limit  int
}

type ListNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewListNotificationsUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) ([]dto.NotificationDTO, error) {
	limit := query.Limit
	if limit <= 0 || limit > DefaultInboxLimit {
		limit = DefaultInboxLimit
	}

	notifications, err := uc.notificationRepo.ListByUserID(ctx, query.UserID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.UserID, "error", err)
		return nil, err
	}

	return dto.ToNotificationDTOs(notifications), nil
}
