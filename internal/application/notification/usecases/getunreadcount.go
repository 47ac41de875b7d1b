package usecases

import (
	"context"

	"ticketsystem/internal/domain/notification"
	"ticketsystem/internal/shared/logger"
)

type GetUnreadCountQuery struct {
	UserID uint
}

type GetUnreadCountUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewGetUnreadCountUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, query GetUnreadCountQuery) (int64, error) {
	count, err := uc.notificationRepo.CountUnread(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", query.UserID, "error", err)
		return 0, err
	}
	return count, nil
}
