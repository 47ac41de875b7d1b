package usecases

import (
	"context"

	"ticketsystem/internal/domain/notification"
	"ticketsystem/internal/shared/logger"
)

type MarkAllReadCommand struct {
	UserID uint
}

type MarkAllReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkAllReadUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, cmd MarkAllReadCommand) error {
	if err := uc.notificationRepo.MarkAllRead(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to mark notifications read", "user_id", cmd.UserID, "error", err)
		return err
	}
	return nil
}
