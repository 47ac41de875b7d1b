package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ticketsystem/internal/domain/notification"
	"ticketsystem/internal/infrastructure/persistence/mappers"
	"ticketsystem/internal/infrastructure/persistence/models"
	"ticketsystem/internal/shared/db"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(gdb *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     gdb,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NotificationRepository) BulkCreate(ctx context.Context, ns []*notification.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	notificationModels := make([]*models.NotificationModel, 0, len(ns))
	for _, n := range ns {
		notificationModels = append(notificationModels, r.mapper.ToModel(n))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&notificationModels).Error; err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}

	for i, n := range ns {
		if err := n.SetID(notificationModels[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID uint, limit int) ([]*notification.Notification, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var notificationModels []*models.NotificationModel
	query := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return r.mapper.ToEntities(notificationModels)
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *NotificationRepository) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("is_read = ? AND created_at < ?", true, before.UnixMilli()).
		Delete(&models.NotificationModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}
