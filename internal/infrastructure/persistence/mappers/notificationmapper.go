package mappers

import (
	"fmt"
	"time"

	"ticketsystem/internal/domain/notification"
	"ticketsystem/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) *models.NotificationModel
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.Message,
		model.TicketID,
		model.IsRead,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification: %w", err)
	}
	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) *models.NotificationModel {
	if entity == nil {
		return nil
	}
	return &models.NotificationModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		Message:   entity.Message(),
		TicketID:  entity.TicketID(),
		IsRead:    entity.IsRead(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) ToEntities(notificationModels []*models.NotificationModel) ([]*notification.Notification, error) {
	entities := make([]*notification.Notification, 0, len(notificationModels))
	for _, model := range notificationModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
