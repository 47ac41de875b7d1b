package migration

import (
	"ticketsystem/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ProjectModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.NotificationModel{},
	}
}
