package models

import "ticketsystem/internal/shared/constants"

type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index:idx_user_read"`
	Message   string `gorm:"size:500;not null"`
	TicketID  *uint  `gorm:"index"`
	IsRead    bool   `gorm:"not null;default:false;index:idx_user_read"`
	CreatedAt int64  `gorm:"not null;index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
