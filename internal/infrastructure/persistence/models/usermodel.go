package models

import "ticketsystem/internal/shared/constants"

// UserModel mirrors the identity provider's user facts. Accounts are
// provisioned externally; this table is read-only for the application.
type UserModel struct {
	ID          uint   `gorm:"primaryKey"`
	DisplayName string `gorm:"size:100;not null"`
	Email       string `gorm:"size:255;not null;uniqueIndex"`
	Role        string `gorm:"size:20;not null;index"`
	CreatedAt   int64  `gorm:"not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
