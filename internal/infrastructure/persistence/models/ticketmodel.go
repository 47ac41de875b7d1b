package models

import "ticketsystem/internal/shared/constants"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Priority    string `gorm:"size:20;not null;index"`
	Type        string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	CreatorID   uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	ProjectID   *uint  `gorm:"index"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   int64  `gorm:"not null;index"`
	UpdatedAt   int64  `gorm:"not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	CommenterID uint   `gorm:"not null;index"`
	Text        string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"not null;index"`
	UpdatedAt   *int64
}

func (CommentModel) TableName() string {
	return constants.TableTicketComments
}

type AttachmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	FileName    string `gorm:"size:255;not null"`
	StoredName  string `gorm:"size:255;not null;uniqueIndex"`
	FilePath    string `gorm:"size:500;not null"`
	ContentType string `gorm:"size:100;not null"`
	Size        int64  `gorm:"not null"`
	UploaderID  uint   `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"not null"`
}

func (AttachmentModel) TableName() string {
	return constants.TableTicketAttachments
}
