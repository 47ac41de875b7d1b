package models

import "ticketsystem/internal/shared/constants"

type ProjectModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:500;not null"`
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null"`
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}
