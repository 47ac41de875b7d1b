package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ticketsystem/internal/domain/identity"
	"ticketsystem/internal/infrastructure/persistence/models"
	"ticketsystem/internal/shared/authorization"
	"ticketsystem/internal/shared/db"
)

// UserDirectory reads the mirrored user table. The application never
// writes it.
type UserDirectory struct {
	db *gorm.DB
}

func NewUserDirectory(gdb *gorm.DB) *UserDirectory {
	return &UserDirectory{db: gdb}
}

func (r *UserDirectory) GetByID(ctx context.Context, userID uint) (*identity.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return toIdentityUser(&model), nil
}

func (r *UserDirectory) Exists(ctx context.Context, userID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.UserModel{}).
		Where("id = ?", userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserDirectory) ListByRole(ctx context.Context, role authorization.UserRole) ([]*identity.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var userModels []*models.UserModel
	if err := tx.
		Where("role = ?", string(role)).
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	users := make([]*identity.User, 0, len(userModels))
	for _, model := range userModels {
		users = append(users, toIdentityUser(model))
	}
	return users, nil
}

func toIdentityUser(model *models.UserModel) *identity.User {
	return &identity.User{
		ID:          model.ID,
		DisplayName: model.DisplayName,
		Email:       model.Email,
		Role:        authorization.UserRole(model.Role),
	}
}
