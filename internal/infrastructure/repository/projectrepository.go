package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ticketsystem/internal/domain/project"
	"ticketsystem/internal/infrastructure/persistence/mappers"
	"ticketsystem/internal/infrastructure/persistence/models"
	"ticketsystem/internal/shared/db"
	"ticketsystem/internal/shared/errors"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(gdb *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     gdb,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	return nil
}

// Delete refuses to remove a project that tickets still reference.
func (r *ProjectRepository) Delete(ctx context.Context, projectID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var referencing int64
	if err := tx.Model(&models.TicketModel{}).
		Where("project_id = ?", projectID).
		Count(&referencing).Error; err != nil {
		return fmt.Errorf("failed to check project references: %w", err)
	}
	if referencing > 0 {
		return errors.NewConflictError("project is still referenced by tickets")
	}

	result := tx.Delete(&models.ProjectModel{}, projectID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("project not found")
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID uint) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) Exists(ctx context.Context, projectID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ProjectModel{}).
		Where("id = ?", projectID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check project existence: %w", err)
	}
	return count > 0, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var projectModels []*models.ProjectModel
	if err := tx.Order("name ASC").Find(&projectModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, 0, len(projectModels))
	for _, model := range projectModels {
		p, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}
