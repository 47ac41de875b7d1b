package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/infrastructure/persistence/mappers"
	"ticketsystem/internal/infrastructure/persistence/models"
	"ticketsystem/internal/shared/db"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(gdb *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AttachmentRepository) SaveBatch(ctx context.Context, attachments []*ticket.Attachment) error {
	if len(attachments) == 0 {
		return nil
	}

	attachmentModels := make([]*models.AttachmentModel, 0, len(attachments))
	for _, a := range attachments {
		attachmentModels = append(attachmentModels, r.mapper.AttachmentToModel(a))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&attachmentModels).Error; err != nil {
		return fmt.Errorf("failed to save attachments: %w", err)
	}

	for i, a := range attachments {
		if err := a.SetID(attachmentModels[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *AttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var attachmentModels []*models.AttachmentModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, 0, len(attachmentModels))
	for _, model := range attachmentModels {
		a, err := r.mapper.AttachmentToDomain(model)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*ticket.Attachment, error) {
	var model models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, attachmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return r.mapper.AttachmentToDomain(&model)
}

func (r *AttachmentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.AttachmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete attachments: %w", err)
	}
	return nil
}
