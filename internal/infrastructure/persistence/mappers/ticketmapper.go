package mappers

import (
	"fmt"
	"time"

	"ticketsystem/internal/domain/ticket"
	vo "ticketsystem/internal/domain/ticket/valueobjects"
	"ticketsystem/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Type:        t.Type().String(),
		Status:      t.Status().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		ProjectID:   t.ProjectID(),
		Version:     t.Version(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		vo.Priority(model.Priority),
		vo.TicketType(model.Type),
		vo.TicketStatus(model.Status),
		model.CreatorID,
		model.AssigneeID,
		model.ProjectID,
		model.Version,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket: %w", err)
	}
	return t, nil
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	model := &models.CommentModel{
		ID:          c.ID(),
		TicketID:    c.TicketID(),
		CommenterID: c.CommenterID(),
		Text:        c.Text(),
		CreatedAt:   c.CommentedAt().UnixMilli(),
	}
	if c.UpdatedAt() != nil {
		updated := c.UpdatedAt().UnixMilli()
		model.UpdatedAt = &updated
	}
	return model
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	if model == nil {
		return nil, nil
	}

	var updatedAt *time.Time
	if model.UpdatedAt != nil {
		updated := time.UnixMilli(*model.UpdatedAt).UTC()
		updatedAt = &updated
	}

	c, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.CommenterID,
		model.Text,
		time.UnixMilli(model.CreatedAt).UTC(),
		updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment: %w", err)
	}
	return c, nil
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		FileName:    a.FileName(),
		StoredName:  a.StoredName(),
		FilePath:    a.FilePath(),
		ContentType: a.ContentType(),
		Size:        a.Size(),
		UploaderID:  a.UploaderID(),
		CreatedAt:   a.UploadedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	if model == nil {
		return nil, nil
	}

	a, err := ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.FileName,
		model.StoredName,
		model.FilePath,
		model.ContentType,
		model.Size,
		model.UploaderID,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct attachment: %w", err)
	}
	return a, nil
}
