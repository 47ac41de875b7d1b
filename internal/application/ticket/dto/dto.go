package dto

import (
	"time"

	"ticketsystem/internal/domain/ticket"
)

type TicketDTO struct {
	ID              uint            `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DescriptionHTML string          `json:"description_html,omitempty"`
	Priority        string          `json:"priority"`
	Type            string          `json:"type"`
	Status          string          `json:"status"`
	CreatorID       uint            `json:"creator_id"`
	AssigneeID      *uint           `json:"assignee_id"`
	ProjectID       *uint           `json:"project_id"`
	Version         int             `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Comments        []CommentDTO    `json:"comments"`
	Attachments     []AttachmentDTO `json:"attachments"`
}

type TicketListItemDTO struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Priority   string    `json:"priority"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	CreatorID  uint      `json:"creator_id"`
	AssigneeID *uint     `json:"assignee_id"`
	ProjectID  *uint     `json:"project_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	CommenterID uint      `json:"commenter_id"`
	Text        string    `json:"text"`
	TextHTML    string    `json:"text_html,omitempty"`
	CommentedAt time.Time `json:"commented_at"`
}

type AttachmentDTO struct {
	ID          uint      `json:"id"`
	FileName    string    `json:"file_name"`
	StoredName  string    `json:"stored_name"`
	FilePath    string    `json:"file_path"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:         t.ID(),
		Title:      t.Title(),
		Priority:   t.Priority().String(),
		Type:       t.Type().String(),
		Status:     t.Status().String(),
		CreatorID:  t.CreatorID(),
		AssigneeID: t.AssigneeID(),
		ProjectID:  t.ProjectID(),
		CreatedAt:  t.CreatedAt(),
	}
}

func ToTicketListItemDTOs(tickets []*ticket.Ticket) []TicketListItemDTO {
	dtos := make([]TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, ToTicketListItemDTO(t))
	}
	return dtos
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:          c.ID(),
		CommenterID: c.CommenterID(),
		Text:        c.Text(),
		CommentedAt: c.CommentedAt(),
	}
}

func ToAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:          a.ID(),
		FileName:    a.FileName(),
		StoredName:  a.StoredName(),
		FilePath:    a.FilePath(),
		ContentType: a.ContentType(),
		Size:        a.Size(),
		UploadedAt:  a.UploadedAt(),
	}
}

func ToTicketDTO(t *ticket.Ticket, comments []*ticket.Comment, attachments []*ticket.Attachment) *TicketDTO {
	if t == nil {
		return nil
	}

	commentDTOs := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTOs = append(commentDTOs, ToCommentDTO(c))
	}

	attachmentDTOs := make([]AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		attachmentDTOs = append(attachmentDTOs, ToAttachmentDTO(a))
	}

	return &TicketDTO{
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
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		Comments:    commentDTOs,
		Attachments: attachmentDTOs,
	}
}
