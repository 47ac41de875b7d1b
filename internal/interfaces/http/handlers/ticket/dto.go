package ticket

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketsystem/internal/application/ticket/usecases"
	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Priority    string `json:"priority" form:"priority"`
	Type        string `json:"type" form:"type"`
	ProjectID   *uint  `json:"project_id" form:"project_id"`
}

func (r *CreateTicketRequest) ToCommand(actor access.Actor, uploads []usecases.UploadPayload) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Type:        r.Type,
		ProjectID:   r.ProjectID,
		Uploads:     uploads,
		Actor:       actor,
	}
}

type UpdateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Type        string `json:"type"`
	ProjectID   *uint  `json:"project_id"`
	AssigneeID  *uint  `json:"assignee_id"`
	Version     int    `json:"version"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint, actor access.Actor) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Type:        r.Type,
		ProjectID:   r.ProjectID,
		AssigneeID:  r.AssigneeID,
		Version:     r.Version,
		Actor:       actor,
	}
}

// AssignTicketRequest takes a null assignee_id to clear the assignment.
type AssignTicketRequest struct {
	AssigneeID *uint `json:"assignee_id"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type ListTicketsRequest struct {
	Page      int
	PageSize  int
	Status    string
	Priority  string
	Type      string
	ProjectID *uint
}

func (r *ListTicketsRequest) ToQuery(actor access.Actor) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:    r.Status,
		Priority:  r.Priority,
		Type:      r.Type,
		ProjectID: r.ProjectID,
		Page:      r.Page,
		PageSize:  r.PageSize,
		Actor:     actor,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	pagination := utils.ParsePagination(c)

	req := &ListTicketsRequest{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Type:     c.Query("type"),
	}

	if projectIDStr := c.Query("project_id"); projectIDStr != "" {
		projectID, err := strconv.ParseUint(projectIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid project_id")
		}
		id := uint(projectID)
		req.ProjectID = &id
	}

	return req, nil
}

// uploadsFromFileHeaders converts multipart file headers into the payloads
// the create use case consumes. Files stay on disk or in memory until the
// use case opens them inside its transaction.
func uploadsFromFileHeaders(files []*multipart.FileHeader) []usecases.UploadPayload {
	uploads := make([]usecases.UploadPayload, 0, len(files))
	for _, fh := range files {
		uploads = append(uploads, usecases.UploadPayload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return uploads
}
