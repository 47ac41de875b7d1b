package dto

import (
	"time"

	"ticketsystem/internal/domain/project"
)

type ProjectDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TicketCount int64     `json:"ticket_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToProjectDTO(p *project.Project, ticketCount int64) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		TicketCount: ticketCount,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
