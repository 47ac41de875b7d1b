package dto

import (
	"time"

	"ticketsystem/internal/domain/notification"
)

type NotificationDTO struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	TicketID  *uint     `json:"ticket_id"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToNotificationDTO(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID(),
		Message:   n.Message(),
		TicketID:  n.TicketID(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func ToNotificationDTOs(ns []*notification.Notification) []NotificationDTO {
	dtos := make([]NotificationDTO, 0, len(ns))
	for _, n := range ns {
		dtos = append(dtos, ToNotificationDTO(n))
	}
	return dtos
}
