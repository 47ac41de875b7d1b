package ticket

import "time"

type TicketCreatedEvent struct {
	TicketID  uint
	Title     string
	CreatorID uint
	Priority  string
	Timestamp time.Time
}

func NewTicketCreatedEvent(
	ticketID uint,
	title string,
	creatorID uint,
	priority string,
	timestamp time.Time,
) TicketCreatedEvent {
	return TicketCreatedEvent{
		TicketID:  ticketID,
		Title:     title,
		CreatorID: creatorID,
		Priority:  priority,
		Timestamp: timestamp,
	}
}

type TicketAssignedEvent struct {
	TicketID   uint
	Title      string
	AssigneeID uint
	AssignedBy uint
	Timestamp  time.Time
}

func NewTicketAssignedEvent(
	ticketID uint,
	title string,
	assigneeID uint,
	assignedBy uint,
	timestamp time.Time,
) TicketAssignedEvent {
	return TicketAssignedEvent{
		TicketID:   ticketID,
		Title:      title,
		AssigneeID: assigneeID,
		AssignedBy: assignedBy,
		Timestamp:  timestamp,
	}
}

type CommentAddedEvent struct {
	TicketID        uint
	Title           string
	CommentID       uint
	CommenterID     uint
	TicketCreatorID uint
	AssigneeID      *uint
	Timestamp       time.Time
}

func NewCommentAddedEvent(
	ticketID uint,
	title string,
	commentID uint,
	commenterID uint,
	ticketCreatorID uint,
	assigneeID *uint,
	timestamp time.Time,
) CommentAddedEvent {
	return CommentAddedEvent{
		TicketID:        ticketID,
		Title:           title,
		CommentID:       commentID,
		CommenterID:     commenterID,
		TicketCreatorID: ticketCreatorID,
		AssigneeID:      assigneeID,
		Timestamp:       timestamp,
	}
}
