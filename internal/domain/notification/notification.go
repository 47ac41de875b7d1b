package notification

import (
	"fmt"
	"time"

	"ticketsystem/internal/shared/biztime"
)

const MaxMessageLength = 500

// Notification is a per-user inbox entry. TicketID is informational and may
// dangle after the ticket is deleted.
type Notification struct {
	id        uint
	userID    uint
	message   string
	ticketID  *uint
	isRead    bool
	createdAt time.Time
}

func NewNotification(userID uint, message string, ticketID *uint) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > MaxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", MaxMessageLength)
	}

	return &Notification{
		userID:    userID,
		message:   message,
		ticketID:  ticketID,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	message string,
	ticketID *uint,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Notification{
		id:        id,
		userID:    userID,
		message:   message,
		ticketID:  ticketID,
		isRead:    isRead,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) TicketID() *uint {
	return n.ticketID
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkRead() {
	n.isRead = true
}
