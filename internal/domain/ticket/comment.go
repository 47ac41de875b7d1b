package ticket

import (
	"fmt"
	"strings"
	"time"

	"ticketsystem/internal/shared/biztime"
)

const MaxCommentLength = 4000

// Comment is an append-only entry on a ticket's discussion thread.
// updatedAt exists in storage but no operation mutates a comment.
type Comment struct {
	id          uint
	ticketID    uint
	commenterID uint
	text        string
	commentedAt time.Time
	updatedAt   *time.Time
}

func NewComment(
	ticketID uint,
	commenterID uint,
	text string,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if commenterID == 0 {
		return nil, fmt.Errorf("commenter ID is required")
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("comment text cannot be empty")
	}
	if len(trimmed) > MaxCommentLength {
		return nil, fmt.Errorf("comment text exceeds maximum length of %d characters", MaxCommentLength)
	}

	return &Comment{
		ticketID:    ticketID,
		commenterID: commenterID,
		text:        trimmed,
		commentedAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	commenterID uint,
	text string,
	commentedAt time.Time,
	updatedAt *time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if commenterID == 0 {
		return nil, fmt.Errorf("commenter ID is required")
	}

	return &Comment{
		id:          id,
		ticketID:    ticketID,
		commenterID: commenterID,
		text:        text,
		commentedAt: commentedAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) CommenterID() uint {
	return c.commenterID
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) CommentedAt() time.Time {
	return c.commentedAt
}

func (c *Comment) UpdatedAt() *time.Time {
	return c.updatedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
