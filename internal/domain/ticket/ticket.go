package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "ticketsystem/internal/domain/ticket/valueobjects"
	"ticketsystem/internal/shared/biztime"
	"ticketsystem/internal/shared/errors"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 4000
)

type Ticket struct {
	id          uint
	title       string
	description string
	priority    vo.Priority
	ticketType  vo.TicketType
	status      vo.TicketStatus
	creatorID   uint
	assigneeID  *uint
	projectID   *uint
	version     int
	baseVersion int
	createdAt   time.Time
	updatedAt   time.Time
}

// validateFields collects every field-level failure so callers can report
// all of them in one response.
func validateFields(title, description string, priority vo.Priority, ticketType vo.TicketType) []errors.FieldError {
	var fields []errors.FieldError

	if strings.TrimSpace(title) == "" {
		fields = append(fields, errors.FieldError{Field: "title", Message: "title is required"})
	} else if len(title) > MaxTitleLength {
		fields = append(fields, errors.FieldError{
			Field:   "title",
			Message: fmt.Sprintf("title exceeds maximum length of %d characters", MaxTitleLength),
		})
	}
	if len(description) > MaxDescriptionLength {
		fields = append(fields, errors.FieldError{
			Field:   "description",
			Message: fmt.Sprintf("description exceeds maximum length of %d characters", MaxDescriptionLength),
		})
	}
	if !priority.IsValid() {
		fields = append(fields, errors.FieldError{Field: "priority", Message: "invalid priority"})
	}
	if !ticketType.IsValid() {
		fields = append(fields, errors.FieldError{Field: "type", Message: "invalid ticket type"})
	}

	return fields
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	ticketType vo.TicketType,
	creatorID uint,
	projectID *uint,
) (*Ticket, error) {
	fields := validateFields(title, description, priority, ticketType)
	if creatorID == 0 {
		fields = append(fields, errors.FieldError{Field: "creator_id", Message: "creator ID is required"})
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       strings.TrimSpace(title),
		description: description,
		priority:    priority,
		ticketType:  ticketType,
		status:      vo.StatusOpen,
		creatorID:   creatorID,
		projectID:   projectID,
		version:     1,
		baseVersion: 1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	priority vo.Priority,
	ticketType vo.TicketType,
	status vo.TicketStatus,
	creatorID uint,
	assigneeID *uint,
	projectID *uint,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		priority:    priority,
		ticketType:  ticketType,
		status:      status,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		projectID:   projectID,
		version:     version,
		baseVersion: version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Type() vo.TicketType {
	return t.ticketType
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) ProjectID() *uint {
	return t.projectID
}

func (t *Ticket) Version() int {
	return t.version
}

// BaseVersion returns the version the ticket carried when it was
// constructed or loaded, which is the version its storage row holds.
// It equals Version until a mutation touches the aggregate.
func (t *Ticket) BaseVersion() int {
	return t.baseVersion
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateDetails replaces the mutable fields of the ticket. Creator and
// creation time always keep their stored values.
func (t *Ticket) UpdateDetails(
	title string,
	description string,
	priority vo.Priority,
	ticketType vo.TicketType,
	projectID *uint,
) error {
	fields := validateFields(title, description, priority, ticketType)
	if len(fields) > 0 {
		return errors.NewFieldValidationError(fields)
	}

	t.title = strings.TrimSpace(title)
	t.description = description
	t.priority = priority
	t.ticketType = ticketType
	t.projectID = projectID
	t.touch()
	return nil
}

// Reassign sets the assignee and reports whether it actually changed to a
// different, non-nil user.
func (t *Ticket) Reassign(assigneeID *uint) bool {
	changed := !uintPtrEqual(t.assigneeID, assigneeID)
	t.assigneeID = assigneeID
	if changed {
		t.touch()
	}
	return changed && assigneeID != nil
}

// Close moves the ticket to closed. Re-closing a closed ticket is a no-op
// transition and still succeeds.
func (t *Ticket) Close() {
	if t.status.IsClosed() {
		return
	}
	t.status = vo.StatusClosed
	t.touch()
}

// Reopen moves the ticket back to open. Reopening an open ticket succeeds
// without change.
func (t *Ticket) Reopen() {
	if t.status.IsOpen() {
		return
	}
	t.status = vo.StatusOpen
	t.touch()
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
	t.version++
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
