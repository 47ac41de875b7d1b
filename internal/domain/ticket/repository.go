package ticket

import (
	"context"
	"time"

	"ticketsystem/internal/domain/access"
	vo "ticketsystem/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	// Update persists the aggregate and fails with a conflict error when
	// the stored row no longer carries the version the aggregate was
	// loaded with.
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	// CountByProject returns per-project ticket counts limited to the
	// given visibility scope.
	CountByProject(ctx context.Context, scope access.TicketScope) (map[uint]int64, error)
	CountReferencingProject(ctx context.Context, projectID uint) (int64, error)
	// Totals returns the unscoped all-time counters.
	Totals(ctx context.Context) (Totals, error)
	// ListCreatedBetween returns creation facts in [from, to) for
	// aggregation, unscoped.
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]CreationFact, error)
}

// TicketFilter narrows and pages List queries. Scope is mandatory; an empty
// scope matches nothing.
type TicketFilter struct {
	Scope     access.TicketScope
	Status    *vo.TicketStatus
	Priority  *vo.Priority
	Type      *vo.TicketType
	ProjectID *uint
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Totals are the all-time dashboard counters.
type Totals struct {
	Total  int64
	Open   int64
	Closed int64
}

// CreationFact is the minimal projection used by the weekly aggregation.
type CreationFact struct {
	CreatedAt time.Time
	Priority  vo.Priority
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}

type AttachmentRepository interface {
	SaveBatch(ctx context.Context, attachments []*Attachment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
