// Package notification turns ticket workflow events into per-user inbox
// entries. Dispatch runs synchronously inside the request after the primary
// write committed, and failures are logged, never propagated: losing a
// notification must not fail the mutation that produced it.
package notification

import (
	"context"
	"fmt"

	"ticketsystem/internal/domain/identity"
	"ticketsystem/internal/domain/notification"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/authorization"
	"ticketsystem/internal/shared/logger"
)

// Notifier receives workflow events from the mutation use cases.
type Notifier interface {
	TicketCreated(ctx context.Context, ev ticket.TicketCreatedEvent)
	CommentAdded(ctx context.Context, ev ticket.CommentAddedEvent)
	TicketAssigned(ctx context.Context, ev ticket.TicketAssignedEvent)
}

// MessageSink mirrors each stored notification to an external channel,
// such as SMTP. Implementations are best-effort.
type MessageSink interface {
	Send(ctx context.Context, userID uint, message string) error
}

type DispatchNotifier struct {
	notificationRepo notification.NotificationRepository
	directory        identity.Directory
	sink             MessageSink
	logger           logger.Interface
}

func NewDispatchNotifier(
	notificationRepo notification.NotificationRepository,
	directory identity.Directory,
	sink MessageSink,
	logger logger.Interface,
) *DispatchNotifier {
	return &DispatchNotifier{
		notificationRepo: notificationRepo,
		directory:        directory,
		sink:             sink,
		logger:           logger,
	}
}

// TicketCreated notifies every admin except the creator.
func (n *DispatchNotifier) TicketCreated(ctx context.Context, ev ticket.TicketCreatedEvent) {
	admins, err := n.directory.ListByRole(ctx, authorization.RoleAdmin)
	if err != nil {
		n.logger.Errorw("failed to list admins for ticket-created notification",
			"ticket_id", ev.TicketID, "error", err)
		return
	}

	message := fmt.Sprintf("New ticket created: %q", ev.Title)
	for _, admin := range admins {
		if admin.ID == ev.CreatorID {
			continue
		}
		n.deliver(ctx, admin.ID, message, ev.TicketID)
	}
}

// CommentAdded notifies the ticket creator and the assignee, never the
// commenter. A creator who is also the assignee gets exactly one entry.
func (n *DispatchNotifier) CommentAdded(ctx context.Context, ev ticket.CommentAddedEvent) {
	if ev.TicketCreatorID != ev.CommenterID {
		n.deliver(ctx, ev.TicketCreatorID,
			fmt.Sprintf("Your ticket %q received a new comment.", ev.Title), ev.TicketID)
	}

	if ev.AssigneeID == nil {
		return
	}
	assignee := *ev.AssigneeID
	if assignee == ev.CommenterID || assignee == ev.TicketCreatorID {
		return
	}
	n.deliver(ctx, assignee,
		fmt.Sprintf("Ticket %q has a new comment.", ev.Title), ev.TicketID)
}

// TicketAssigned notifies the new assignee. Callers only emit the event on
// an actual change to a non-nil assignee.
func (n *DispatchNotifier) TicketAssigned(ctx context.Context, ev ticket.TicketAssignedEvent) {
	if ev.AssigneeID == ev.AssignedBy {
		return
	}
	n.deliver(ctx, ev.AssigneeID,
		fmt.Sprintf("A ticket %q has been assigned to you.", ev.Title), ev.TicketID)
}

func (n *DispatchNotifier) deliver(ctx context.Context, userID uint, message string, ticketID uint) {
	entry, err := notification.NewNotification(userID, message, &ticketID)
	if err != nil {
		n.logger.Errorw("failed to build notification", "user_id", userID, "error", err)
		return
	}
	if err := n.notificationRepo.Create(ctx, entry); err != nil {
		n.logger.Errorw("failed to persist notification",
			"user_id", userID, "ticket_id", ticketID, "error", err)
		return
	}
	if n.sink != nil {
		if err := n.sink.Send(ctx, userID, message); err != nil {
			n.logger.Warnw("notification sink delivery failed",
				"user_id", userID, "error", err)
		}
	}
}
