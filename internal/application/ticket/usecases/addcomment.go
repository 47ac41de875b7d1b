package usecases

import (
	"context"
	"time"

	appnotification "ticketsystem/internal/application/notification"
	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	Text     string
	Actor    access.Actor
}

type AddCommentResult struct {
	CommentID   uint
	TicketID    uint
	CommentedAt time.Time
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	notifier    appnotification.Notifier
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	notifier appnotification.Notifier,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case",
		"ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// Commenting needs no extra permission beyond being able to see the
	// ticket.
	if !access.CanViewTicket(cmd.Actor, existing.CreatorID(), existing.AssigneeID()) {
		return nil, errors.NewForbiddenError("not allowed to access this ticket")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Actor.UserID, cmd.Text)
	if err != nil {
		return nil, err
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.notifier.CommentAdded(ctx, ticket.NewCommentAddedEvent(
		existing.ID(),
		existing.Title(),
		comment.ID(),
		cmd.Actor.UserID,
		existing.CreatorID(),
		existing.AssigneeID(),
		comment.CommentedAt(),
	))

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", comment.ID())

	return &AddCommentResult{
		CommentID:   comment.ID(),
		TicketID:    cmd.TicketID,
		CommentedAt: comment.CommentedAt(),
	}, nil
}
