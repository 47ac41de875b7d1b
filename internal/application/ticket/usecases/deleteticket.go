package usecases

import (
	"context"
	"fmt"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	Actor    access.Actor
}

type DeleteTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	blobStore      BlobStore
	txManager      TransactionManager
	logger         logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	blobStore BlobStore,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		blobStore:      blobStore,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case",
		"ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	if !access.CanPerform(cmd.Actor, access.ActionDeleteTicket) {
		return errors.NewForbiddenError("only admins can delete tickets")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("ticket not found")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByTicketID(txCtx, cmd.TicketID); err != nil {
			return err
		}
		if err := uc.attachmentRepo.DeleteByTicketID(txCtx, cmd.TicketID); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	// Notifications referencing the ticket stay around. Blob cleanup is
	// best effort once the rows are gone.
	prefix := fmt.Sprintf("tickets/%d/", cmd.TicketID)
	if err := uc.blobStore.DeletePrefix(ctx, prefix); err != nil {
		uc.logger.Warnw("failed to remove attachment blobs", "ticket_id", cmd.TicketID, "error", err)
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
