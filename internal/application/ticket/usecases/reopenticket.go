package usecases

import (
	"context"
	"time"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type ReopenTicketCommand struct {
	TicketID uint
	Actor    access.Actor
}

type ReopenTicketResult struct {
	TicketID  uint
	Status    string
	Version   int
	UpdatedAt time.Time
}

type ReopenTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewReopenTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ReopenTicketUseCase {
	return &ReopenTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ReopenTicketUseCase) Execute(ctx context.Context, cmd ReopenTicketCommand) (*ReopenTicketResult, error) {
	uc.logger.Infow("executing reopen ticket use case",
		"ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !access.CanViewTicket(cmd.Actor, existing.CreatorID(), existing.AssigneeID()) {
		return nil, errors.NewForbiddenError("not allowed to access this ticket")
	}
	if !access.Can(cmd.Actor, access.ActionReopenTicket, existing.AssigneeID()) {
		return nil, errors.NewForbiddenError("not allowed to reopen this ticket")
	}

	existing.Reopen()

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to reopen ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket reopened", "ticket_id", existing.ID())

	return &ReopenTicketResult{
		TicketID:  existing.ID(),
		Status:    existing.Status().String(),
		Version:   existing.Version(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
