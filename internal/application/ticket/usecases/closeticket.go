package usecases

import (
	"context"
	"time"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID uint
	Actor    access.Actor
}

type CloseTicketResult struct {
	TicketID  uint
	Status    string
	Version   int
	UpdatedAt time.Time
}

type CloseTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCloseTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	uc.logger.Infow("executing close ticket use case",
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
	if !access.Can(cmd.Actor, access.ActionCloseTicket, existing.AssigneeID()) {
		return nil, errors.NewForbiddenError("not allowed to close this ticket")
	}

	existing.Close()

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to close ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket closed", "ticket_id", existing.ID())

	return &CloseTicketResult{
		TicketID:  existing.ID(),
		Status:    existing.Status().String(),
		Version:   existing.Version(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
