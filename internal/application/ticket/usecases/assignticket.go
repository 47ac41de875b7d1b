package usecases

import (
	"context"
	"time"

	appnotification "ticketsystem/internal/application/notification"
	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/identity"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID *uint
	Actor      access.Actor
}

type AssignTicketResult struct {
	TicketID   uint
	AssigneeID *uint
	Version    int
	UpdatedAt  time.Time
}

type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	directory  identity.Directory
	notifier   appnotification.Notifier
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	directory identity.Directory,
	notifier appnotification.Notifier,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		directory:  directory,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	if !access.CanPerform(cmd.Actor, access.ActionReassignTicket) {
		return nil, errors.NewForbiddenError("only admins can reassign tickets")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if cmd.AssigneeID != nil {
		exists, err := uc.directory.Exists(ctx, *cmd.AssigneeID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errors.NewFieldValidationError([]errors.FieldError{
				{Field: "assignee_id", Message: "assignee does not exist"},
			})
		}
	}

	notify := existing.Reassign(cmd.AssigneeID) && *cmd.AssigneeID != cmd.Actor.UserID

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to persist assignment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if notify {
		uc.notifier.TicketAssigned(ctx, ticket.NewTicketAssignedEvent(
			existing.ID(),
			existing.Title(),
			*cmd.AssigneeID,
			cmd.Actor.UserID,
			existing.UpdatedAt(),
		))
	}

	uc.logger.Infow("ticket reassigned", "ticket_id", existing.ID(), "assignee_id", cmd.AssigneeID)

	return &AssignTicketResult{
		TicketID:   existing.ID(),
		AssigneeID: existing.AssigneeID(),
		Version:    existing.Version(),
		UpdatedAt:  existing.UpdatedAt(),
	}, nil
}
