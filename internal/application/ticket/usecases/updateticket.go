package usecases

import (
	"context"
	"time"

	appnotification "ticketsystem/internal/application/notification"
	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/identity"
	"ticketsystem/internal/domain/project"
	"ticketsystem/internal/domain/ticket"
	vo "ticketsystem/internal/domain/ticket/valueobjects"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	Title       string
	Description string
	Priority    string
	Type        string
	ProjectID   *uint
	AssigneeID  *uint
	Version     int
	Actor       access.Actor
}

type UpdateTicketResult struct {
	TicketID  uint
	Version   int
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	projectRepo project.ProjectRepository
	directory   identity.Directory
	notifier    appnotification.Notifier
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	projectRepo project.ProjectRepository,
	directory identity.Directory,
	notifier appnotification.Notifier,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		directory:   directory,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case",
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
	if !access.Can(cmd.Actor, access.ActionEditTicket, existing.AssigneeID()) {
		return nil, errors.NewForbiddenError("not allowed to edit this ticket")
	}

	if cmd.Version != existing.Version() {
		return nil, errors.NewConflictError("ticket was modified by someone else")
	}

	var fields []errors.FieldError
	if cmd.ProjectID != nil {
		exists, err := uc.projectRepo.Exists(ctx, *cmd.ProjectID)
		if err != nil {
			uc.logger.Errorw("failed to check project existence", "project_id", *cmd.ProjectID, "error", err)
			return nil, err
		}
		if !exists {
			fields = append(fields, errors.FieldError{
				Field:   "project_id",
				Message: "project does not exist",
			})
		}
	}

	if err := existing.UpdateDetails(
		cmd.Title,
		cmd.Description,
		vo.Priority(cmd.Priority),
		vo.TicketType(cmd.Type),
		cmd.ProjectID,
	); err != nil {
		appErr := errors.GetAppError(err)
		if appErr == nil || appErr.Type != errors.ErrorTypeValidation {
			return nil, err
		}
		fields = append(fields, appErr.Fields...)
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	// Only admins may move the assignee through an edit. Anything a
	// non-admin submitted is discarded in favor of the stored value.
	notifyAssignee := false
	if cmd.Actor.IsAdmin() {
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
		notifyAssignee = existing.Reassign(cmd.AssigneeID) && *cmd.AssigneeID != cmd.Actor.UserID
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if notifyAssignee {
		uc.notifier.TicketAssigned(ctx, ticket.NewTicketAssignedEvent(
			existing.ID(),
			existing.Title(),
			*cmd.AssigneeID,
			cmd.Actor.UserID,
			existing.UpdatedAt(),
		))
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", existing.ID(), "version", existing.Version())

	return &UpdateTicketResult{
		TicketID:  existing.ID(),
		Version:   existing.Version(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
