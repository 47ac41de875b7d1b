package usecases

import (
	"context"

	"ticketsystem/internal/application/ticket/dto"
	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
	"ticketsystem/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID uint
	Actor    access.Actor
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	markdownSvc    markdown.MarkdownService
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		markdownSvc:    markdownSvc,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	existing, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// A ticket outside the caller's scope exists but is off limits, so
	// the answer is forbidden rather than not found.
	if !access.CanViewTicket(query.Actor, existing.CreatorID(), existing.AssigneeID()) {
		return nil, errors.NewForbiddenError("not allowed to access this ticket")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	result := dto.ToTicketDTO(existing, comments, attachments)

	if html, err := uc.markdownSvc.ToHTMLSanitized(existing.Description()); err != nil {
		uc.logger.Warnw("failed to render ticket description", "ticket_id", query.TicketID, "error", err)
	} else {
		result.DescriptionHTML = html
	}
	for i := range result.Comments {
		html, err := uc.markdownSvc.ToHTMLSanitized(result.Comments[i].Text)
		if err != nil {
			uc.logger.Warnw("failed to render comment", "ticket_id", query.TicketID, "error", err)
			continue
		}
		result.Comments[i].TextHTML = html
	}

	return result, nil
}
