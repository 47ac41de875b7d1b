package usecases

import (
	"context"

	"ticketsystem/internal/application/ticket/dto"
	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/ticket"
	vo "ticketsystem/internal/domain/ticket/valueobjects"
	"ticketsystem/internal/shared/constants"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status    string
	Priority  string
	Type      string
	ProjectID *uint
	Page      int
	PageSize  int
	Actor     access.Actor
}

type ListTicketsResult struct {
	Tickets []dto.TicketListItemDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, *filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "actor_id", query.Actor.UserID, "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketListItemDTOs(tickets),
		Total:   total,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (*ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		Scope:     access.ScopeFor(query.Actor),
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    "created_at",
		SortOrder: "desc",
	}

	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}

	var fields []errors.FieldError
	if query.Status != "" {
		status, ok := vo.ParseTicketStatus(query.Status)
		if !ok {
			fields = append(fields, errors.FieldError{Field: "status", Message: "unknown status"})
		} else {
			filter.Status = &status
		}
	}
	if query.Priority != "" {
		priority, ok := vo.ParsePriority(query.Priority)
		if !ok {
			fields = append(fields, errors.FieldError{Field: "priority", Message: "unknown priority"})
		} else {
			filter.Priority = &priority
		}
	}
	if query.Type != "" {
		ticketType, ok := vo.ParseTicketType(query.Type)
		if !ok {
			fields = append(fields, errors.FieldError{Field: "type", Message: "unknown ticket type"})
		} else {
			filter.Type = &ticketType
		}
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	filter.ProjectID = query.ProjectID
	return &filter, nil
}
