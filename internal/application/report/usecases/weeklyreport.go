package usecases

import (
	"context"
	"time"

	"ticketsystem/internal/application/report/dto"
	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/ticket"
	vo "ticketsystem/internal/domain/ticket/valueobjects"
	"ticketsystem/internal/shared/biztime"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type WeeklyReportQuery struct {
	// WeekOffset selects the week relative to now: 0 is the current week,
	// negative values go back.
	WeekOffset int
	Actor      access.Actor
}

type WeeklyReportUseCase struct {
	ticketRepo ticket.TicketRepository
	now        func() time.Time
	logger     logger.Interface
}

func NewWeeklyReportUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *WeeklyReportUseCase {
	return &WeeklyReportUseCase{
		ticketRepo: ticketRepo,
		now:        biztime.NowUTC,
		logger:     logger,
	}
}

// NewWeeklyReportUseCaseWithClock pins the clock, for tests.
func NewWeeklyReportUseCaseWithClock(ticketRepo ticket.TicketRepository, now func() time.Time, logger logger.Interface) *WeeklyReportUseCase {
	return &WeeklyReportUseCase{
		ticketRepo: ticketRepo,
		now:        now,
		logger:     logger,
	}
}

func (uc *WeeklyReportUseCase) Execute(ctx context.Context, query WeeklyReportQuery) (*dto.WeeklyReportDTO, error) {
	if !access.CanPerform(query.Actor, access.ActionViewDashboard) {
		return nil, errors.NewForbiddenError("dashboard is admin only")
	}

	weekStart := biztime.WeekStartUTC(uc.now()).AddDate(0, 0, 7*query.WeekOffset)
	weekEnd := weekStart.AddDate(0, 0, 7)

	facts, err := uc.ticketRepo.ListCreatedBetween(ctx, weekStart, weekEnd)
	if err != nil {
		uc.logger.Errorw("failed to load creation facts", "week_start", weekStart, "error", err)
		return nil, err
	}

	totals, err := uc.ticketRepo.Totals(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load ticket totals", "error", err)
		return nil, err
	}

	report := &dto.WeeklyReportDTO{
		TotalTickets:  totals.Total,
		OpenTickets:   totals.Open,
		ClosedTickets: totals.Closed,
		WeekStart:     weekStart,
		WeekEnd:       weekStart.AddDate(0, 0, 6),
	}
	for i := 0; i < 7; i++ {
		report.DayLabels[i] = weekStart.AddDate(0, 0, i).Format("Mon")
	}

	for _, fact := range facts {
		day := biztime.DayIndex(weekStart, fact.CreatedAt)
		if day < 0 || day > 6 {
			continue
		}
		switch fact.Priority {
		case vo.PriorityLow:
			report.LowCounts[day]++
		case vo.PriorityMedium:
			report.MediumCounts[day]++
		case vo.PriorityHigh:
			report.HighCounts[day]++
		}
	}

	return report, nil
}
