package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/ticket"
	vo "ticketsystem/internal/domain/ticket/valueobjects"
	"ticketsystem/internal/shared/authorization"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type mockTicketRepository struct {
	TotalsFunc             func(ctx context.Context) (ticket.Totals, error)
	ListCreatedBetweenFunc func(ctx context.Context, from, to time.Time) ([]ticket.CreationFact, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error    { return nil }

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByProject(ctx context.Context, scope access.TicketScope) (map[uint]int64, error) {
	return nil, nil
}

func (m *mockTicketRepository) CountReferencingProject(ctx context.Context, projectID uint) (int64, error) {
	return 0, nil
}

func (m *mockTicketRepository) Totals(ctx context.Context) (ticket.Totals, error) {
	if m.TotalsFunc != nil {
		return m.TotalsFunc(ctx)
	}
	return ticket.Totals{}, nil
}

func (m *mockTicketRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]ticket.CreationFact, error) {
	if m.ListCreatedBetweenFunc != nil {
		return m.ListCreatedBetweenFunc(ctx, from, to)
	}
	return nil, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Fatal(msg string, args ...any)                   {}
func (noopLogger) With(args ...any) logger.Interface               { return noopLogger{} }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func adminActor() access.Actor {
	return access.Actor{UserID: 1, Role: authorization.RoleAdmin}
}

// Wednesday 2024-03-13; its week starts Monday 2024-03-11.
func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, time.March, 13, 15, 45, 0, 0, time.UTC)
	}
}

func TestWeeklyReportUseCase_Execute(t *testing.T) {
	t.Run("dashboard is admin only", func(t *testing.T) {
		uc := NewWeeklyReportUseCaseWithClock(&mockTicketRepository{}, fixedClock(), noopLogger{})

		for _, role := range []authorization.UserRole{authorization.RoleDeveloper, authorization.RoleUser} {
			_, err := uc.Execute(context.Background(), WeeklyReportQuery{
				Actor: access.Actor{UserID: 2, Role: role},
			})
			assert.True(t, errors.IsForbiddenError(err), "role %s", role)
		}
	})

	t.Run("window is the Monday week containing now", func(t *testing.T) {
		var from, to time.Time
		repo := &mockTicketRepository{
			ListCreatedBetweenFunc: func(ctx context.Context, f, tt time.Time) ([]ticket.CreationFact, error) {
				from, to = f, tt
				return nil, nil
			},
		}
		uc := NewWeeklyReportUseCaseWithClock(repo, fixedClock(), noopLogger{})

		report, err := uc.Execute(context.Background(), WeeklyReportQuery{Actor: adminActor()})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC), to)
		assert.Equal(t, from, report.WeekStart)
		assert.Equal(t, time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC), report.WeekEnd)
	})

	t.Run("offset shifts the window by whole weeks", func(t *testing.T) {
		var from time.Time
		repo := &mockTicketRepository{
			ListCreatedBetweenFunc: func(ctx context.Context, f, tt time.Time) ([]ticket.CreationFact, error) {
				from = f
				return nil, nil
			},
		}
		uc := NewWeeklyReportUseCaseWithClock(repo, fixedClock(), noopLogger{})

		_, err := uc.Execute(context.Background(), WeeklyReportQuery{WeekOffset: -2, Actor: adminActor()})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC), from)
	})

	t.Run("counts land on the right day and priority", func(t *testing.T) {
		weekStart := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
		repo := &mockTicketRepository{
			ListCreatedBetweenFunc: func(ctx context.Context, f, tt time.Time) ([]ticket.CreationFact, error) {
				return []ticket.CreationFact{
					{CreatedAt: weekStart.Add(2 * time.Hour), Priority: vo.PriorityLow},
					{CreatedAt: weekStart.AddDate(0, 0, 2).Add(9 * time.Hour), Priority: vo.PriorityHigh},
					{CreatedAt: weekStart.AddDate(0, 0, 2).Add(11 * time.Hour), Priority: vo.PriorityHigh},
					{CreatedAt: weekStart.AddDate(0, 0, 6).Add(23 * time.Hour), Priority: vo.PriorityMedium},
					// outside the window, must be skipped rather than counted
					{CreatedAt: weekStart.AddDate(0, 0, 7), Priority: vo.PriorityLow},
				}, nil
			},
			TotalsFunc: func(ctx context.Context) (ticket.Totals, error) {
				return ticket.Totals{Total: 40, Open: 25, Closed: 15}, nil
			},
		}
		uc := NewWeeklyReportUseCaseWithClock(repo, fixedClock(), noopLogger{})

		report, err := uc.Execute(context.Background(), WeeklyReportQuery{Actor: adminActor()})

		require.NoError(t, err)
		assert.Equal(t, [7]int{1, 0, 0, 0, 0, 0, 0}, report.LowCounts)
		assert.Equal(t, [7]int{0, 0, 2, 0, 0, 0, 0}, report.HighCounts)
		assert.Equal(t, [7]int{0, 0, 0, 0, 0, 0, 1}, report.MediumCounts)
		assert.EqualValues(t, 40, report.TotalTickets)
		assert.EqualValues(t, 25, report.OpenTickets)
		assert.EqualValues(t, 15, report.ClosedTickets)
	})

	t.Run("labels run Monday through Sunday", func(t *testing.T) {
		uc := NewWeeklyReportUseCaseWithClock(&mockTicketRepository{}, fixedClock(), noopLogger{})

		report, err := uc.Execute(context.Background(), WeeklyReportQuery{Actor: adminActor()})

		require.NoError(t, err)
		assert.Equal(t, [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, report.DayLabels)
	})
}
