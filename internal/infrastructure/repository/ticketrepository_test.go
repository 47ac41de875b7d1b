package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/notification"
	"ticketsystem/internal/domain/project"
	"ticketsystem/internal/domain/ticket"
	vo "ticketsystem/internal/domain/ticket/valueobjects"
	"ticketsystem/internal/infrastructure/persistence/models"
	"ticketsystem/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.ProjectModel{},
		&models.NotificationModel{},
		&models.UserModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, title string, priority vo.Priority, creatorID uint) *ticket.Ticket {
	tk, err := ticket.NewTicket(title, "test description", priority, vo.TypeBug, creatorID, nil)
	require.NoError(t, err)
	return tk
}

func uintPtr(v uint) *uint {
	return &v
}

func TestTicketRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Crash on login", vo.PriorityHigh, 1)
	require.NoError(t, repo.Save(ctx, tk))
	assert.NotZero(t, tk.ID())

	loaded, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Crash on login", loaded.Title())
	assert.Equal(t, vo.PriorityHigh, loaded.Priority())
	assert.Equal(t, 1, loaded.Version())
	assert.Equal(t, tk.CreatedAt().UnixMilli(), loaded.CreatedAt().UnixMilli())
}

func TestTicketRepository_GetByID_Missing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)

	loaded, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestTicketRepository_Update_VersionConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Concurrent edit", vo.PriorityLow, 1)
	require.NoError(t, repo.Save(ctx, tk))

	first, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)

	first.Close()
	require.NoError(t, repo.Update(ctx, first))

	second.Close()
	err = repo.Update(ctx, second)
	assert.True(t, errors.IsConflictError(err))
}

func TestTicketRepository_Update_NoOpTransitions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("re-closing a closed ticket succeeds", func(t *testing.T) {
		tk := createTestTicket(t, "Already closed", vo.PriorityLow, 1)
		require.NoError(t, repo.Save(ctx, tk))
		tk.Close()
		require.NoError(t, repo.Update(ctx, tk))

		loaded, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		loaded.Close()
		require.NoError(t, repo.Update(ctx, loaded))

		again, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.True(t, again.Status().IsClosed())
		assert.Equal(t, loaded.Version(), again.Version())
	})

	t.Run("reassigning to the current assignee succeeds", func(t *testing.T) {
		tk := createTestTicket(t, "Already assigned", vo.PriorityMedium, 1)
		require.NoError(t, repo.Save(ctx, tk))
		tk.Reassign(uintPtr(9))
		require.NoError(t, repo.Update(ctx, tk))

		loaded, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		loaded.Reassign(uintPtr(9))
		require.NoError(t, repo.Update(ctx, loaded))

		again, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		require.NotNil(t, again.AssigneeID())
		assert.EqualValues(t, 9, *again.AssigneeID())
		assert.Equal(t, loaded.Version(), again.Version())
	})
}

func TestTicketRepository_List_Scopes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	created := createTestTicket(t, "Created by dev", vo.PriorityLow, 20)
	require.NoError(t, repo.Save(ctx, created))

	assigned := createTestTicket(t, "Assigned to dev", vo.PriorityMedium, 7)
	require.NoError(t, repo.Save(ctx, assigned))
	assigned.Reassign(uintPtr(20))
	require.NoError(t, repo.Update(ctx, assigned))

	foreign := createTestTicket(t, "Unrelated", vo.PriorityHigh, 7)
	require.NoError(t, repo.Save(ctx, foreign))

	t.Run("admin scope sees all", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{
			Scope: access.TicketScope{All: true}, Page: 1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, tickets, 3)
	})

	t.Run("developer scope sees created and assigned", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{
			Scope: access.TicketScope{CreatorOrAssigneeID: uintPtr(20)}, Page: 1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		titles := []string{tickets[0].Title(), tickets[1].Title()}
		assert.ElementsMatch(t, []string{"Created by dev", "Assigned to dev"}, titles)
	})

	t.Run("user scope sees only their own", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.TicketFilter{
			Scope: access.TicketScope{CreatorID: uintPtr(20)}, Page: 1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})

	t.Run("empty scope matches nothing", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.TicketFilter{Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestTicketRepository_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	high := createTestTicket(t, "High priority", vo.PriorityHigh, 1)
	require.NoError(t, repo.Save(ctx, high))
	low := createTestTicket(t, "Low priority", vo.PriorityLow, 1)
	require.NoError(t, repo.Save(ctx, low))
	low.Close()
	require.NoError(t, repo.Update(ctx, low))

	priority := vo.PriorityHigh
	tickets, total, err := repo.List(ctx, ticket.TicketFilter{
		Scope:    access.TicketScope{All: true},
		Priority: &priority,
		Page:     1, PageSize: 20,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "High priority", tickets[0].Title())

	status := vo.StatusClosed
	tickets, total, err = repo.List(ctx, ticket.TicketFilter{
		Scope:  access.TicketScope{All: true},
		Status: &status,
		Page:   1, PageSize: 20,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Low priority", tickets[0].Title())
}

func TestTicketRepository_Totals(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	open := createTestTicket(t, "Open one", vo.PriorityLow, 1)
	require.NoError(t, repo.Save(ctx, open))
	closed := createTestTicket(t, "Closed one", vo.PriorityLow, 1)
	require.NoError(t, repo.Save(ctx, closed))
	closed.Close()
	require.NoError(t, repo.Update(ctx, closed))

	totals, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, totals.Total)
	assert.EqualValues(t, 1, totals.Open)
	assert.EqualValues(t, 1, totals.Closed)
}

func TestTicketRepository_ListCreatedBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "This week", vo.PriorityMedium, 1)
	require.NoError(t, repo.Save(ctx, tk))

	from := tk.CreatedAt().Add(-time.Hour)
	to := tk.CreatedAt().Add(time.Hour)

	facts, err := repo.ListCreatedBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, facts, 1)
	assert.Equal(t, vo.PriorityMedium, facts[0].Priority)

	facts, err = repo.ListCreatedBetween(ctx, to, to.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, facts)
}

func TestProjectRepository_DeleteRestrict(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := NewProjectRepository(db)
	ticketRepo := NewTicketRepository(db)
	ctx := context.Background()

	p, err := project.NewProject("Billing", "invoicing work")
	require.NoError(t, err)
	require.NoError(t, projectRepo.Save(ctx, p))

	tk, err := ticket.NewTicket("In project", "d", vo.PriorityLow, vo.TypeBug, 1, uintPtr(p.ID()))
	require.NoError(t, err)
	require.NoError(t, ticketRepo.Save(ctx, tk))

	err = projectRepo.Delete(ctx, p.ID())
	assert.True(t, errors.IsConflictError(err))

	count, err := ticketRepo.CountReferencingProject(ctx, p.ID())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestNotificationRepository_Flow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		n, err := notification.NewNotification(5, "message", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, n))
	}

	unread, err := repo.CountUnread(ctx, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 3, unread)

	listed, err := repo.ListByUserID(ctx, 5, 2)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	require.NoError(t, repo.MarkAllRead(ctx, 5))
	unread, err = repo.CountUnread(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestNotificationRepository_DeleteReadBefore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	seed := func(read bool, createdAt time.Time) {
		require.NoError(t, db.Create(&models.NotificationModel{
			UserID:    5,
			Message:   "message",
			IsRead:    read,
			CreatedAt: createdAt.UnixMilli(),
		}).Error)
	}
	seed(true, time.Now().Add(-48*time.Hour))
	seed(false, time.Now().Add(-48*time.Hour))
	seed(true, time.Now())

	deleted, err := repo.DeleteReadBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	remaining, err := repo.ListByUserID(ctx, 5, 10)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}
