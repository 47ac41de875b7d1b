package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ticketsystem/internal/domain/identity"
	domainnotification "ticketsystem/internal/domain/notification"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/authorization"
)

func uintPtr(v uint) *uint {
	return &v
}

type captured struct {
	userID  uint
	message string
}

func capture(repo *mockNotificationRepository) *[]captured {
	var got []captured
	repo.CreateFunc = func(ctx context.Context, n *domainnotification.Notification) error {
		got = append(got, captured{userID: n.UserID(), message: n.Message()})
		return nil
	}
	return &got
}

func adminsDirectory(ids ...uint) *mockDirectory {
	return &mockDirectory{
		ListByRoleFunc: func(ctx context.Context, role authorization.UserRole) ([]*identity.User, error) {
			var users []*identity.User
			for _, id := range ids {
				users = append(users, &identity.User{ID: id, Role: authorization.RoleAdmin})
			}
			return users, nil
		},
	}
}

func TestTicketCreatedNotifiesAdminsExceptCreator(t *testing.T) {
	repo := &mockNotificationRepository{}
	got := capture(repo)
	n := NewDispatchNotifier(repo, adminsDirectory(1, 2, 3), nil, noopLogger{})

	n.TicketCreated(context.Background(), ticket.NewTicketCreatedEvent(10, "broken build", 2, "high", time.Now()))

	assert.Len(t, *got, 2)
	var recipients []uint
	for _, c := range *got {
		recipients = append(recipients, c.userID)
		assert.Equal(t, `New ticket created: "broken build"`, c.message)
	}
	assert.ElementsMatch(t, []uint{1, 3}, recipients)
}

func TestTicketCreatedByNonAdminNotifiesAllAdmins(t *testing.T) {
	repo := &mockNotificationRepository{}
	got := capture(repo)
	n := NewDispatchNotifier(repo, adminsDirectory(1, 2), nil, noopLogger{})

	n.TicketCreated(context.Background(), ticket.NewTicketCreatedEvent(10, "t", 99, "low", time.Now()))

	assert.Len(t, *got, 2)
}

func TestCommentAddedRecipients(t *testing.T) {
	tests := []struct {
		name        string
		commenterID uint
		creatorID   uint
		assigneeID  *uint
		want        []uint
	}{
		{
			name:        "third party comments, creator and assignee notified",
			commenterID: 9,
			creatorID:   1,
			assigneeID:  uintPtr(2),
			want:        []uint{1, 2},
		},
		{
			name:        "creator comments, only assignee notified",
			commenterID: 1,
			creatorID:   1,
			assigneeID:  uintPtr(2),
			want:        []uint{2},
		},
		{
			name:        "assignee comments, only creator notified",
			commenterID: 2,
			creatorID:   1,
			assigneeID:  uintPtr(2),
			want:        []uint{1},
		},
		{
			name:        "no assignee, only creator notified",
			commenterID: 9,
			creatorID:   1,
			want:        []uint{1},
		},
		{
			name:        "creator equals assignee gets exactly one",
			commenterID: 9,
			creatorID:   1,
			assigneeID:  uintPtr(1),
			want:        []uint{1},
		},
		{
			name:        "creator comments on own unassigned ticket, nobody notified",
			commenterID: 1,
			creatorID:   1,
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockNotificationRepository{}
			got := capture(repo)
			n := NewDispatchNotifier(repo, &mockDirectory{}, nil, noopLogger{})

			n.CommentAdded(context.Background(), ticket.NewCommentAddedEvent(
				10, "t", 5, tt.commenterID, tt.creatorID, tt.assigneeID, time.Now()))

			var recipients []uint
			for _, c := range *got {
				recipients = append(recipients, c.userID)
			}
			assert.Equal(t, tt.want, recipients)
		})
	}
}

func TestTicketAssignedNotifiesNewAssignee(t *testing.T) {
	repo := &mockNotificationRepository{}
	got := capture(repo)
	n := NewDispatchNotifier(repo, &mockDirectory{}, nil, noopLogger{})

	n.TicketAssigned(context.Background(), ticket.NewTicketAssignedEvent(10, "t", 5, 1, time.Now()))

	assert.Len(t, *got, 1)
	assert.Equal(t, uint(5), (*got)[0].userID)
	assert.Equal(t, `A ticket "t" has been assigned to you.`, (*got)[0].message)
}

func TestTicketAssignedToSelfSendsNothing(t *testing.T) {
	repo := &mockNotificationRepository{}
	got := capture(repo)
	n := NewDispatchNotifier(repo, &mockDirectory{}, nil, noopLogger{})

	n.TicketAssigned(context.Background(), ticket.NewTicketAssignedEvent(10, "t", 1, 1, time.Now()))

	assert.Empty(t, *got)
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	repo := &mockNotificationRepository{
		CreateFunc: func(ctx context.Context, n *domainnotification.Notification) error {
			return fmt.Errorf("db down")
		},
	}
	n := NewDispatchNotifier(repo, adminsDirectory(1), nil, noopLogger{})

	assert.NotPanics(t, func() {
		n.TicketCreated(context.Background(), ticket.NewTicketCreatedEvent(10, "t", 2, "low", time.Now()))
	})
}

func TestSinkMirrorsDeliveries(t *testing.T) {
	repo := &mockNotificationRepository{}
	sink := &mockSink{}
	n := NewDispatchNotifier(repo, adminsDirectory(1), sink, noopLogger{})

	n.TicketCreated(context.Background(), ticket.NewTicketCreatedEvent(10, "t", 2, "low", time.Now()))

	assert.Len(t, sink.sent, 1)
}
