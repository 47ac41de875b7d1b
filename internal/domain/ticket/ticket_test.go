package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "ticketsystem/internal/domain/ticket/valueobjects"
	"ticketsystem/internal/shared/errors"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		priority    vo.Priority
		ticketType  vo.TicketType
		creatorID   uint
		wantErr     bool
		wantFields  []string
	}{
		{
			name:        "valid ticket",
			title:       "Login page throws 500",
			description: "Stack trace attached",
			priority:    vo.PriorityHigh,
			ticketType:  vo.TypeBug,
			creatorID:   7,
		},
		{
			name:        "empty description is allowed",
			title:       "Add dark mode",
			description: "",
			priority:    vo.PriorityLow,
			ticketType:  vo.TypeRequest,
			creatorID:   7,
		},
		{
			name:        "blank title rejected",
			title:       "   ",
			description: "desc",
			priority:    vo.PriorityLow,
			ticketType:  vo.TypeBug,
			creatorID:   7,
			wantErr:     true,
			wantFields:  []string{"title"},
		},
		{
			name:        "all failures collected at once",
			title:       "",
			description: string(make([]byte, MaxDescriptionLength+1)),
			priority:    vo.Priority("urgent"),
			ticketType:  vo.TicketType("task"),
			creatorID:   7,
			wantErr:     true,
			wantFields:  []string{"title", "description", "priority", "type"},
		},
		{
			name:        "missing creator",
			title:       "ok",
			description: "",
			priority:    vo.PriorityLow,
			ticketType:  vo.TypeBug,
			creatorID:   0,
			wantErr:     true,
			wantFields:  []string{"creator_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := NewTicket(tt.title, tt.description, tt.priority, tt.ticketType, tt.creatorID, nil)

			if tt.wantErr {
				require.Error(t, err)
				appErr := errors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
				var got []string
				for _, f := range appErr.Fields {
					got = append(got, f.Field)
				}
				assert.ElementsMatch(t, tt.wantFields, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, vo.StatusOpen, ticket.Status())
			assert.Equal(t, 1, ticket.Version())
			assert.Equal(t, tt.creatorID, ticket.CreatorID())
			assert.Nil(t, ticket.AssigneeID())
			assert.False(t, ticket.CreatedAt().IsZero())
		})
	}
}

func TestTicketCloseReopen(t *testing.T) {
	ticket, err := NewTicket("t", "", vo.PriorityLow, vo.TypeBug, 1, nil)
	require.NoError(t, err)

	v := ticket.Version()
	ticket.Close()
	assert.Equal(t, vo.StatusClosed, ticket.Status())
	assert.Equal(t, v+1, ticket.Version())

	// re-closing is idempotent and does not bump the version
	ticket.Close()
	assert.Equal(t, vo.StatusClosed, ticket.Status())
	assert.Equal(t, v+1, ticket.Version())

	ticket.Reopen()
	assert.Equal(t, vo.StatusOpen, ticket.Status())
	assert.Equal(t, v+2, ticket.Version())

	ticket.Reopen()
	assert.Equal(t, vo.StatusOpen, ticket.Status())
	assert.Equal(t, v+2, ticket.Version())
}

func TestTicketReassign(t *testing.T) {
	ticket, err := NewTicket("t", "", vo.PriorityLow, vo.TypeBug, 1, nil)
	require.NoError(t, err)

	notify := ticket.Reassign(uintPtr(5))
	assert.True(t, notify)
	require.NotNil(t, ticket.AssigneeID())
	assert.Equal(t, uint(5), *ticket.AssigneeID())

	// no-op reassignment to the same user must not notify
	notify = ticket.Reassign(uintPtr(5))
	assert.False(t, notify)

	// clearing the assignee changes the ticket but notifies nobody
	notify = ticket.Reassign(nil)
	assert.False(t, notify)
	assert.Nil(t, ticket.AssigneeID())

	notify = ticket.Reassign(uintPtr(9))
	assert.True(t, notify)
}

func TestTicketUpdateDetails(t *testing.T) {
	ticket, err := NewTicket("initial", "body", vo.PriorityLow, vo.TypeBug, 1, nil)
	require.NoError(t, err)
	createdAt := ticket.CreatedAt()
	v := ticket.Version()

	err = ticket.UpdateDetails("updated", "new body", vo.PriorityHigh, vo.TypeQuestion, uintPtr(3))
	require.NoError(t, err)
	assert.Equal(t, "updated", ticket.Title())
	assert.Equal(t, vo.PriorityHigh, ticket.Priority())
	assert.Equal(t, vo.TypeQuestion, ticket.Type())
	require.NotNil(t, ticket.ProjectID())
	assert.Equal(t, uint(3), *ticket.ProjectID())
	assert.Equal(t, v+1, ticket.Version())
	assert.Equal(t, createdAt, ticket.CreatedAt())

	err = ticket.UpdateDetails("", "", vo.PriorityLow, vo.TypeBug, nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	// failed update leaves the aggregate untouched
	assert.Equal(t, "updated", ticket.Title())
	assert.Equal(t, v+1, ticket.Version())
}

func TestReconstructTicket(t *testing.T) {
	now := time.Now().UTC()
	ticket, err := ReconstructTicket(
		3, "t", "d", vo.PriorityMedium, vo.TypeRequest, vo.StatusClosed,
		2, uintPtr(4), uintPtr(1), 6,
		now, now,
	)
	require.NoError(t, err)
	assert.Equal(t, uint(3), ticket.ID())
	assert.Equal(t, 6, ticket.Version())
	assert.True(t, ticket.Status().IsClosed())

	// the base version pins the stored row; only mutations move Version past it
	assert.Equal(t, 6, ticket.BaseVersion())
	ticket.Close()
	assert.Equal(t, 6, ticket.BaseVersion())
	assert.Equal(t, 6, ticket.Version())
	ticket.Reopen()
	assert.Equal(t, 6, ticket.BaseVersion())
	assert.Equal(t, 7, ticket.Version())

	_, err = ReconstructTicket(
		0, "t", "d", vo.PriorityMedium, vo.TypeRequest, vo.StatusOpen,
		2, nil, nil, 1,
		now, now,
	)
	assert.Error(t, err)
}

func TestTicketSetID(t *testing.T) {
	ticket, err := NewTicket("t", "", vo.PriorityLow, vo.TypeBug, 1, nil)
	require.NoError(t, err)

	require.NoError(t, ticket.SetID(10))
	assert.Error(t, ticket.SetID(11))
	assert.Error(t, ticket.SetID(0))
}
