package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	tests := []struct {
		name        string
		ticketID    uint
		commenterID uint
		text        string
		wantErr     bool
		wantText    string
	}{
		{
			name:        "valid comment",
			ticketID:    1,
			commenterID: 2,
			text:        "looks like a regression",
			wantText:    "looks like a regression",
		},
		{
			name:        "surrounding whitespace is trimmed",
			ticketID:    1,
			commenterID: 2,
			text:        "  fixed in main  ",
			wantText:    "fixed in main",
		},
		{
			name:        "whitespace-only text rejected",
			ticketID:    1,
			commenterID: 2,
			text:        "   \t\n ",
			wantErr:     true,
		},
		{
			name:        "empty text rejected",
			ticketID:    1,
			commenterID: 2,
			text:        "",
			wantErr:     true,
		},
		{
			name:        "text over limit rejected",
			ticketID:    1,
			commenterID: 2,
			text:        strings.Repeat("a", MaxCommentLength+1),
			wantErr:     true,
		},
		{
			name:        "missing ticket",
			ticketID:    0,
			commenterID: 2,
			text:        "hello",
			wantErr:     true,
		},
		{
			name:        "missing commenter",
			ticketID:    1,
			commenterID: 0,
			text:        "hello",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.ticketID, tt.commenterID, tt.text)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantText, c.Text())
			assert.Equal(t, tt.ticketID, c.TicketID())
			assert.Equal(t, tt.commenterID, c.CommenterID())
			assert.False(t, c.CommentedAt().IsZero())
			assert.Nil(t, c.UpdatedAt())
		})
	}
}
