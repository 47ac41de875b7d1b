package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTicketStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TicketStatus
		ok    bool
	}{
		{
			name:  "valid open status",
			input: "open",
			want:  StatusOpen,
			ok:    true,
		},
		{
			name:  "valid closed status",
			input: "closed",
			want:  StatusClosed,
			ok:    true,
		},
		{
			name:  "invalid status",
			input: "resolved",
			ok:    false,
		},
		{
			name:  "empty string",
			input: "",
			ok:    false,
		},
		{
			name:  "case sensitive",
			input: "Open",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTicketStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTicketStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from TicketStatus
		to   TicketStatus
		want bool
	}{
		{
			name: "open to closed",
			from: StatusOpen,
			to:   StatusClosed,
			want: true,
		},
		{
			name: "closed to open",
			from: StatusClosed,
			to:   StatusOpen,
			want: true,
		},
		{
			name: "re-close is a no-op transition",
			from: StatusClosed,
			to:   StatusClosed,
			want: true,
		},
		{
			name: "re-open is a no-op transition",
			from: StatusOpen,
			to:   StatusOpen,
			want: true,
		},
		{
			name: "open to unknown",
			from: StatusOpen,
			to:   TicketStatus("archived"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTicketStatusPredicates(t *testing.T) {
	assert.True(t, StatusOpen.IsOpen())
	assert.False(t, StatusOpen.IsClosed())
	assert.True(t, StatusClosed.IsClosed())
	assert.False(t, StatusClosed.IsOpen())
}
