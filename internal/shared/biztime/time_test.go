package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStartUTC(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday rolls back to monday",
			in:   time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC),
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday is its own week start",
			in:   time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the preceding monday",
			in:   time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC),
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "non-UTC input is normalized",
			in:   time.Date(2026, 8, 24, 1, 0, 0, 0, time.FixedZone("plus3", 3*3600)),
			want: time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStartUTC(tt.in))
		})
	}
}

func TestDayIndex(t *testing.T) {
	weekStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DayIndex(weekStart, weekStart))
	assert.Equal(t, 0, DayIndex(weekStart, weekStart.Add(23*time.Hour)))
	assert.Equal(t, 6, DayIndex(weekStart, weekStart.AddDate(0, 0, 6)))
	assert.Equal(t, -1, DayIndex(weekStart, weekStart.AddDate(0, 0, 7)))
	assert.Equal(t, -1, DayIndex(weekStart, weekStart.Add(-time.Second)))
}
