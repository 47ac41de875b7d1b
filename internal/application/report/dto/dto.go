package dto

import "time"

// WeeklyReportDTO is the admin dashboard payload: all-time counters plus a
// seven day creation breakdown for one week.
type WeeklyReportDTO struct {
	TotalTickets  int64     `json:"total_tickets"`
	OpenTickets   int64     `json:"open_tickets"`
	ClosedTickets int64     `json:"closed_tickets"`
	WeekStart     time.Time `json:"week_start"`
	WeekEnd       time.Time `json:"week_end"`
	DayLabels     [7]string `json:"day_labels"`
	LowCounts     [7]int    `json:"low_counts"`
	MediumCounts  [7]int    `json:"medium_counts"`
	HighCounts    [7]int    `json:"high_counts"`
}
