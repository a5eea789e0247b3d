package domain

import (
	"time"

	"github.com/curanest/booking-gateway/pkg/types"
)

// Occurrence one scheduled calendar instance of a package
type Occurrence struct {
	DayIndex        int       // 1-based
	Date            time.Time // calendar date, midnight UTC
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Edited          bool // user touched the date or the time
}

// DateOnly normalizes t to a calendar date (midnight UTC) keeping its year, month and day
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b (negative if b is before a)
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// AddDays returns the calendar date n days after t
func AddDays(t time.Time, n int) time.Time {
	return DateOnly(t).AddDate(0, 0, n)
}
