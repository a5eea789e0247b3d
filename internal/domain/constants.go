package domain

import "github.com/curanest/booking-gateway/pkg/types"

// Default scheduling values
const (
	DefaultStartTime   types.TimeString = "08:00"
	DefaultOpeningTime types.TimeString = "06:00"
	DefaultClosingTime types.TimeString = "22:00"
	DefaultTimezone                     = "Asia/Ho_Chi_Minh"
)

// Business validation constants
const (
	MinNumberOfDays    = 1
	MaxNumberOfDays    = 60
	MinInterval        = 1
	MaxInterval        = 30
	MaxDiscountPercent = 100
	MaxNoteLength      = 500
	MaxQuantity        = types.MinutesInDay // also caps counted tasks
)

// Time format constants
const (
	TimeFormat = types.TimeFormat // HH:MM
	DateFormat = "2006-01-02"     // YYYY-MM-DD
)
