package domain

import "time"

// SubmissionStatus represents the status of a submitted booking
type SubmissionStatus string

const (
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusRejected  SubmissionStatus = "rejected"
)

// Submission is the gateway-side record of a booking sent to the backend
type Submission struct {
	ID           int64
	DraftID      string
	UserID       string
	PackageID    string
	PatientID    string
	NursingID    *string
	RemoteID     *string // cuspackage id returned by the backend
	NumberOfDays int
	Interval     int
	Status       SubmissionStatus

	DiscountPercent         float64
	TotalDurationMinutes    int
	TotalPricePerDay        int64
	DiscountedPricePerDay   int64
	TotalPriceWithDays      int64
	DiscountedPriceWithDays int64

	Dates []string // RFC 3339 date-times, one per occurrence
	Tasks []SubmissionTask

	CreatedAt time.Time
}

// SubmissionTask per-task line of a submitted booking
type SubmissionTask struct {
	TaskID      string
	TotalUnit   int
	TotalCost   int64
	EstDuration int
	ClientNote  string
}
