package domain

import "time"

// Draft is the booking session carried between the package, task, schedule and confirmation steps
type Draft struct {
	ID              string
	UserID          string
	PackageID       string
	PatientID       string
	NursingID       *string // nil = nurse assigned by the system
	NumberOfDays    int
	Interval        int // minimum days between occurrences
	DiscountPercent float64
	Lines           []TaskLine
	Occurrences     []Occurrence
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwnedBy returns true if the draft belongs to the user
func (d *Draft) IsOwnedBy(userID string) bool {
	return d.UserID == userID
}

// HasTask returns true if the task is already selected
func (d *Draft) HasTask(taskID string) bool {
	for _, line := range d.Lines {
		if line.Task.ID == taskID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no mutable slices with d
func (d *Draft) Clone() *Draft {
	out := *d
	out.Lines = make([]TaskLine, len(d.Lines))
	copy(out.Lines, d.Lines)
	out.Occurrences = make([]Occurrence, len(d.Occurrences))
	copy(out.Occurrences, d.Occurrences)
	if d.NursingID != nil {
		nursingID := *d.NursingID
		out.NursingID = &nursingID
	}
	return &out
}
