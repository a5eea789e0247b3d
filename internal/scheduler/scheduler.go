// Package scheduler generates and edits the calendar occurrences of a multi-day package.
package scheduler

import (
	"fmt"
	"time"

	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/pkg/types"
)

// Options working-hours settings of the scheduler
type Options struct {
	DefaultStart types.TimeString
	OpeningTime  types.TimeString
	ClosingTime  types.TimeString
}

// DefaultOptions returns 08:00 default start and 06:00-22:00 working hours
func DefaultOptions() Options {
	return Options{
		DefaultStart: domain.DefaultStartTime,
		OpeningTime:  domain.DefaultOpeningTime,
		ClosingTime:  domain.DefaultClosingTime,
	}
}

// DatePicker editing buffer for the date of one occurrence
type DatePicker struct {
	Index   int
	Current time.Time
	MinDate time.Time
}

// TimePicker editing buffer for the start time of one occurrence
type TimePicker struct {
	Index    int
	Current  types.TimeString
	Earliest types.TimeString
	Latest   types.TimeString
}

// Scheduler holds the occurrences of one package selection
type Scheduler struct {
	today           time.Time
	interval        int
	durationMinutes int
	opts            Options
	occurrences     []domain.Occurrence
}

// New seeds numberOfDays occurrences starting today, spaced by interval days
func New(today time.Time, numberOfDays, interval, durationMinutes int, opts Options) *Scheduler {
	interval = normalizeInterval(interval)
	return &Scheduler{
		today:           domain.DateOnly(today),
		interval:        interval,
		durationMinutes: durationMinutes,
		opts:            opts,
		occurrences:     initOccurrences(today, numberOfDays, interval, durationMinutes, opts),
	}
}

// Restore rebuilds a scheduler from previously produced occurrences
func Restore(today time.Time, interval, durationMinutes int, occurrences []domain.Occurrence, opts Options) *Scheduler {
	s := &Scheduler{
		today:           domain.DateOnly(today),
		interval:        normalizeInterval(interval),
		durationMinutes: durationMinutes,
		opts:            opts,
		occurrences:     make([]domain.Occurrence, len(occurrences)),
	}
	copy(s.occurrences, occurrences)
	return s
}

// InitOccurrences seeds occurrences with the default 08:00 start and 22:00 closing time
func InitOccurrences(today time.Time, numberOfDays, interval, totalDurationMinutes int) []domain.Occurrence {
	return initOccurrences(today, numberOfDays, normalizeInterval(interval), totalDurationMinutes, DefaultOptions())
}

// ComputeEndTime derives the end time from the start and the duration, clamped to 22:00
func ComputeEndTime(start types.TimeString, durationMinutes int) types.TimeString {
	return computeEndTime(start, durationMinutes, domain.DefaultClosingTime)
}

// Occurrences returns a copy of the current occurrences
func (s *Scheduler) Occurrences() []domain.Occurrence {
	out := make([]domain.Occurrence, len(s.occurrences))
	copy(out, s.occurrences)
	return out
}

// Interval returns the effective minimum interval in days
func (s *Scheduler) Interval() int {
	return s.interval
}

// SetOccurrenceDate moves one occurrence and regenerates every later one from it.
// Nothing is changed if any resulting pair breaks the interval.
func (s *Scheduler) SetOccurrenceDate(index int, date time.Time) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	date = domain.DateOnly(date)
	if date.Before(s.today) {
		return fmt.Errorf("%w: %s", ErrDateInPast, date.Format(domain.DateFormat))
	}

	if index > 0 {
		prev := s.occurrences[index-1].Date
		if domain.DaysBetween(prev, date) < s.interval {
			return &IntervalViolationError{
				DayIndex:     index + 1,
				RequiredDate: domain.AddDays(prev, s.interval),
			}
		}
	}

	candidate := s.Occurrences()
	candidate[index].Date = date
	candidate[index].Edited = true
	for j := index + 1; j < len(candidate); j++ {
		candidate[j].Date = domain.AddDays(date, (j-index)*s.interval)
	}

	for j := index + 1; j < len(candidate); j++ {
		prev := candidate[j-1].Date
		if domain.DaysBetween(prev, candidate[j].Date) < s.interval {
			return &IntervalViolationError{
				DayIndex:     j + 1,
				RequiredDate: domain.AddDays(prev, s.interval),
			}
		}
	}

	s.occurrences = candidate
	return nil
}

// SetOccurrenceTime changes the start time of one occurrence and re-derives its end time.
// The start must fall inside working hours: at or after opening and before closing.
// Only the date carries a cross-occurrence constraint.
func (s *Scheduler) SetOccurrenceTime(index, hour, minute int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	start, err := types.NewTimeStringFromClock(hour, minute)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	if err := s.checkWorkingHours(start); err != nil {
		return err
	}

	occ := &s.occurrences[index]
	occ.StartTime = start
	occ.EndTime = computeEndTime(start, occ.DurationMinutes, s.opts.ClosingTime)
	occ.Edited = true
	return nil
}

// SetDuration updates the per-day duration and re-derives every end time
func (s *Scheduler) SetDuration(minutes int) {
	s.durationMinutes = minutes
	for i := range s.occurrences {
		s.occurrences[i].DurationMinutes = minutes
		s.occurrences[i].EndTime = computeEndTime(s.occurrences[i].StartTime, minutes, s.opts.ClosingTime)
	}
}

// MinSelectableDate returns the earliest date the picker may offer for an occurrence
func (s *Scheduler) MinSelectableDate(index int) (time.Time, error) {
	if err := s.checkIndex(index); err != nil {
		return time.Time{}, err
	}
	if index == 0 {
		return s.today, nil
	}
	return domain.AddDays(s.occurrences[index-1].Date, s.interval), nil
}

// OpenDatePicker seeds a date editing buffer from an occurrence
func (s *Scheduler) OpenDatePicker(index int) (DatePicker, error) {
	minDate, err := s.MinSelectableDate(index)
	if err != nil {
		return DatePicker{}, err
	}
	return DatePicker{
		Index:   index,
		Current: s.occurrences[index].Date,
		MinDate: minDate,
	}, nil
}

// OpenTimePicker seeds a time editing buffer from an occurrence
func (s *Scheduler) OpenTimePicker(index int) (TimePicker, error) {
	if err := s.checkIndex(index); err != nil {
		return TimePicker{}, err
	}
	return TimePicker{
		Index:    index,
		Current:  s.occurrences[index].StartTime,
		Earliest: s.opts.OpeningTime,
		Latest:   s.opts.ClosingTime,
	}, nil
}

// Validate checks the whole chain of occurrences against the interval
// and every start time against the working hours.
func (s *Scheduler) Validate() error {
	for i := range s.occurrences {
		if err := s.checkWorkingHours(s.occurrences[i].StartTime); err != nil {
			return fmt.Errorf("day %d: %w", i+1, err)
		}
	}
	for j := 1; j < len(s.occurrences); j++ {
		prev := s.occurrences[j-1].Date
		if domain.DaysBetween(prev, s.occurrences[j].Date) < s.interval {
			return &IntervalViolationError{
				DayIndex:     j + 1,
				RequiredDate: domain.AddDays(prev, s.interval),
			}
		}
	}
	return nil
}

func (s *Scheduler) checkWorkingHours(start types.TimeString) error {
	if start.IsBefore(s.opts.OpeningTime) || !start.IsBefore(s.opts.ClosingTime) {
		return fmt.Errorf("%w: %s is outside working hours %s-%s",
			ErrInvalidTime, start, s.opts.OpeningTime, s.opts.ClosingTime)
	}
	return nil
}

func (s *Scheduler) checkIndex(index int) error {
	if index < 0 || index >= len(s.occurrences) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.occurrences))
	}
	return nil
}

func initOccurrences(today time.Time, numberOfDays, interval, durationMinutes int, opts Options) []domain.Occurrence {
	if numberOfDays < domain.MinNumberOfDays {
		numberOfDays = domain.MinNumberOfDays
	}

	end := computeEndTime(opts.DefaultStart, durationMinutes, opts.ClosingTime)
	occurrences := make([]domain.Occurrence, numberOfDays)
	for i := range occurrences {
		occurrences[i] = domain.Occurrence{
			DayIndex:        i + 1,
			Date:            domain.AddDays(today, i*interval),
			StartTime:       opts.DefaultStart,
			EndTime:         end,
			DurationMinutes: durationMinutes,
		}
	}
	return occurrences
}

// computeEndTime clamps only when the raw end is strictly after closing:
// an end exactly at closing time is kept as is.
func computeEndTime(start types.TimeString, durationMinutes int, closing types.TimeString) types.TimeString {
	end := start.Minutes() + durationMinutes
	if end > closing.Minutes() {
		return closing
	}
	if end < 0 {
		return start
	}
	return types.FromMinutes(end)
}

func normalizeInterval(interval int) int {
	if interval < domain.MinInterval {
		return domain.MinInterval
	}
	return interval
}
