package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/pkg/types"
)

func day(n int) time.Time {
	return time.Date(2026, time.March, n, 0, 0, 0, 0, time.UTC)
}

func TestInitOccurrences(t *testing.T) {
	occ := InitOccurrences(day(1), 3, 3, 90)

	require.Len(t, occ, 3)
	for i, o := range occ {
		assert.Equal(t, i+1, o.DayIndex)
		assert.Equal(t, day(1+3*i), o.Date)
		assert.Equal(t, types.TimeString("08:00"), o.StartTime)
		assert.Equal(t, types.TimeString("09:30"), o.EndTime)
		assert.Equal(t, 90, o.DurationMinutes)
		assert.False(t, o.Edited)
	}
}

func TestInitOccurrences_NonPositiveInputs(t *testing.T) {
	occ := InitOccurrences(day(10), 0, 0, 30)

	require.Len(t, occ, 1)
	assert.Equal(t, day(10), occ[0].Date)
}

func TestComputeEndTime(t *testing.T) {
	tests := []struct {
		start    types.TimeString
		duration int
		want     types.TimeString
	}{
		{start: "08:00", duration: 90, want: "09:30"},
		{start: "21:30", duration: 30, want: "22:00"},
		{start: "21:45", duration: 30, want: "22:00"},
		{start: "21:00", duration: 240, want: "22:00"},
		{start: "06:00", duration: 0, want: "06:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ComputeEndTime(tt.start, tt.duration), "%s+%d", tt.start, tt.duration)
	}
}

func TestSetOccurrenceDate_CascadesLaterDays(t *testing.T) {
	s := New(day(1), 3, 3, 60, DefaultOptions())

	require.NoError(t, s.SetOccurrenceDate(1, day(5)))

	occ := s.Occurrences()
	assert.Equal(t, day(1), occ[0].Date)
	assert.Equal(t, day(5), occ[1].Date)
	assert.Equal(t, day(8), occ[2].Date)
	assert.True(t, occ[1].Edited)
}

func TestSetOccurrenceDate_ViolationChangesNothing(t *testing.T) {
	s := New(day(1), 3, 3, 60, DefaultOptions())
	require.NoError(t, s.SetOccurrenceDate(1, day(5)))
	before := s.Occurrences()

	err := s.SetOccurrenceDate(1, day(1))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntervalViolation)

	var violation *IntervalViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, 2, violation.DayIndex)
	assert.Equal(t, day(4), violation.RequiredDate)
	assert.Equal(t, before, s.Occurrences())
}

func TestSetOccurrenceDate_FirstDayMovesWholeChain(t *testing.T) {
	s := New(day(1), 3, 2, 60, DefaultOptions())

	require.NoError(t, s.SetOccurrenceDate(0, day(10)))

	occ := s.Occurrences()
	assert.Equal(t, day(10), occ[0].Date)
	assert.Equal(t, day(12), occ[1].Date)
	assert.Equal(t, day(14), occ[2].Date)
}

func TestSetOccurrenceDate_PastDate(t *testing.T) {
	s := New(day(5), 2, 1, 60, DefaultOptions())

	err := s.SetOccurrenceDate(0, day(4))

	assert.ErrorIs(t, err, ErrDateInPast)
	assert.Equal(t, day(5), s.Occurrences()[0].Date)
}

func TestSetOccurrenceDate_IndexOutOfRange(t *testing.T) {
	s := New(day(1), 2, 1, 60, DefaultOptions())

	assert.ErrorIs(t, s.SetOccurrenceDate(2, day(9)), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.SetOccurrenceDate(-1, day(9)), ErrIndexOutOfRange)
}

func TestSetOccurrenceTime(t *testing.T) {
	s := New(day(1), 2, 1, 30, DefaultOptions())

	require.NoError(t, s.SetOccurrenceTime(0, 21, 45))

	occ := s.Occurrences()
	assert.Equal(t, types.TimeString("21:45"), occ[0].StartTime)
	assert.Equal(t, types.TimeString("22:00"), occ[0].EndTime)
	assert.True(t, occ[0].Edited)
	assert.Equal(t, types.TimeString("08:00"), occ[1].StartTime, "other days keep their time")
}

func TestSetOccurrenceTime_Rejected(t *testing.T) {
	s := New(day(1), 1, 1, 30, DefaultOptions())

	assert.ErrorIs(t, s.SetOccurrenceTime(0, 25, 0), ErrInvalidTime)
	assert.ErrorIs(t, s.SetOccurrenceTime(0, 8, 60), ErrInvalidTime)
	assert.ErrorIs(t, s.SetOccurrenceTime(3, 9, 0), ErrIndexOutOfRange)
	assert.Equal(t, types.TimeString("08:00"), s.Occurrences()[0].StartTime)
}

func TestSetOccurrenceTime_OutsideWorkingHours(t *testing.T) {
	s := New(day(1), 1, 1, 60, DefaultOptions())

	tests := []struct {
		hour, minute int
		ok           bool
	}{
		{hour: 23, minute: 30},
		{hour: 22, minute: 0},
		{hour: 5, minute: 59},
		{hour: 0, minute: 0},
		{hour: 6, minute: 0, ok: true},
		{hour: 21, minute: 59, ok: true},
	}

	for _, tt := range tests {
		err := s.SetOccurrenceTime(0, tt.hour, tt.minute)
		if tt.ok {
			require.NoError(t, err, "%02d:%02d", tt.hour, tt.minute)
			occ := s.Occurrences()[0]
			assert.False(t, occ.EndTime.IsBefore(occ.StartTime), "%02d:%02d", tt.hour, tt.minute)
			continue
		}
		assert.ErrorIs(t, err, ErrInvalidTime, "%02d:%02d", tt.hour, tt.minute)
	}

	assert.Equal(t, types.TimeString("21:59"), s.Occurrences()[0].StartTime)
	assert.Equal(t, types.TimeString("22:00"), s.Occurrences()[0].EndTime)
}

func TestSetOccurrenceTime_ConfiguredHours(t *testing.T) {
	opts := Options{DefaultStart: "09:00", OpeningTime: "08:00", ClosingTime: "18:00"}
	s := New(day(1), 1, 1, 60, opts)

	assert.ErrorIs(t, s.SetOccurrenceTime(0, 7, 30), ErrInvalidTime)
	assert.ErrorIs(t, s.SetOccurrenceTime(0, 19, 0), ErrInvalidTime)
	require.NoError(t, s.SetOccurrenceTime(0, 17, 30))
	assert.Equal(t, types.TimeString("18:00"), s.Occurrences()[0].EndTime)
}

func TestSetDuration_RederivesEndTimes(t *testing.T) {
	s := New(day(1), 2, 1, 30, DefaultOptions())
	require.NoError(t, s.SetOccurrenceTime(1, 21, 0))

	s.SetDuration(90)

	occ := s.Occurrences()
	assert.Equal(t, types.TimeString("09:30"), occ[0].EndTime)
	assert.Equal(t, types.TimeString("22:00"), occ[1].EndTime)
	assert.Equal(t, 90, occ[1].DurationMinutes)
}

func TestPickers(t *testing.T) {
	s := New(day(1), 3, 3, 60, DefaultOptions())

	dp, err := s.OpenDatePicker(0)
	require.NoError(t, err)
	assert.Equal(t, day(1), dp.MinDate)
	assert.Equal(t, day(1), dp.Current)

	dp, err = s.OpenDatePicker(2)
	require.NoError(t, err)
	assert.Equal(t, day(7), dp.MinDate)
	assert.Equal(t, day(7), dp.Current)

	tp, err := s.OpenTimePicker(1)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("08:00"), tp.Current)
	assert.Equal(t, types.TimeString("06:00"), tp.Earliest)
	assert.Equal(t, types.TimeString("22:00"), tp.Latest)

	_, err = s.OpenTimePicker(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRestoreAndValidate(t *testing.T) {
	occ := []domain.Occurrence{
		{DayIndex: 1, Date: day(1), StartTime: "08:00", EndTime: "09:00", DurationMinutes: 60},
		{DayIndex: 2, Date: day(2), StartTime: "08:00", EndTime: "09:00", DurationMinutes: 60},
	}

	s := Restore(day(1), 2, 60, occ, DefaultOptions())

	err := s.Validate()
	var violation *IntervalViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, 2, violation.DayIndex)
	assert.Equal(t, day(3), violation.RequiredDate)

	occ[0].Date = day(20)
	assert.Equal(t, day(1), s.Occurrences()[0].Date, "restore copies its input")
}

func TestValidate_UsesConfiguredWorkingHours(t *testing.T) {
	occ := []domain.Occurrence{
		{DayIndex: 1, Date: day(1), StartTime: "08:00", EndTime: "09:00", DurationMinutes: 60},
		{DayIndex: 2, Date: day(3), StartTime: "19:30", EndTime: "20:30", DurationMinutes: 60},
	}

	require.NoError(t, Restore(day(1), 2, 60, occ, DefaultOptions()).Validate())

	opts := DefaultOptions()
	opts.ClosingTime = "19:00"
	err := Restore(day(1), 2, 60, occ, opts).Validate()
	assert.ErrorIs(t, err, ErrInvalidTime)
	assert.Contains(t, err.Error(), "day 2")
}
