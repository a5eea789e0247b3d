package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/curanest/booking-gateway/internal/domain"
)

var (
	// ErrIntervalViolation базовая ошибка нарушения минимального интервала между днями
	ErrIntervalViolation = errors.New("scheduler: minimum interval between days violated")

	// ErrIndexOutOfRange возвращается при обращении к несуществующему дню
	ErrIndexOutOfRange = errors.New("scheduler: occurrence index out of range")

	// ErrInvalidTime возвращается при некорректном времени начала
	ErrInvalidTime = errors.New("scheduler: invalid start time")

	// ErrDateInPast возвращается, когда выбранная дата раньше сегодняшней
	ErrDateInPast = errors.New("scheduler: date is in the past")
)

// IntervalViolationError date edit rejected because the day is too close to the previous one
type IntervalViolationError struct {
	DayIndex     int       // 1-based day that violates the interval
	RequiredDate time.Time // earliest acceptable date for that day
}

func (e *IntervalViolationError) Error() string {
	return fmt.Sprintf("%s: day %d must be on or after %s",
		ErrIntervalViolation, e.DayIndex, e.RequiredDate.Format(domain.DateFormat))
}

// Is allows errors.Is(err, ErrIntervalViolation)
func (e *IntervalViolationError) Is(target error) bool {
	return target == ErrIntervalViolation
}
