package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени суток HH:MM
const TimeFormat = "15:04"

// MinutesInDay количество минут в сутках
const MinutesInDay = 24 * 60

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате HH:MM (без даты)
type TimeString string

// NewTimeString создает TimeString из time.Time (учитываются только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString парсит строку HH:MM и нормализует её
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(parsed), nil
}

// NewTimeStringFromClock создает TimeString из часов и минут
func NewTimeStringFromClock(hour, minute int) (TimeString, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeString, hour, minute)
	}
	return FromMinutes(hour*60 + minute), nil
}

// FromMinutes создает TimeString из количества минут от полуночи.
// Значение должно лежать в пределах [0, MinutesInDay).
func FromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes возвращает количество минут от полуночи.
// Для невалидного значения возвращает 0.
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// Hour возвращает часы
func (t TimeString) Hour() int {
	return t.Minutes() / 60
}

// Minute возвращает минуты
func (t TimeString) Minute() int {
	return t.Minutes() % 60
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// OnDate возвращает момент времени t в указанную дату и часовой пояс
func (t TimeString) OnDate(date time.Time, loc *time.Location) time.Time {
	minutes := t.Minutes()
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc)
}
