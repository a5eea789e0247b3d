package submit_draft

import (
	"time"

	"github.com/curanest/booking-gateway/pkg/types"
)

// Request модель запроса на отправку черновика
type Request struct {
	UserID  string // ID пользователя (X-User-ID)
	DraftID string // ID черновика
}

// Response модель ответа с записью об отправке
type Response struct {
	SubmissionID int64   // ID записи в журнале (0, если запись не сохранилась)
	RemoteID     *string // ID пакета клиента на бэкенде
	DraftID      string
	PackageID    string
	PatientID    string
	NursingID    *string
	Status       string
	NumberOfDays int
	Dates        []string // RFC 3339, по одной на день

	DiscountPercent         float64
	TotalDurationMinutes    int
	TotalPricePerDay        int64
	DiscountedPricePerDay   int64
	TotalPriceWithDays      int64
	DiscountedPriceWithDays int64

	SubmittedAt time.Time
}

// ParsedPayload разобранное тело запроса POST cuspackage
type ParsedPayload struct {
	PackageID string
	PatientID string
	NursingID *string
	Starts    []ParsedStart
	Tasks     []ParsedTask
}

// ParsedStart дата и время начала одного дня
type ParsedStart struct {
	Date      time.Time // календарная дата (полночь UTC)
	StartTime types.TimeString
}

// ParsedTask строка задачи из тела запроса
type ParsedTask struct {
	TaskID      string
	TotalUnit   int
	TotalCost   int64
	EstDuration int
	ClientNote  string
}
