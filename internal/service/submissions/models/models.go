package models

import (
	"errors"
	"time"

	"github.com/curanest/booking-gateway/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid submission status")
)

// GetUserSubmissionsRequest запрос на получение отправок пользователя
type GetUserSubmissionsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// SubmissionTaskResponse строка задачи отправленного бронирования
type SubmissionTaskResponse struct {
	TaskID      string `json:"taskId"`
	TotalUnit   int    `json:"totalUnit"`
	TotalCost   int64  `json:"totalCost"`
	EstDuration int    `json:"estDuration"`
	ClientNote  string `json:"clientNote"`
}

// SubmissionResponse ответ с данными отправленного бронирования
type SubmissionResponse struct {
	ID           int64   `json:"id"`
	DraftID      string  `json:"draftId"`
	PackageID    string  `json:"packageId"`
	PatientID    string  `json:"patientId"`
	NursingID    *string `json:"nursingId,omitempty"`
	RemoteID     *string `json:"remoteId,omitempty"`
	NumberOfDays int     `json:"numberOfDays"`
	Interval     int     `json:"interval"`
	Status       string  `json:"status"`

	DiscountPercent         float64 `json:"discountPercent"`
	TotalDurationMinutes    int     `json:"totalDurationMinutes"`
	TotalPricePerDay        int64   `json:"totalPricePerDay"`
	DiscountedPricePerDay   int64   `json:"discountedPricePerDay"`
	TotalPriceWithDays      int64   `json:"totalPriceWithDays"`
	DiscountedPriceWithDays int64   `json:"discountedPriceWithDays"`

	Dates []string                 `json:"dates"`
	Tasks []SubmissionTaskResponse `json:"tasks"`

	CreatedAt time.Time `json:"createdAt"`
}

// SubmissionListResponse ответ со списком отправок
type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
}

// FromDomainSubmission конвертирует domain модель в DTO
func FromDomainSubmission(s *domain.Submission) *SubmissionResponse {
	if s == nil {
		return nil
	}

	tasks := make([]SubmissionTaskResponse, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		tasks = append(tasks, SubmissionTaskResponse{
			TaskID:      t.TaskID,
			TotalUnit:   t.TotalUnit,
			TotalCost:   t.TotalCost,
			EstDuration: t.EstDuration,
			ClientNote:  t.ClientNote,
		})
	}

	dates := s.Dates
	if dates == nil {
		dates = []string{}
	}

	return &SubmissionResponse{
		ID:                      s.ID,
		DraftID:                 s.DraftID,
		PackageID:               s.PackageID,
		PatientID:               s.PatientID,
		NursingID:               s.NursingID,
		RemoteID:                s.RemoteID,
		NumberOfDays:            s.NumberOfDays,
		Interval:                s.Interval,
		Status:                  string(s.Status),
		DiscountPercent:         s.DiscountPercent,
		TotalDurationMinutes:    s.TotalDurationMinutes,
		TotalPricePerDay:        s.TotalPricePerDay,
		DiscountedPricePerDay:   s.DiscountedPricePerDay,
		TotalPriceWithDays:      s.TotalPriceWithDays,
		DiscountedPriceWithDays: s.DiscountedPriceWithDays,
		Dates:                   dates,
		Tasks:                   tasks,
		CreatedAt:               s.CreatedAt,
	}
}

// FromDomainSubmissionList конвертирует список domain моделей в DTO
func FromDomainSubmissionList(submissions []*domain.Submission) *SubmissionListResponse {
	resp := &SubmissionListResponse{
		Submissions: make([]SubmissionResponse, 0, len(submissions)),
	}
	for _, s := range submissions {
		resp.Submissions = append(resp.Submissions, *FromDomainSubmission(s))
	}
	return resp
}

// ToDomainSubmissionStatus конвертирует строку в статус отправки
func ToDomainSubmissionStatus(status string) (domain.SubmissionStatus, error) {
	switch domain.SubmissionStatus(status) {
	case domain.SubmissionStatusSubmitted, domain.SubmissionStatusRejected:
		return domain.SubmissionStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
