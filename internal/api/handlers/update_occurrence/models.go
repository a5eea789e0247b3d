package update_occurrence

import (
	"github.com/curanest/booking-gateway/internal/service/drafts/models"
)

// UpdateOccurrenceRequest HTTP request model
type UpdateOccurrenceRequest struct {
	Date      *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"` // "2026-03-01"
	StartTime *string `json:"startTime,omitempty" validate:"omitempty,datetime=15:04"` // "08:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateOccurrenceRequest) ToServiceRequest() *models.UpdateOccurrenceRequest {
	return &models.UpdateOccurrenceRequest{
		Date:      r.Date,
		StartTime: r.StartTime,
	}
}
