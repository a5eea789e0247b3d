package create_draft

import (
	"github.com/curanest/booking-gateway/internal/service/drafts/models"
)

// CreateDraftRequest HTTP request model
type CreateDraftRequest struct {
	PackageID    string  `json:"packageId" validate:"required"`
	PatientID    string  `json:"patientId" validate:"required"`
	NursingID    *string `json:"nursingId,omitempty"`
	NumberOfDays int     `json:"numberOfDays" validate:"gte=0,lte=60"`
	Interval     int     `json:"interval" validate:"gte=0,lte=30"`
	Discount     float64 `json:"discount" validate:"gte=0,lte=100"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateDraftRequest) ToServiceRequest(userID string) *models.CreateDraftRequest {
	return &models.CreateDraftRequest{
		UserID:          userID,
		PackageID:       r.PackageID,
		PatientID:       r.PatientID,
		NursingID:       r.NursingID,
		NumberOfDays:    r.NumberOfDays,
		Interval:        r.Interval,
		DiscountPercent: r.Discount,
	}
}
