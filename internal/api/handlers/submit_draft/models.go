package submit_draft

import (
	"time"

	submitDraft "github.com/curanest/booking-gateway/internal/usecase/submit_draft"
)

// SubmissionResponse HTTP response model
type SubmissionResponse struct {
	SubmissionID            int64    `json:"submissionId"`
	RemoteID                *string  `json:"remoteId,omitempty"`
	DraftID                 string   `json:"draftId"`
	PackageID               string   `json:"packageId"`
	PatientID               string   `json:"patientId"`
	NursingID               *string  `json:"nursingId,omitempty"`
	Status                  string   `json:"status"`
	NumberOfDays            int      `json:"numberOfDays"`
	Dates                   []string `json:"dates"`
	DiscountPercent         float64  `json:"discount"`
	TotalDurationMinutes    int      `json:"totalDurationMinutes"`
	TotalPricePerDay        int64    `json:"totalPricePerDay"`
	DiscountedPricePerDay   int64    `json:"discountedPricePerDay"`
	TotalPriceWithDays      int64    `json:"totalPriceWithDays"`
	DiscountedPriceWithDays int64    `json:"discountedPriceWithDays"`
	SubmittedAt             string   `json:"submittedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitDraft.Response) *SubmissionResponse {
	return &SubmissionResponse{
		SubmissionID:            resp.SubmissionID,
		RemoteID:                resp.RemoteID,
		DraftID:                 resp.DraftID,
		PackageID:               resp.PackageID,
		PatientID:               resp.PatientID,
		NursingID:               resp.NursingID,
		Status:                  resp.Status,
		NumberOfDays:            resp.NumberOfDays,
		Dates:                   resp.Dates,
		DiscountPercent:         resp.DiscountPercent,
		TotalDurationMinutes:    resp.TotalDurationMinutes,
		TotalPricePerDay:        resp.TotalPricePerDay,
		DiscountedPricePerDay:   resp.DiscountedPricePerDay,
		TotalPriceWithDays:      resp.TotalPriceWithDays,
		DiscountedPriceWithDays: resp.DiscountedPriceWithDays,
		SubmittedAt:             resp.SubmittedAt.Format(time.RFC3339),
	}
}
