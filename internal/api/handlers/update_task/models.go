package update_task

import (
	"github.com/curanest/booking-gateway/internal/service/drafts/models"
)

// UpdateTaskRequest HTTP request model: шаг или количество и/или заметка
type UpdateTaskRequest struct {
	Step     *int    `json:"step,omitempty" validate:"omitempty,oneof=-1 1"`
	Quantity *int    `json:"quantity,omitempty" validate:"omitempty,gte=0,lte=1440"`
	Note     *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateTaskRequest) ToServiceRequest() *models.UpdateTaskRequest {
	return &models.UpdateTaskRequest{
		Step:     r.Step,
		Quantity: r.Quantity,
		Note:     r.Note,
	}
}
