package curanest

import (
	"encoding/json"

	"github.com/curanest/booking-gateway/internal/domain"
)

// Envelope общая обёртка ответов CuraNest API
type Envelope[T any] struct {
	Status  json.RawMessage `json:"status,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    T               `json:"data"`
}

// ServiceTask задача пакета услуг в формате API
type ServiceTask struct {
	ID                 string `json:"id"`
	SvcPackageID       string `json:"svcpackage-id"`
	IsMustHave         bool   `json:"is-must-have"`
	TaskOrder          *int   `json:"task-order"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	StaffAdvice        string `json:"staff-advice"`
	EstDuration        int    `json:"est-duration"`
	Cost               int64  `json:"cost"`
	AdditionalCost     int64  `json:"additional-cost"`
	AdditionalCostDesc string `json:"additional-cost-desc"`
	Unit               string `json:"unit"`
	PriceOfStep        *int   `json:"price-of-step"`
	Status             string `json:"status"`
}

// ToDomain конвертирует задачу API в доменную модель
func (t ServiceTask) ToDomain() domain.ServiceTask {
	return domain.ServiceTask{
		ID:                 t.ID,
		PackageID:          t.SvcPackageID,
		IsMustHave:         t.IsMustHave,
		TaskOrder:          t.TaskOrder,
		Name:               t.Name,
		Description:        t.Description,
		StaffAdvice:        t.StaffAdvice,
		EstDuration:        t.EstDuration,
		Cost:               t.Cost,
		AdditionalCost:     t.AdditionalCost,
		AdditionalCostDesc: t.AdditionalCostDesc,
		Unit:               domain.TaskUnit(t.Unit),
		PriceOfStep:        t.PriceOfStep,
		Status:             t.Status,
	}
}

// CreateCusPackageRequest тело запроса POST cuspackage
type CreateCusPackageRequest struct {
	Dates        []string   `json:"dates"`
	SvcPackageID string     `json:"svcpackage-id"`
	PatientID    string     `json:"patient-id"`
	NursingID    *string    `json:"nursing-id,omitempty"`
	TaskInfos    []TaskInfo `json:"task-infos"`
}

// TaskInfo строка задачи в запросе создания пакета
type TaskInfo struct {
	SvcTaskID   string `json:"svctask-id"`
	TotalUnit   int    `json:"total-unit"`
	TotalCost   int64  `json:"total-cost"`
	EstDuration int    `json:"est-duration"`
	ClientNote  string `json:"client-note"`
}

// CusPackage созданный пакет клиента
type CusPackage struct {
	ID string `json:"id"`
}
