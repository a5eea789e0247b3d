package models

import (
	"time"

	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/internal/scheduler"
)

// Request модели

// CreateDraftRequest запрос на создание черновика бронирования
type CreateDraftRequest struct {
	UserID          string  `json:"-"`
	PackageID       string  `json:"packageId"`
	PatientID       string  `json:"patientId"`
	NursingID       *string `json:"nursingId,omitempty"`
	NumberOfDays    int     `json:"numberOfDays"`
	Interval        int     `json:"interval"`
	DiscountPercent float64 `json:"discount"`
}

// UpdateTaskRequest изменение строки задачи: шаг, явное количество и/или заметка
type UpdateTaskRequest struct {
	Step     *int    `json:"step,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// UpdateOccurrenceRequest изменение даты и/или времени начала дня
type UpdateOccurrenceRequest struct {
	Date      *string `json:"date,omitempty"`      // "2026-03-01"
	StartTime *string `json:"startTime,omitempty"` // "08:00"
}

// Response модели

// TaskResponse задача каталога пакета
type TaskResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	StaffAdvice        string `json:"staffAdvice,omitempty"`
	IsMustHave         bool   `json:"isMustHave"`
	TaskOrder          *int   `json:"taskOrder,omitempty"`
	EstDuration        int    `json:"estDuration"`
	Cost               int64  `json:"cost"`
	AdditionalCost     int64  `json:"additionalCost"`
	AdditionalCostDesc string `json:"additionalCostDesc,omitempty"`
	Unit               string `json:"unit"`
	Billing            string `json:"billing"` // fixed | stepped | unspecified
	Step               int    `json:"step"`
	MinQuantity        int    `json:"minQuantity"`
}

// TaskListResponse список задач, которые можно добавить
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// LineResponse строка задачи черновика с рассчитанными метриками
type LineResponse struct {
	Task            TaskResponse `json:"task"`
	Adjustable      bool         `json:"adjustable"`
	Quantity        int          `json:"quantity"`
	Note            string       `json:"note"`
	AdditionalUnits int          `json:"additionalUnits"`
	AdditionalCost  int64        `json:"additionalCost"`
	TotalCost       int64        `json:"totalCost"`
	Duration        float64      `json:"duration"`
	DisplayQuantity float64      `json:"displayQuantity"`
	TotalUnit       int          `json:"totalUnit"`
}

// QuoteResponse итог по пакету
type QuoteResponse struct {
	TotalDuration           float64 `json:"totalDuration"`
	TotalDurationMinutes    int     `json:"totalDurationMinutes"`
	TotalPricePerDay        int64   `json:"totalPricePerDay"`
	DiscountedPricePerDay   int64   `json:"discountedPricePerDay"`
	TotalPriceWithDays      int64   `json:"totalPriceWithDays"`
	DiscountedPriceWithDays int64   `json:"discountedPriceWithDays"`
	NumberOfDays            int     `json:"numberOfDays"`
	DiscountPercent         float64 `json:"discount"`
	HasDiscount             bool    `json:"hasDiscount"`
}

// OccurrenceResponse один день расписания
type OccurrenceResponse struct {
	DayIndex        int    `json:"dayIndex"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Edited          bool   `json:"edited"`
	MinDate         string `json:"minDate"`
	EarliestStart   string `json:"earliestStart"`
	LatestStart     string `json:"latestStart"`
}

// DraftResponse черновик с актуальной сметой и расписанием
type DraftResponse struct {
	ID           string               `json:"id"`
	PackageID    string               `json:"packageId"`
	PatientID    string               `json:"patientId"`
	NursingID    *string              `json:"nursingId,omitempty"`
	NumberOfDays int                  `json:"numberOfDays"`
	Interval     int                  `json:"interval"`
	Lines        []LineResponse       `json:"lines"`
	Quote        QuoteResponse        `json:"quote"`
	Occurrences  []OccurrenceResponse `json:"occurrences"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// Методы конвертации

// FromDomainTask конвертирует задачу каталога в DTO
func FromDomainTask(t domain.ServiceTask) TaskResponse {
	return TaskResponse{
		ID:                 t.ID,
		Name:               t.Name,
		Description:        t.Description,
		StaffAdvice:        t.StaffAdvice,
		IsMustHave:         t.IsMustHave,
		TaskOrder:          t.TaskOrder,
		EstDuration:        t.EstDuration,
		Cost:               t.Cost,
		AdditionalCost:     t.AdditionalCost,
		AdditionalCostDesc: t.AdditionalCostDesc,
		Unit:               string(t.Unit),
		Billing:            t.Billing().String(),
		Step:               t.StepSize(),
		MinQuantity:        t.InitialQuantity(),
	}
}

// FromDomainTasks конвертирует список задач в DTO
func FromDomainTasks(tasks []domain.ServiceTask) *TaskListResponse {
	resp := &TaskListResponse{Tasks: make([]TaskResponse, 0, len(tasks))}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, FromDomainTask(t))
	}
	return resp
}

// FromDomainDraft собирает ответ из черновика, его сметы и планировщика
func FromDomainDraft(d *domain.Draft, quote domain.PackageQuote, sch *scheduler.Scheduler) *DraftResponse {
	lines := make([]LineResponse, 0, len(d.Lines))
	for i, line := range d.Lines {
		m := quote.Lines[i].Metrics
		lines = append(lines, LineResponse{
			Task:            FromDomainTask(line.Task),
			Adjustable:      quote.Lines[i].Adjustable,
			Quantity:        line.Quantity,
			Note:            line.Note,
			AdditionalUnits: m.AdditionalUnits,
			AdditionalCost:  m.AdditionalCost,
			TotalCost:       m.TotalCost,
			Duration:        m.Duration,
			DisplayQuantity: m.DisplayQuantity,
			TotalUnit:       m.TotalUnit,
		})
	}

	occurrences := make([]OccurrenceResponse, 0, len(d.Occurrences))
	for i, o := range d.Occurrences {
		resp := OccurrenceResponse{
			DayIndex:        o.DayIndex,
			Date:            o.Date.Format(domain.DateFormat),
			StartTime:       o.StartTime.String(),
			EndTime:         o.EndTime.String(),
			DurationMinutes: o.DurationMinutes,
			Edited:          o.Edited,
		}
		if dp, err := sch.OpenDatePicker(i); err == nil {
			resp.MinDate = dp.MinDate.Format(domain.DateFormat)
		}
		if tp, err := sch.OpenTimePicker(i); err == nil {
			resp.EarliestStart = tp.Earliest.String()
			resp.LatestStart = tp.Latest.String()
		}
		occurrences = append(occurrences, resp)
	}

	return &DraftResponse{
		ID:           d.ID,
		PackageID:    d.PackageID,
		PatientID:    d.PatientID,
		NursingID:    d.NursingID,
		NumberOfDays: d.NumberOfDays,
		Interval:     d.Interval,
		Lines:        lines,
		Quote: QuoteResponse{
			TotalDuration:           quote.TotalDuration,
			TotalDurationMinutes:    quote.TotalDurationMinutes(),
			TotalPricePerDay:        quote.TotalPricePerDay,
			DiscountedPricePerDay:   quote.DiscountedPricePerDay,
			TotalPriceWithDays:      quote.TotalPriceWithDays,
			DiscountedPriceWithDays: quote.DiscountedPriceWithDays,
			NumberOfDays:            quote.NumberOfDays,
			DiscountPercent:         quote.DiscountPercent,
			HasDiscount:             quote.HasDiscount,
		},
		Occurrences: occurrences,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
