package submit_draft

import (
	"fmt"
	"time"

	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/internal/integrations/curanest"
	"github.com/curanest/booking-gateway/pkg/types"
)

// BuildPayload builds the POST cuspackage body from a draft and its quote.
// Dates are the occurrence start instants in loc, RFC 3339 encoded.
func BuildPayload(draft *domain.Draft, quote domain.PackageQuote, loc *time.Location) curanest.CreateCusPackageRequest {
	dates := make([]string, 0, len(draft.Occurrences))
	for _, o := range draft.Occurrences {
		dates = append(dates, o.StartTime.OnDate(o.Date, loc).Format(time.RFC3339))
	}

	tasks := make([]curanest.TaskInfo, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		tasks = append(tasks, curanest.TaskInfo{
			SvcTaskID:   line.TaskID,
			TotalUnit:   line.Metrics.TotalUnit,
			TotalCost:   line.Metrics.TotalCost,
			EstDuration: roundMinutes(line.Metrics.Duration),
			ClientNote:  line.Note,
		})
	}

	return curanest.CreateCusPackageRequest{
		Dates:        dates,
		SvcPackageID: draft.PackageID,
		PatientID:    draft.PatientID,
		NursingID:    draft.NursingID,
		TaskInfos:    tasks,
	}
}

// ParsePayload reads a POST cuspackage body back into dates and task lines
func ParsePayload(p curanest.CreateCusPackageRequest, loc *time.Location) (*ParsedPayload, error) {
	parsed := &ParsedPayload{
		PackageID: p.SvcPackageID,
		PatientID: p.PatientID,
		NursingID: p.NursingID,
		Starts:    make([]ParsedStart, 0, len(p.Dates)),
		Tasks:     make([]ParsedTask, 0, len(p.TaskInfos)),
	}

	for i, raw := range p.Dates {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: dates[%d]=%q: %v", ErrInvalidPayload, i, raw, err)
		}
		at = at.In(loc)
		parsed.Starts = append(parsed.Starts, ParsedStart{
			Date:      domain.DateOnly(at),
			StartTime: types.NewTimeString(at),
		})
	}

	for _, t := range p.TaskInfos {
		if t.SvcTaskID == "" {
			return nil, fmt.Errorf("%w: task without svctask-id", ErrInvalidPayload)
		}
		parsed.Tasks = append(parsed.Tasks, ParsedTask{
			TaskID:      t.SvcTaskID,
			TotalUnit:   t.TotalUnit,
			TotalCost:   t.TotalCost,
			EstDuration: t.EstDuration,
			ClientNote:  t.ClientNote,
		})
	}

	return parsed, nil
}

// Payload rebuilds the request body; dates are re-encoded in loc
func (p *ParsedPayload) Payload(loc *time.Location) curanest.CreateCusPackageRequest {
	dates := make([]string, 0, len(p.Starts))
	for _, s := range p.Starts {
		dates = append(dates, s.StartTime.OnDate(s.Date, loc).Format(time.RFC3339))
	}

	tasks := make([]curanest.TaskInfo, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, curanest.TaskInfo{
			SvcTaskID:   t.TaskID,
			TotalUnit:   t.TotalUnit,
			TotalCost:   t.TotalCost,
			EstDuration: t.EstDuration,
			ClientNote:  t.ClientNote,
		})
	}

	return curanest.CreateCusPackageRequest{
		Dates:        dates,
		SvcPackageID: p.PackageID,
		PatientID:    p.PatientID,
		NursingID:    p.NursingID,
		TaskInfos:    tasks,
	}
}

// roundMinutes rounds a fractional duration half-up to whole minutes
func roundMinutes(minutes float64) int {
	if minutes <= 0 {
		return 0
	}
	return int(minutes + 0.5)
}
