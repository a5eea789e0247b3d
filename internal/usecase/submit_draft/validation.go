package submit_draft

import (
	"fmt"
	"time"

	"github.com/curanest/booking-gateway/internal/domain"
)

// validateRequest валидирует входные данные
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.DraftID == "" {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}
	return nil
}

// validateDraft проверяет, что черновик готов к отправке
func validateDraft(draft *domain.Draft, today time.Time) error {
	if len(draft.Lines) == 0 {
		return ErrEmptySelection
	}

	if len(draft.Occurrences) != draft.NumberOfDays {
		return fmt.Errorf("%w: have %d days, want %d", ErrIncompleteSchedule, len(draft.Occurrences), draft.NumberOfDays)
	}

	for _, o := range draft.Occurrences {
		if o.Date.Before(today) {
			return fmt.Errorf("%w: day %d on %s", ErrDateInPast, o.DayIndex, o.Date.Format(domain.DateFormat))
		}
		if err := o.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: day %d: %v", ErrIncompleteSchedule, o.DayIndex, err)
		}
	}

	return nil
}
