package drafts

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/curanest/booking-gateway/internal/calculator"
	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/internal/infra/draftstore"
	"github.com/curanest/booking-gateway/internal/infra/locking"
	"github.com/curanest/booking-gateway/internal/integrations/curanest"
	"github.com/curanest/booking-gateway/internal/scheduler"
	"github.com/curanest/booking-gateway/internal/service/drafts/models"
)

// validateCreateRequest валидирует запрос и приводит нулевые дни и интервал к минимуму
func validateCreateRequest(req *models.CreateDraftRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.PackageID == "" {
		return fmt.Errorf("%w: packageId is required", ErrInvalidInput)
	}
	if req.PatientID == "" {
		return fmt.Errorf("%w: patientId is required", ErrInvalidInput)
	}
	if req.NursingID != nil && *req.NursingID == "" {
		req.NursingID = nil
	}

	if req.NumberOfDays < 0 || req.NumberOfDays > domain.MaxNumberOfDays {
		return fmt.Errorf("%w: numberOfDays must be in [%d, %d]", ErrInvalidInput, domain.MinNumberOfDays, domain.MaxNumberOfDays)
	}
	if req.NumberOfDays < domain.MinNumberOfDays {
		req.NumberOfDays = domain.MinNumberOfDays
	}

	if req.Interval < 0 || req.Interval > domain.MaxInterval {
		return fmt.Errorf("%w: interval must be in [%d, %d]", ErrInvalidInput, domain.MinInterval, domain.MaxInterval)
	}
	if req.Interval < domain.MinInterval {
		req.Interval = domain.MinInterval
	}

	if req.DiscountPercent < 0 || req.DiscountPercent > domain.MaxDiscountPercent {
		return fmt.Errorf("%w: discount must be in [0, %d]", ErrInvalidInput, domain.MaxDiscountPercent)
	}

	return nil
}

// validateNote проверяет длину заметки к задаче
func validateNote(note string) error {
	if utf8.RuneCountInString(note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note longer than %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}
	return nil
}

// mapError переводит ошибки нижних слоёв в ошибки сервиса.
// Ошибка нарушения интервала сохраняет исходную структуру в цепочке.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, draftstore.ErrDraftNotFound):
		return fmt.Errorf("%w: %v", ErrDraftNotFound, err)
	case errors.Is(err, locking.ErrNotObtained):
		return fmt.Errorf("%w: %v", ErrDraftBusy, err)
	case errors.Is(err, curanest.ErrPackageNotFound):
		return fmt.Errorf("%w: %v", ErrPackageNotFound, err)
	case errors.Is(err, curanest.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrUpstreamUnauthorized, err)
	case errors.Is(err, curanest.ErrRejected),
		errors.Is(err, curanest.ErrInvalidResponse),
		errors.Is(err, curanest.ErrInternal):
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	case errors.Is(err, calculator.ErrTaskAlreadySelected):
		return fmt.Errorf("%w: %v", ErrTaskAlreadySelected, err)
	case errors.Is(err, calculator.ErrTaskNotSelected):
		return fmt.Errorf("%w: %v", ErrTaskNotSelected, err)
	case errors.Is(err, calculator.ErrMustHaveTask):
		return fmt.Errorf("%w: %v", ErrMustHaveTask, err)
	case errors.Is(err, calculator.ErrNotAdjustable):
		return fmt.Errorf("%w: %v", ErrNotAdjustable, err)
	case errors.Is(err, calculator.ErrInvalidStep),
		errors.Is(err, calculator.ErrQuantityTooLarge):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, scheduler.ErrIntervalViolation):
		return fmt.Errorf("%w: %w", ErrIntervalViolation, err)
	case errors.Is(err, scheduler.ErrDateInPast):
		return fmt.Errorf("%w: %v", ErrDateInPast, err)
	case errors.Is(err, scheduler.ErrIndexOutOfRange):
		return fmt.Errorf("%w: %v", ErrOccurrenceNotFound, err)
	case errors.Is(err, scheduler.ErrInvalidTime):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrTaskNotFound),
		errors.Is(err, ErrAccessDenied):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
