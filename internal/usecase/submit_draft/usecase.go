package submit_draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/curanest/booking-gateway/internal/calculator"
	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/internal/infra/draftstore"
	"github.com/curanest/booking-gateway/internal/infra/locking"
	"github.com/curanest/booking-gateway/internal/integrations/curanest"
	"github.com/curanest/booking-gateway/internal/scheduler"
	"github.com/curanest/booking-gateway/pkg/ptr"
)

// Результаты отправки для метрики booking_submissions_total
const (
	ResultSubmitted = "submitted"
	ResultRejected  = "rejected"
	ResultError     = "error"
)

// lockTTL держит черновик на время отправки; больше максимального таймаута клиента бэкенда
const lockTTL = 2 * time.Minute

// UseCase use case для финального подтверждения и отправки черновика
type UseCase struct {
	drafts       DraftStore
	locker       DraftLocker
	repo         SubmissionRepository
	client       BackendClient
	txManager    TransactionManager
	metrics      Metrics
	location     *time.Location
	schedule     scheduler.Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	drafts DraftStore,
	locker DraftLocker,
	repo SubmissionRepository,
	client BackendClient,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	schedule scheduler.Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		drafts:       drafts,
		locker:       locker,
		repo:         repo,
		client:       client,
		txManager:    txManager,
		metrics:      metrics,
		location:     location,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отправки черновика.
// Отклонённая бэкендом отправка тоже попадает в журнал, черновик при этом сохраняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitDraft: user=%s, draft=%s", req.UserID, req.DraftID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitDraft: validation failed: %v", err)
		return nil, err
	}

	// 2. Блокируем черновик: повторное нажатие ждёт и видит уже удалённый черновик
	lock, err := uc.locker.Acquire(ctx, locking.DraftKey(req.DraftID), lockTTL)
	if err != nil {
		if errors.Is(err, locking.ErrNotObtained) {
			uc.logger.Warn("SubmitDraft: draft=%s is busy: %v", req.DraftID, err)
			return nil, fmt.Errorf("%w: %v", ErrDraftBusy, err)
		}
		uc.logger.Error("SubmitDraft: failed to lock draft=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to lock draft: %v", ErrInternal, err)
	}
	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			uc.logger.Error("SubmitDraft: failed to release lock for draft=%s: %v", req.DraftID, err)
		}
	}()

	// Загружаем черновик и проверяем владельца
	draft, err := uc.drafts.Get(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftstore.ErrDraftNotFound) {
			uc.logger.Warn("SubmitDraft: draft=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("SubmitDraft: failed to load draft=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to load draft: %v", ErrInternal, err)
	}

	if !draft.IsOwnedBy(req.UserID) {
		uc.logger.Warn("SubmitDraft: access denied for user=%s to draft=%s", req.UserID, req.DraftID)
		return nil, ErrAccessDenied
	}

	// 3. Проверяем набор задач и расписание
	today := domain.DateOnly(uc.timeProvider.Now().In(uc.location))
	if err := validateDraft(draft, today); err != nil {
		uc.logger.Warn("SubmitDraft: draft=%s is not ready: %v", req.DraftID, err)
		return nil, err
	}

	// 4. Пересчитываем смету и повторно проверяем интервалы
	quote := calculator.NewSelection(draft.Lines).Quote(draft.NumberOfDays, draft.DiscountPercent)

	sch := scheduler.Restore(today, draft.Interval, quote.TotalDurationMinutes(), draft.Occurrences, uc.schedule)
	if err := sch.Validate(); err != nil {
		uc.logger.Warn("SubmitDraft: draft=%s has stale schedule: %v", req.DraftID, err)
		if errors.Is(err, scheduler.ErrInvalidTime) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrIntervalViolation, err)
	}

	// 5. Отправляем бронирование на бэкенд
	payload := BuildPayload(draft, quote, uc.location)

	remote, err := uc.client.CreateCustomerPackage(ctx, payload)
	if err != nil {
		return nil, uc.handleBackendError(ctx, draft, quote, payload, err)
	}

	uc.logger.Info("SubmitDraft: backend accepted draft=%s as cuspackage=%s", req.DraftID, remote.ID)

	// 6. Сохраняем запись в журнал
	submission := newSubmission(draft, quote, payload, domain.SubmissionStatusSubmitted, uc.timeProvider.Now())
	if remote.ID != "" {
		submission.RemoteID = ptr.Ptr(remote.ID)
	}

	saved, err := uc.record(ctx, submission)
	if err != nil {
		// Бэкенд уже принял бронирование: повторная отправка создала бы дубль
		uc.logger.Error("SubmitDraft: failed to record submission for draft=%s: %v", req.DraftID, err)
		saved = submission
	}

	// 7. Удаляем черновик
	if err := uc.drafts.Delete(ctx, req.DraftID); err != nil {
		uc.logger.Warn("SubmitDraft: failed to delete draft=%s: %v", req.DraftID, err)
	}

	uc.metrics.IncSubmission(ResultSubmitted)
	uc.logger.Info("SubmitDraft: successfully submitted draft=%s, submission id=%d", req.DraftID, saved.ID)

	return toResponse(saved), nil
}

// handleBackendError переводит ошибку бэкенда в ошибку usecase и записывает отказ в журнал
func (uc *UseCase) handleBackendError(
	ctx context.Context,
	draft *domain.Draft,
	quote domain.PackageQuote,
	payload curanest.CreateCusPackageRequest,
	err error,
) error {
	switch {
	case errors.Is(err, curanest.ErrRejected):
		uc.logger.Warn("SubmitDraft: backend rejected draft=%s: %v", draft.ID, err)
		uc.metrics.IncSubmission(ResultRejected)

		submission := newSubmission(draft, quote, payload, domain.SubmissionStatusRejected, uc.timeProvider.Now())
		if _, recErr := uc.record(ctx, submission); recErr != nil {
			uc.logger.Error("SubmitDraft: failed to record rejected submission for draft=%s: %v", draft.ID, recErr)
		}
		return fmt.Errorf("%w: %v", ErrRejected, err)

	case errors.Is(err, curanest.ErrUnauthorized):
		uc.logger.Warn("SubmitDraft: backend refused credentials for draft=%s: %v", draft.ID, err)
		uc.metrics.IncSubmission(ResultError)
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)

	default:
		uc.logger.Error("SubmitDraft: failed to submit draft=%s: %v", draft.ID, err)
		uc.metrics.IncSubmission(ResultError)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}

// record сохраняет отправку и её задачи в одной транзакции
func (uc *UseCase) record(ctx context.Context, submission *domain.Submission) (*domain.Submission, error) {
	var saved *domain.Submission

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.repo.Create(txCtx, submission)
		if err != nil {
			return fmt.Errorf("%w: failed to create submission: %v", ErrInternal, err)
		}
		saved = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// newSubmission собирает запись журнала из черновика, сметы и отправленного тела запроса
func newSubmission(
	draft *domain.Draft,
	quote domain.PackageQuote,
	payload curanest.CreateCusPackageRequest,
	status domain.SubmissionStatus,
	now time.Time,
) *domain.Submission {
	tasks := make([]domain.SubmissionTask, 0, len(payload.TaskInfos))
	for _, t := range payload.TaskInfos {
		tasks = append(tasks, domain.SubmissionTask{
			TaskID:      t.SvcTaskID,
			TotalUnit:   t.TotalUnit,
			TotalCost:   t.TotalCost,
			EstDuration: t.EstDuration,
			ClientNote:  t.ClientNote,
		})
	}

	dates := make([]string, len(payload.Dates))
	copy(dates, payload.Dates)

	return &domain.Submission{
		DraftID:                 draft.ID,
		UserID:                  draft.UserID,
		PackageID:               draft.PackageID,
		PatientID:               draft.PatientID,
		NursingID:               draft.NursingID,
		NumberOfDays:            draft.NumberOfDays,
		Interval:                draft.Interval,
		Status:                  status,
		DiscountPercent:         quote.DiscountPercent,
		TotalDurationMinutes:    quote.TotalDurationMinutes(),
		TotalPricePerDay:        quote.TotalPricePerDay,
		DiscountedPricePerDay:   quote.DiscountedPricePerDay,
		TotalPriceWithDays:      quote.TotalPriceWithDays,
		DiscountedPriceWithDays: quote.DiscountedPriceWithDays,
		Dates:                   dates,
		Tasks:                   tasks,
		CreatedAt:               now,
	}
}

// toResponse конвертирует запись журнала в response
func toResponse(s *domain.Submission) *Response {
	return &Response{
		SubmissionID:            s.ID,
		RemoteID:                s.RemoteID,
		DraftID:                 s.DraftID,
		PackageID:               s.PackageID,
		PatientID:               s.PatientID,
		NursingID:               s.NursingID,
		Status:                  string(s.Status),
		NumberOfDays:            s.NumberOfDays,
		Dates:                   s.Dates,
		DiscountPercent:         s.DiscountPercent,
		TotalDurationMinutes:    s.TotalDurationMinutes,
		TotalPricePerDay:        s.TotalPricePerDay,
		DiscountedPricePerDay:   s.DiscountedPricePerDay,
		TotalPriceWithDays:      s.TotalPriceWithDays,
		DiscountedPriceWithDays: s.DiscountedPriceWithDays,
		SubmittedAt:             s.CreatedAt,
	}
}
