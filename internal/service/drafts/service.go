package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/curanest/booking-gateway/internal/calculator"
	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/internal/infra/locking"
	"github.com/curanest/booking-gateway/internal/scheduler"
	"github.com/curanest/booking-gateway/internal/service/drafts/models"
	"github.com/curanest/booking-gateway/pkg/types"
)

// lockTTL время жизни блокировки черновика на одну операцию
const lockTTL = 10 * time.Second

// Service сервис черновиков бронирования: набор задач, смета и расписание
type Service struct {
	store        DraftStore
	locker       DraftLocker
	catalog      CatalogProvider
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	schedule     scheduler.Options
	logger       Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(
	store DraftStore,
	locker DraftLocker,
	catalog CatalogProvider,
	metrics Metrics,
	location *time.Location,
	schedule scheduler.Options,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		locker:       locker,
		catalog:      catalog,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		schedule:     schedule,
		logger:       logger,
	}
}

// workspace рабочее состояние черновика на время одной операции
type workspace struct {
	draft     *domain.Draft
	selection *calculator.Selection
	scheduler *scheduler.Scheduler
}

// Create создает черновик: все задачи пакета, смета и расписание по умолчанию
func (s *Service) Create(ctx context.Context, req *models.CreateDraftRequest) (*models.DraftResponse, error) {
	s.logger.Info("CreateDraft: user=%s, package=%s, patient=%s, days=%d, interval=%d, discount=%v",
		req.UserID, req.PackageID, req.PatientID, req.NumberOfDays, req.Interval, req.DiscountPercent)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateDraft: validation failed: %v", err)
		return nil, err
	}

	tasks, err := s.catalog.GetServiceTasks(ctx, req.PackageID)
	if err != nil {
		s.logger.Warn("CreateDraft: failed to get catalog for package=%s: %v", req.PackageID, err)
		return nil, mapError(err)
	}

	lines := make([]domain.TaskLine, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, domain.NewTaskLine(task))
	}
	selection := calculator.NewSelection(lines)
	quote := selection.Quote(req.NumberOfDays, req.DiscountPercent)

	now := s.timeProvider.Now()
	sch := scheduler.New(s.today(), req.NumberOfDays, req.Interval, quote.TotalDurationMinutes(), s.schedule)

	draft := &domain.Draft{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		PackageID:       req.PackageID,
		PatientID:       req.PatientID,
		NursingID:       req.NursingID,
		NumberOfDays:    req.NumberOfDays,
		Interval:        sch.Interval(),
		DiscountPercent: req.DiscountPercent,
		Lines:           selection.Lines(),
		Occurrences:     sch.Occurrences(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.Save(ctx, draft); err != nil {
		s.logger.Error("CreateDraft: failed to save draft: %v", err)
		return nil, mapError(err)
	}
	s.metrics.IncQuote()

	s.logger.Info("CreateDraft: created draft=%s with %d tasks, price_per_day=%d",
		draft.ID, len(draft.Lines), quote.TotalPricePerDay)
	return models.FromDomainDraft(draft, quote, sch), nil
}

// Get возвращает черновик с пересчитанной сметой
func (s *Service) Get(ctx context.Context, draftID, userID string) (*models.DraftResponse, error) {
	ws, err := s.load(ctx, "GetDraft", draftID, userID)
	if err != nil {
		return nil, err
	}
	quote := ws.selection.Quote(ws.draft.NumberOfDays, ws.draft.DiscountPercent)
	return models.FromDomainDraft(ws.draft, quote, ws.scheduler), nil
}

// AvailableTasks возвращает задачи пакета, которых ещё нет в черновике
func (s *Service) AvailableTasks(ctx context.Context, draftID, userID string) (*models.TaskListResponse, error) {
	ws, err := s.load(ctx, "AvailableTasks", draftID, userID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.catalog.GetServiceTasks(ctx, ws.draft.PackageID)
	if err != nil {
		s.logger.Warn("AvailableTasks: failed to get catalog for package=%s: %v", ws.draft.PackageID, err)
		return nil, mapError(err)
	}

	available := make([]domain.ServiceTask, 0, len(tasks))
	for _, task := range tasks {
		if !ws.draft.HasTask(task.ID) {
			available = append(available, task)
		}
	}

	s.logger.Info("AvailableTasks: draft=%s, available=%d", draftID, len(available))
	return models.FromDomainTasks(available), nil
}

// AddTask добавляет задачу каталога в черновик
func (s *Service) AddTask(ctx context.Context, draftID, userID, taskID string) (*models.DraftResponse, error) {
	return s.mutate(ctx, "AddTask", draftID, userID, func(ws *workspace) error {
		tasks, err := s.catalog.GetServiceTasks(ctx, ws.draft.PackageID)
		if err != nil {
			return err
		}
		for _, task := range tasks {
			if task.ID == taskID {
				return ws.selection.Add(task)
			}
		}
		return fmt.Errorf("%w: id=%s", ErrTaskNotFound, taskID)
	})
}

// RemoveTask удаляет задачу из черновика (обязательные задачи не удаляются)
func (s *Service) RemoveTask(ctx context.Context, draftID, userID, taskID string) (*models.DraftResponse, error) {
	return s.mutate(ctx, "RemoveTask", draftID, userID, func(ws *workspace) error {
		return ws.selection.Remove(taskID)
	})
}

// StepQuantity меняет количество на один шаг вверх (+1) или вниз (-1)
func (s *Service) StepQuantity(ctx context.Context, draftID, userID, taskID string, direction int) (*models.DraftResponse, error) {
	return s.UpdateTask(ctx, draftID, userID, taskID, &models.UpdateTaskRequest{Step: &direction})
}

// SetQuantity задаёт количество явно (не ниже номинального)
func (s *Service) SetQuantity(ctx context.Context, draftID, userID, taskID string, quantity int) (*models.DraftResponse, error) {
	return s.UpdateTask(ctx, draftID, userID, taskID, &models.UpdateTaskRequest{Quantity: &quantity})
}

// SetNote задаёт заметку к задаче
func (s *Service) SetNote(ctx context.Context, draftID, userID, taskID, note string) (*models.DraftResponse, error) {
	return s.UpdateTask(ctx, draftID, userID, taskID, &models.UpdateTaskRequest{Note: &note})
}

// UpdateTask применяет шаг, количество и заметку одной операцией
func (s *Service) UpdateTask(ctx context.Context, draftID, userID, taskID string, req *models.UpdateTaskRequest) (*models.DraftResponse, error) {
	if req.Step == nil && req.Quantity == nil && req.Note == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Step != nil && req.Quantity != nil {
		return nil, fmt.Errorf("%w: step and quantity are mutually exclusive", ErrInvalidInput)
	}
	if req.Quantity != nil && (*req.Quantity < 0 || *req.Quantity > domain.MaxQuantity) {
		return nil, fmt.Errorf("%w: quantity must be in [0, %d]", ErrInvalidInput, domain.MaxQuantity)
	}
	if req.Note != nil {
		if err := validateNote(*req.Note); err != nil {
			return nil, err
		}
	}

	return s.mutate(ctx, "UpdateTask", draftID, userID, func(ws *workspace) error {
		if req.Step != nil {
			if _, err := ws.selection.Step(taskID, *req.Step); err != nil {
				return err
			}
		}
		if req.Quantity != nil {
			if _, err := ws.selection.SetQuantity(taskID, *req.Quantity); err != nil {
				return err
			}
		}
		if req.Note != nil {
			if err := ws.selection.SetNote(taskID, *req.Note); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetOccurrenceDate переносит день и каскадно сдвигает последующие
func (s *Service) SetOccurrenceDate(ctx context.Context, draftID, userID string, index int, date time.Time) (*models.DraftResponse, error) {
	return s.mutate(ctx, "SetOccurrenceDate", draftID, userID, func(ws *workspace) error {
		return ws.scheduler.SetOccurrenceDate(index, date)
	})
}

// SetOccurrenceTime меняет время начала одного дня
func (s *Service) SetOccurrenceTime(ctx context.Context, draftID, userID string, index, hour, minute int) (*models.DraftResponse, error) {
	return s.mutate(ctx, "SetOccurrenceTime", draftID, userID, func(ws *workspace) error {
		return ws.scheduler.SetOccurrenceTime(index, hour, minute)
	})
}

// UpdateOccurrence применяет дату и/или время одной операцией.
// Если дата отклонена, время тоже не применяется.
func (s *Service) UpdateOccurrence(ctx context.Context, draftID, userID string, index int, req *models.UpdateOccurrenceRequest) (*models.DraftResponse, error) {
	if req.Date == nil && req.StartTime == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var (
		date  time.Time
		start types.TimeString
		err   error
	)
	if req.Date != nil {
		date, err = time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *req.Date)
		}
	}
	if req.StartTime != nil {
		start, err = types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid startTime %q", ErrInvalidInput, *req.StartTime)
		}
	}

	return s.mutate(ctx, "UpdateOccurrence", draftID, userID, func(ws *workspace) error {
		if req.Date != nil {
			if err := ws.scheduler.SetOccurrenceDate(index, date); err != nil {
				return err
			}
		}
		if req.StartTime != nil {
			if err := ws.scheduler.SetOccurrenceTime(index, start.Hour(), start.Minute()); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete удаляет черновик
func (s *Service) Delete(ctx context.Context, draftID, userID string) error {
	unlock, err := s.lock(ctx, "DeleteDraft", draftID)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := s.load(ctx, "DeleteDraft", draftID, userID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, draftID); err != nil {
		s.logger.Error("DeleteDraft: failed to delete draft=%s: %v", draftID, err)
		return mapError(err)
	}

	s.logger.Info("DeleteDraft: draft=%s deleted", draftID)
	return nil
}

// load читает черновик, проверяет владельца и восстанавливает калькулятор и планировщик
func (s *Service) load(ctx context.Context, op, draftID, userID string) (*workspace, error) {
	draft, err := s.store.Get(ctx, draftID)
	if err != nil {
		mapped := mapError(err)
		if errors.Is(mapped, ErrDraftNotFound) {
			s.logger.Warn("%s: draft=%s not found", op, draftID)
		} else {
			s.logger.Error("%s: failed to load draft=%s: %v", op, draftID, err)
		}
		return nil, mapped
	}

	if !draft.IsOwnedBy(userID) {
		s.logger.Warn("%s: access denied for user=%s to draft=%s", op, userID, draftID)
		return nil, ErrAccessDenied
	}

	selection := calculator.NewSelection(draft.Lines)
	quote := selection.Quote(draft.NumberOfDays, draft.DiscountPercent)

	return &workspace{
		draft:     draft,
		selection: selection,
		scheduler: scheduler.Restore(s.today(), draft.Interval, quote.TotalDurationMinutes(), draft.Occurrences, s.schedule),
	}, nil
}

// mutate загружает черновик, применяет fn и сохраняет результат только при успехе
func (s *Service) mutate(ctx context.Context, op, draftID, userID string, fn func(ws *workspace) error) (*models.DraftResponse, error) {
	unlock, err := s.lock(ctx, op, draftID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	ws, err := s.load(ctx, op, draftID, userID)
	if err != nil {
		return nil, err
	}

	if err := fn(ws); err != nil {
		var violation *scheduler.IntervalViolationError
		if errors.As(err, &violation) {
			s.metrics.IncIntervalViolation()
			s.logger.Info("%s: draft=%s, interval violation day=%d, required=%s",
				op, draftID, violation.DayIndex, violation.RequiredDate.Format(domain.DateFormat))
		} else {
			s.logger.Warn("%s: draft=%s rejected: %v", op, draftID, err)
		}
		return nil, mapError(err)
	}

	quote := ws.selection.Quote(ws.draft.NumberOfDays, ws.draft.DiscountPercent)
	ws.scheduler.SetDuration(quote.TotalDurationMinutes())

	ws.draft.Lines = ws.selection.Lines()
	ws.draft.Occurrences = ws.scheduler.Occurrences()
	ws.draft.UpdatedAt = s.timeProvider.Now()

	if err := s.store.Save(ctx, ws.draft); err != nil {
		s.logger.Error("%s: failed to save draft=%s: %v", op, draftID, err)
		return nil, mapError(err)
	}
	s.metrics.IncQuote()

	s.logger.Info("%s: draft=%s, tasks=%d, price_per_day=%d, duration=%d",
		op, draftID, len(ws.draft.Lines), quote.TotalPricePerDay, quote.TotalDurationMinutes())
	return models.FromDomainDraft(ws.draft, quote, ws.scheduler), nil
}

// lock захватывает блокировку черновика; возвращённая функция её освобождает
func (s *Service) lock(ctx context.Context, op, draftID string) (func(), error) {
	lock, err := s.locker.Acquire(ctx, locking.DraftKey(draftID), lockTTL)
	if err != nil {
		s.logger.Warn("%s: draft=%s is locked: %v", op, draftID, err)
		return nil, mapError(err)
	}

	return func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Error("%s: failed to release lock for draft=%s: %v", op, draftID, err)
		}
	}, nil
}

// today сегодняшняя календарная дата в часовом поясе сервиса
func (s *Service) today() time.Time {
	return domain.DateOnly(s.timeProvider.Now().In(s.location))
}
