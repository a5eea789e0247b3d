package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истёк
	ErrDraftNotFound = errors.New("draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrDraftBusy возвращается, когда черновик занят параллельным запросом
	ErrDraftBusy = errors.New("draft is being modified by another request")

	// ErrPackageNotFound возвращается, когда пакет услуг не найден
	ErrPackageNotFound = errors.New("service package not found")

	// ErrTaskNotFound возвращается, когда задачи нет в каталоге пакета
	ErrTaskNotFound = errors.New("task not found in package catalog")

	// ErrTaskAlreadySelected возвращается при повторном добавлении задачи
	ErrTaskAlreadySelected = errors.New("task already selected")

	// ErrTaskNotSelected возвращается, когда задачи нет в черновике
	ErrTaskNotSelected = errors.New("task not selected")

	// ErrMustHaveTask возвращается при попытке удалить обязательную задачу
	ErrMustHaveTask = errors.New("must-have task cannot be removed")

	// ErrNotAdjustable возвращается при изменении количества задачи с фиксированной ценой
	ErrNotAdjustable = errors.New("task quantity is not adjustable")

	// ErrIntervalViolation возвращается, когда дата нарушает минимальный интервал.
	// Детали доступны через errors.As(err, **scheduler.IntervalViolationError).
	ErrIntervalViolation = errors.New("minimum interval between days violated")

	// ErrDateInPast возвращается, когда выбранная дата раньше сегодняшней
	ErrDateInPast = errors.New("date is in the past")

	// ErrOccurrenceNotFound возвращается при обращении к несуществующему дню
	ErrOccurrenceNotFound = errors.New("occurrence not found")

	// ErrUpstreamUnauthorized возвращается, когда бэкенд не принял токен пользователя
	ErrUpstreamUnauthorized = errors.New("backend rejected credentials")

	// ErrUpstream возвращается при недоступности бэкенда CuraNest
	ErrUpstream = errors.New("backend unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
