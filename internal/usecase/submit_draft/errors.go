package submit_draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истёк
	ErrDraftNotFound = errors.New("submit_draft: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("submit_draft: access denied")

	// ErrDraftBusy возвращается, когда черновик уже отправляется или изменяется другим запросом
	ErrDraftBusy = errors.New("submit_draft: draft is busy")

	// ErrEmptySelection возвращается, когда в черновике нет ни одной задачи
	ErrEmptySelection = errors.New("submit_draft: no tasks selected")

	// ErrIncompleteSchedule возвращается, когда число дней расписания не совпадает с numberOfDays
	ErrIncompleteSchedule = errors.New("submit_draft: schedule is incomplete")

	// ErrIntervalViolation возвращается, когда расписание нарушает минимальный интервал
	ErrIntervalViolation = errors.New("submit_draft: minimum interval between days violated")

	// ErrDateInPast возвращается, когда один из дней уже прошёл
	ErrDateInPast = errors.New("submit_draft: schedule contains a past date")

	// ErrRejected возвращается, когда бэкенд отклонил бронирование
	ErrRejected = errors.New("submit_draft: booking rejected by backend")

	// ErrUnauthorized возвращается, когда бэкенд не принял токен пользователя
	ErrUnauthorized = errors.New("submit_draft: backend rejected credentials")

	// ErrUpstream возвращается при недоступности бэкенда
	ErrUpstream = errors.New("submit_draft: backend unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_draft: invalid input data")

	// ErrInvalidPayload возвращается, когда тело запроса к бэкенду не разбирается
	ErrInvalidPayload = errors.New("submit_draft: invalid payload")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_draft: internal error")
)
