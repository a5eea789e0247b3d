package handlers

import (
	"errors"
	"net/http"

	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/internal/scheduler"
	"github.com/curanest/booking-gateway/internal/service/drafts"
)

const (
	msgDraftNotFound        = "черновик не найден или истёк"
	msgDraftForbidden       = "доступ к черновику запрещен"
	msgDraftBusy            = "черновик изменяется другим запросом, повторите позже"
	msgPackageNotFound      = "пакет услуг не найден"
	msgTaskNotFound         = "задача не найдена в каталоге пакета"
	msgTaskAlreadySelected  = "задача уже добавлена"
	msgTaskNotSelected      = "задача не выбрана в черновике"
	msgMustHaveTask         = "обязательную задачу нельзя удалить"
	msgNotAdjustable        = "количество задачи с фиксированной ценой не меняется"
	msgIntervalViolation    = "нарушен минимальный интервал между днями"
	msgDateInPast           = "дата уже прошла"
	msgOccurrenceNotFound   = "день расписания не найден"
	msgUpstreamUnauthorized = "бэкенд отклонил учетные данные"
	msgUpstream             = "сервис CuraNest недоступен"
	msgInvalidInput         = "некорректные входные данные"
)

// RespondDraftError переводит ошибку сервиса черновиков в HTTP-ответ и возвращает статус
func RespondDraftError(w http.ResponseWriter, err error) int {
	var violation *scheduler.IntervalViolationError

	switch {
	case errors.As(err, &violation):
		RespondIntervalViolation(w, msgIntervalViolation, violation.DayIndex, violation.RequiredDate.Format(domain.DateFormat))
		return http.StatusUnprocessableEntity

	case errors.Is(err, drafts.ErrDraftNotFound):
		RespondNotFound(w, msgDraftNotFound)
		return http.StatusNotFound

	case errors.Is(err, drafts.ErrAccessDenied):
		RespondForbidden(w, msgDraftForbidden)
		return http.StatusForbidden

	case errors.Is(err, drafts.ErrPackageNotFound):
		RespondNotFound(w, msgPackageNotFound)
		return http.StatusNotFound

	case errors.Is(err, drafts.ErrTaskNotFound):
		RespondNotFound(w, msgTaskNotFound)
		return http.StatusNotFound

	case errors.Is(err, drafts.ErrTaskNotSelected):
		RespondNotFound(w, msgTaskNotSelected)
		return http.StatusNotFound

	case errors.Is(err, drafts.ErrOccurrenceNotFound):
		RespondNotFound(w, msgOccurrenceNotFound)
		return http.StatusNotFound

	case errors.Is(err, drafts.ErrDraftBusy):
		RespondConflict(w, msgDraftBusy)
		return http.StatusConflict

	case errors.Is(err, drafts.ErrTaskAlreadySelected):
		RespondConflict(w, msgTaskAlreadySelected)
		return http.StatusConflict

	case errors.Is(err, drafts.ErrMustHaveTask):
		RespondConflict(w, msgMustHaveTask)
		return http.StatusConflict

	case errors.Is(err, drafts.ErrNotAdjustable):
		RespondConflict(w, msgNotAdjustable)
		return http.StatusConflict

	case errors.Is(err, drafts.ErrDateInPast):
		RespondUnprocessable(w, msgDateInPast)
		return http.StatusUnprocessableEntity

	case errors.Is(err, drafts.ErrInvalidInput):
		RespondBadRequest(w, msgInvalidInput)
		return http.StatusBadRequest

	case errors.Is(err, drafts.ErrUpstreamUnauthorized):
		RespondUnauthorized(w, msgUpstreamUnauthorized)
		return http.StatusUnauthorized

	case errors.Is(err, drafts.ErrUpstream):
		RespondBadGateway(w, msgUpstream)
		return http.StatusBadGateway

	default:
		RespondInternalError(w)
		return http.StatusInternalServerError
	}
}
