package submit_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/curanest/booking-gateway/internal/api/handlers"
	"github.com/curanest/booking-gateway/internal/api/middleware"
	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/internal/scheduler"
	submitDraft "github.com/curanest/booking-gateway/internal/usecase/submit_draft"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgDraftNotFound      = "черновик не найден или истёк"
	msgForbidden          = "доступ к черновику запрещен"
	msgDraftBusy          = "черновик уже отправляется, дождитесь результата"
	msgEmptySelection     = "не выбрано ни одной задачи"
	msgIncompleteSchedule = "расписание заполнено не полностью"
	msgIntervalViolation  = "нарушен минимальный интервал между днями"
	msgDateInPast         = "в расписании есть прошедшая дата"
	msgRejected           = "бронирование отклонено сервисом CuraNest"
	msgUnauthorized       = "бэкенд отклонил учетные данные"
	msgUpstream           = "сервис CuraNest недоступен"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase SubmitDraftUseCase
	logger  Logger
}

func NewHandler(useCase SubmitDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/submit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitDraft.Request{UserID: userID, DraftID: draftID})
	if err != nil {
		var violation *scheduler.IntervalViolationError

		switch {
		case errors.As(err, &violation):
			h.logger.Warn("POST /drafts/{id}/submit - Stale schedule: draft_id=%s, day=%d", draftID, violation.DayIndex)
			handlers.RespondIntervalViolation(w, msgIntervalViolation, violation.DayIndex, violation.RequiredDate.Format(domain.DateFormat))

		case errors.Is(err, submitDraft.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, submitDraft.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/submit - Access denied: draft_id=%s, user_id=%s", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitDraft.ErrDraftBusy):
			h.logger.Warn("POST /drafts/{id}/submit - Draft busy: draft_id=%s, user_id=%s", draftID, userID)
			handlers.RespondConflict(w, msgDraftBusy)

		case errors.Is(err, submitDraft.ErrEmptySelection):
			h.logger.Warn("POST /drafts/{id}/submit - Empty selection: draft_id=%s", draftID)
			handlers.RespondUnprocessable(w, msgEmptySelection)

		case errors.Is(err, submitDraft.ErrIncompleteSchedule):
			h.logger.Warn("POST /drafts/{id}/submit - Incomplete schedule: draft_id=%s", draftID)
			handlers.RespondUnprocessable(w, msgIncompleteSchedule)

		case errors.Is(err, submitDraft.ErrDateInPast):
			h.logger.Warn("POST /drafts/{id}/submit - Past date in schedule: draft_id=%s", draftID)
			handlers.RespondUnprocessable(w, msgDateInPast)

		case errors.Is(err, submitDraft.ErrRejected):
			h.logger.Warn("POST /drafts/{id}/submit - Rejected by backend: draft_id=%s, error=%v", draftID, err)
			handlers.RespondUnprocessable(w, msgRejected)

		case errors.Is(err, submitDraft.ErrUnauthorized):
			h.logger.Warn("POST /drafts/{id}/submit - Backend refused credentials: draft_id=%s", draftID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, submitDraft.ErrUpstream):
			h.logger.Error("POST /drafts/{id}/submit - Backend unavailable: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadGateway(w, msgUpstream)

		case errors.Is(err, submitDraft.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{id}/submit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /drafts/{id}/submit - Failed to submit draft: draft_id=%s, user_id=%s, error=%v",
				draftID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/submit - Draft submitted successfully: draft_id=%s, submission_id=%d, user_id=%s",
		draftID, result.SubmissionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
