package get_submission

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/curanest/booking-gateway/internal/api/handlers"
	"github.com/curanest/booking-gateway/internal/api/middleware"
	"github.com/curanest/booking-gateway/internal/service/submissions"
)

const (
	msgInvalidSubmissionID = "некорректный ID отправки"
	msgNotFound            = "отправка не найдена"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgForbidden           = "доступ запрещен"
)

type Handler struct {
	service SubmissionService
	logger  Logger
}

func NewHandler(service SubmissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/submissions/{submissionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	submissionID, err := strconv.ParseInt(mux.Vars(r)["submissionId"], 10, 64)
	if err != nil || submissionID <= 0 {
		h.logger.Warn("GET /submissions/{id} - Invalid submission ID: %q", mux.Vars(r)["submissionId"])
		handlers.RespondBadRequest(w, msgInvalidSubmissionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /submissions/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	submission, err := h.service.GetByID(r.Context(), submissionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, submissions.ErrSubmissionNotFound):
			h.logger.Warn("GET /submissions/{id} - Submission not found: submission_id=%d", submissionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, submissions.ErrAccessDenied):
			h.logger.Warn("GET /submissions/{id} - Access denied: submission_id=%d, user_id=%s", submissionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /submissions/{id} - Failed to get submission: submission_id=%d, error=%v", submissionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /submissions/{id} - Submission retrieved successfully: submission_id=%d, user_id=%s",
		submissionID, userID)
	handlers.RespondJSON(w, http.StatusOK, submission)
}
