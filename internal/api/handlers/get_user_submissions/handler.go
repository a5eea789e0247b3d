package get_user_submissions

import (
	"errors"
	"net/http"

	"github.com/curanest/booking-gateway/internal/api/handlers"
	"github.com/curanest/booking-gateway/internal/api/middleware"
	"github.com/curanest/booking-gateway/internal/service/submissions"
	"github.com/curanest/booking-gateway/internal/service/submissions/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidStatus = "некорректный статус, допустимо: submitted, rejected"
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

// Handle GET /api/v1/submissions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /submissions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	result, err := h.service.GetUserSubmissions(r.Context(), &models.GetUserSubmissionsRequest{
		UserID: userID,
		Status: statusPtr,
	})
	if err != nil {
		if errors.Is(err, submissions.ErrInvalidInput) {
			h.logger.Warn("GET /submissions - Invalid status: user_id=%s, status=%s", userID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /submissions - Failed to get submissions: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /submissions - Submissions retrieved successfully: user_id=%s, count=%d",
		userID, len(result.Submissions))
	handlers.RespondJSON(w, http.StatusOK, result.Submissions)
}
