package update_task

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/curanest/booking-gateway/internal/api/handlers"
	"github.com/curanest/booking-gateway/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/drafts/{draftId}/tasks/{taskId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID, taskID := vars["draftId"], vars["taskId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /drafts/{id}/tasks/{taskId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateTaskRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id}/tasks/{taskId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	draft, err := h.service.UpdateTask(r.Context(), draftID, userID, taskID, req.ToServiceRequest())
	if err != nil {
		status := handlers.RespondDraftError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("PATCH /drafts/{id}/tasks/{taskId} - Failed to update task: draft_id=%s, task_id=%s, error=%v", draftID, taskID, err)
		} else {
			h.logger.Warn("PATCH /drafts/{id}/tasks/{taskId} - Update rejected: draft_id=%s, task_id=%s, status=%d, error=%v", draftID, taskID, status, err)
		}
		return
	}

	h.logger.Info("PATCH /drafts/{id}/tasks/{taskId} - Task updated: draft_id=%s, task_id=%s, price_per_day=%d",
		draftID, taskID, draft.Quote.TotalPricePerDay)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
