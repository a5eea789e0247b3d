package remove_task

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/curanest/booking-gateway/internal/api/handlers"
	"github.com/curanest/booking-gateway/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

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

// Handle DELETE /api/v1/drafts/{draftId}/tasks/{taskId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID, taskID := vars["draftId"], vars["taskId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /drafts/{id}/tasks/{taskId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.RemoveTask(r.Context(), draftID, userID, taskID)
	if err != nil {
		status := handlers.RespondDraftError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("DELETE /drafts/{id}/tasks/{taskId} - Failed to remove task: draft_id=%s, task_id=%s, error=%v", draftID, taskID, err)
		} else {
			h.logger.Warn("DELETE /drafts/{id}/tasks/{taskId} - Task not removed: draft_id=%s, task_id=%s, status=%d", draftID, taskID, status)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{id}/tasks/{taskId} - Task removed: draft_id=%s, task_id=%s", draftID, taskID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
