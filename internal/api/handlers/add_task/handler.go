package add_task

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

// Handle POST /api/v1/drafts/{draftId}/tasks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/tasks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddTaskRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{id}/tasks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	draft, err := h.service.AddTask(r.Context(), draftID, userID, req.TaskID)
	if err != nil {
		status := handlers.RespondDraftError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /drafts/{id}/tasks - Failed to add task: draft_id=%s, task_id=%s, error=%v", draftID, req.TaskID, err)
		} else {
			h.logger.Warn("POST /drafts/{id}/tasks - Task not added: draft_id=%s, task_id=%s, status=%d", draftID, req.TaskID, status)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/tasks - Task added: draft_id=%s, task_id=%s", draftID, req.TaskID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
