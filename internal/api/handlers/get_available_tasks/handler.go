package get_available_tasks

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

// Handle GET /api/v1/drafts/{draftId}/available-tasks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /drafts/{id}/available-tasks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	tasks, err := h.service.AvailableTasks(r.Context(), draftID, userID)
	if err != nil {
		status := handlers.RespondDraftError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /drafts/{id}/available-tasks - Failed to list tasks: draft_id=%s, error=%v", draftID, err)
		} else {
			h.logger.Warn("GET /drafts/{id}/available-tasks - Tasks unavailable: draft_id=%s, status=%d, error=%v", draftID, status, err)
		}
		return
	}

	h.logger.Info("GET /drafts/{id}/available-tasks - Retrieved %d tasks: draft_id=%s", len(tasks.Tasks), draftID)
	handlers.RespondJSON(w, http.StatusOK, tasks)
}
