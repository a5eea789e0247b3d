package delete_draft

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

// Handle DELETE /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /drafts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), draftID, userID); err != nil {
		status := handlers.RespondDraftError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("DELETE /drafts/{id} - Failed to delete draft: draft_id=%s, error=%v", draftID, err)
		} else {
			h.logger.Warn("DELETE /drafts/{id} - Draft not deleted: draft_id=%s, user_id=%s, status=%d", draftID, userID, status)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{id} - Draft deleted: draft_id=%s, user_id=%s", draftID, userID)
	w.WriteHeader(http.StatusNoContent)
}
