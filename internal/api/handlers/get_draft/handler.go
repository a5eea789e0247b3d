package get_draft

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

// Handle GET /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /drafts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.Get(r.Context(), draftID, userID)
	if err != nil {
		status := handlers.RespondDraftError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /drafts/{id} - Failed to get draft: draft_id=%s, error=%v", draftID, err)
		} else {
			h.logger.Warn("GET /drafts/{id} - Draft unavailable: draft_id=%s, user_id=%s, status=%d", draftID, userID, status)
		}
		return
	}

	h.logger.Info("GET /drafts/{id} - Draft retrieved successfully: draft_id=%s, user_id=%s", draftID, userID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
