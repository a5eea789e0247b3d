package update_occurrence

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/curanest/booking-gateway/internal/api/handlers"
	"github.com/curanest/booking-gateway/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDayIndex    = "некорректный номер дня, ожидается число от 1"
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

// Handle PATCH /api/v1/drafts/{draftId}/occurrences/{dayIndex}
// dayIndex нумеруется с 1, как в ответе черновика.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID := vars["draftId"]

	dayIndex, err := strconv.Atoi(vars["dayIndex"])
	if err != nil || dayIndex < 1 {
		h.logger.Warn("PATCH /drafts/{id}/occurrences/{day} - Invalid day index: %q", vars["dayIndex"])
		handlers.RespondBadRequest(w, msgInvalidDayIndex)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /drafts/{id}/occurrences/{day} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateOccurrenceRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id}/occurrences/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	draft, err := h.service.UpdateOccurrence(r.Context(), draftID, userID, dayIndex-1, req.ToServiceRequest())
	if err != nil {
		status := handlers.RespondDraftError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("PATCH /drafts/{id}/occurrences/{day} - Failed to update day: draft_id=%s, day=%d, error=%v", draftID, dayIndex, err)
		} else {
			h.logger.Warn("PATCH /drafts/{id}/occurrences/{day} - Update rejected: draft_id=%s, day=%d, status=%d, error=%v", draftID, dayIndex, status, err)
		}
		return
	}

	h.logger.Info("PATCH /drafts/{id}/occurrences/{day} - Day updated: draft_id=%s, day=%d", draftID, dayIndex)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
