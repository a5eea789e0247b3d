package create_draft

import (
	"net/http"

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

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateDraftRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /drafts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	draft, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		status := handlers.RespondDraftError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /drafts - Failed to create draft: user_id=%s, package_id=%s, error=%v", userID, req.PackageID, err)
		} else {
			h.logger.Warn("POST /drafts - Draft rejected: user_id=%s, package_id=%s, status=%d, error=%v", userID, req.PackageID, status, err)
		}
		return
	}

	h.logger.Info("POST /drafts - Draft created successfully: draft_id=%s, user_id=%s, tasks=%d",
		draft.ID, userID, len(draft.Lines))
	handlers.RespondJSON(w, http.StatusCreated, draft)
}
