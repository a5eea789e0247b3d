package get_submission

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/curanest/booking-gateway/internal/api/middleware"
	"github.com/curanest/booking-gateway/internal/service/submissions"
	"github.com/curanest/booking-gateway/internal/service/submissions/models"
	"github.com/curanest/booking-gateway/pkg/logger"
)

type fakeService struct{ err error }

func (s *fakeService) GetByID(_ context.Context, id int64, _ string) (*models.SubmissionResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.SubmissionResponse{ID: id}, nil
}

func get(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/submissions/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"submissionId": id})
	req = req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	assert.Equal(t, http.StatusOK, get(NewHandler(&fakeService{}, logger.NewNop()), "5").Code)
	assert.Equal(t, http.StatusBadRequest, get(NewHandler(&fakeService{}, logger.NewNop()), "abc").Code)
	assert.Equal(t, http.StatusNotFound, get(NewHandler(&fakeService{err: submissions.ErrSubmissionNotFound}, logger.NewNop()), "5").Code)
	assert.Equal(t, http.StatusForbidden, get(NewHandler(&fakeService{err: submissions.ErrAccessDenied}, logger.NewNop()), "5").Code)
	assert.Equal(t, http.StatusInternalServerError, get(NewHandler(&fakeService{err: submissions.ErrInternal}, logger.NewNop()), "5").Code)
}
