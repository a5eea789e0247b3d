package create_draft

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curanest/booking-gateway/internal/api/middleware"
	"github.com/curanest/booking-gateway/internal/service/drafts"
	"github.com/curanest/booking-gateway/internal/service/drafts/models"
	"github.com/curanest/booking-gateway/pkg/logger"
)

type fakeService struct {
	got *models.CreateDraftRequest
	err error
}

func (s *fakeService) Create(_ context.Context, req *models.CreateDraftRequest) (*models.DraftResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.DraftResponse{ID: "d-1", PackageID: req.PackageID, NumberOfDays: req.NumberOfDays}, nil
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/drafts", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := post(h, `{"packageId":"pkg-1","patientId":"pat-1","numberOfDays":3,"interval":2,"discount":10}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user-1", svc.got.UserID)
	assert.Equal(t, 10.0, svc.got.DiscountPercent)

	var resp models.DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "d-1", resp.ID)
	assert.Equal(t, 3, resp.NumberOfDays)
}

func TestHandle_ValidationFailsBeforeService(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	for _, body := range []string{
		`{"patientId":"pat-1"}`,
		`{"packageId":"pkg-1","patientId":"pat-1","discount":150}`,
		`{"packageId":"pkg-1","patientId":"pat-1","numberOfDays":-1}`,
	} {
		rec := post(h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Nil(t, svc.got)
}

func TestHandle_PackageNotFound(t *testing.T) {
	h := NewHandler(&fakeService{err: drafts.ErrPackageNotFound}, logger.NewNop())

	rec := post(h, `{"packageId":"pkg-404","patientId":"pat-1"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
