package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curanest/booking-gateway/internal/scheduler"
	"github.com/curanest/booking-gateway/internal/service/drafts"
)

type sampleRequest struct {
	PackageID string `json:"packageId" validate:"required"`
	Days      int    `json:"numberOfDays" validate:"gte=0,lte=60"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"packageId":"p","numberOfDays":3}`},
		{name: "missing required", body: `{"numberOfDays":3}`, wantErr: "packageId: required"},
		{name: "out of range", body: `{"packageId":"p","numberOfDays":90}`, wantErr: "numberOfDays: lte=60"},
		{name: "unknown field", body: `{"packageId":"p","extra":1}`, wantErr: "unknown field"},
		{name: "malformed", body: `{`, wantErr: "decode request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var got sampleRequest
			err := DecodeAndValidate(req, &got)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "p", got.PackageID)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRespondDraftError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: drafts.ErrDraftNotFound, want: http.StatusNotFound},
		{err: drafts.ErrAccessDenied, want: http.StatusForbidden},
		{err: drafts.ErrDraftBusy, want: http.StatusConflict},
		{err: drafts.ErrMustHaveTask, want: http.StatusConflict},
		{err: drafts.ErrNotAdjustable, want: http.StatusConflict},
		{err: drafts.ErrTaskAlreadySelected, want: http.StatusConflict},
		{err: drafts.ErrTaskNotSelected, want: http.StatusNotFound},
		{err: drafts.ErrDateInPast, want: http.StatusUnprocessableEntity},
		{err: drafts.ErrInvalidInput, want: http.StatusBadRequest},
		{err: drafts.ErrUpstream, want: http.StatusBadGateway},
		{err: drafts.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		status := RespondDraftError(rec, fmt.Errorf("%w: details", tt.err))

		assert.Equal(t, tt.want, status, tt.err.Error())
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tt.want, body.Code)
		assert.NotEmpty(t, body.Message)
	}
}

func TestRespondDraftError_IntervalViolationBody(t *testing.T) {
	violation := &scheduler.IntervalViolationError{
		DayIndex:     3,
		RequiredDate: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	}
	err := fmt.Errorf("%w: %w", drafts.ErrIntervalViolation, violation)
	rec := httptest.NewRecorder()

	status := RespondDraftError(rec, err)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.JSONEq(t,
		`{"code":422,"message":"нарушен минимальный интервал между днями","dayIndex":3,"requiredDate":"2026-03-08"}`,
		rec.Body.String())
}
