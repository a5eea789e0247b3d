package curanest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 2*time.Second, logger.NewNop())
}

func TestGetServiceTasks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/svcpackage/pkg-1/svctask", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{
			"status": 200,
			"data": [{
				"id": "task-1",
				"svcpackage-id": "pkg-1",
				"is-must-have": true,
				"task-order": 2,
				"name": "Đo huyết áp",
				"est-duration": 30,
				"cost": 150000,
				"additional-cost": 50000,
				"unit": "time",
				"price-of-step": 15
			}, {
				"id": "task-2",
				"name": "Thay băng",
				"price-of-step": 0
			}]
		}`))
	})

	tasks, err := client.GetServiceTasks(WithAccessToken(context.Background(), "secret"), "pkg-1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "task-1", tasks[0].ID)
	assert.Equal(t, "pkg-1", tasks[0].PackageID)
	assert.True(t, tasks[0].IsMustHave)
	assert.Equal(t, 2, *tasks[0].TaskOrder)
	assert.Equal(t, domain.UnitTime, tasks[0].Unit)
	assert.Equal(t, domain.BillingStepped, tasks[0].Billing())
	assert.Equal(t, int64(50000), tasks[0].AdditionalCost)

	assert.Equal(t, domain.BillingFixed, tasks[1].Billing())
	assert.Equal(t, int64(0), tasks[1].Cost)
}

func TestGetServiceTasks_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusNotFound, want: ErrPackageNotFound},
		{status: http.StatusBadRequest, want: ErrRejected},
		{status: http.StatusUnprocessableEntity, want: ErrRejected},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusBadGateway, want: ErrInvalidResponse},
	}

	for _, tt := range tests {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte(`{"message":"nope"}`))
		})

		_, err := client.GetServiceTasks(context.Background(), "pkg-1")
		assert.ErrorIs(t, err, tt.want, "status=%d", tt.status)
	}
}

func TestGetServiceTasks_TransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, logger.NewNop())

	_, err := client.GetServiceTasks(context.Background(), "pkg-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetServiceTasks_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": "not a list"}`))
	})

	_, err := client.GetServiceTasks(context.Background(), "pkg-1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCreateCustomerPackage(t *testing.T) {
	nurse := "nurse-7"
	var got CreateCusPackageRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cuspackage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"success","data":{"id":"cus-42"}}`))
	})

	created, err := client.CreateCustomerPackage(context.Background(), CreateCusPackageRequest{
		Dates:        []string{"2026-03-01T08:00:00+07:00"},
		SvcPackageID: "pkg-1",
		PatientID:    "patient-1",
		NursingID:    &nurse,
		TaskInfos: []TaskInfo{
			{SvcTaskID: "task-1", TotalUnit: 2, TotalCost: 200000, EstDuration: 45, ClientNote: "gọi trước 15 phút"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "cus-42", created.ID)

	assert.Equal(t, []string{"2026-03-01T08:00:00+07:00"}, got.Dates)
	require.NotNil(t, got.NursingID)
	assert.Equal(t, "nurse-7", *got.NursingID)
	require.Len(t, got.TaskInfos, 1)
	assert.Equal(t, 2, got.TaskInfos[0].TotalUnit)
}

func TestCreateCustomerPackage_RejectedMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"patient not found"}`))
	})

	_, err := client.CreateCustomerPackage(context.Background(), CreateCusPackageRequest{})
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "patient not found")
}

func TestParseCusPackage(t *testing.T) {
	assert.Equal(t, "a", parseCusPackage(json.RawMessage(`{"id":"a"}`)).ID)
	assert.Equal(t, "b", parseCusPackage(json.RawMessage(`"b"`)).ID)
	assert.Equal(t, "", parseCusPackage(json.RawMessage(`null`)).ID)
	assert.Equal(t, "", parseCusPackage(json.RawMessage(`42`)).ID)
}
