package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curanest/booking-gateway/internal/integrations/curanest"
	"github.com/curanest/booking-gateway/pkg/metrics"
)

const userID = "4f7c2d0e-9b7a-4c1e-8f3a-2a1d5e6b7c80"

func TestAuth(t *testing.T) {
	var (
		gotUser  string
		gotToken string
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = GetUserID(r.Context())
		gotToken = curanest.AccessTokenFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		userHeader string
		authHeader string
		wantStatus int
		wantToken  string
	}{
		{name: "missing user", wantStatus: http.StatusUnauthorized},
		{name: "not a uuid", userHeader: "42", wantStatus: http.StatusBadRequest},
		{name: "user only", userHeader: userID, wantStatus: http.StatusNoContent},
		{name: "with bearer", userHeader: userID, authHeader: "Bearer abc.def", wantStatus: http.StatusNoContent, wantToken: "abc.def"},
		{name: "other scheme", userHeader: userID, authHeader: "Basic Zm9v", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser, gotToken = "", ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/drafts", nil)
			if tt.userHeader != "" {
				req.Header.Set(HeaderUserID, tt.userHeader)
			}
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, userID, gotUser)
				assert.Equal(t, tt.wantToken, gotToken)
			}
		})
	}
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer("test", reg)

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/drafts/{draftId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/drafts/"+id, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	var count float64
	for _, mf := range families {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["route"] == "/drafts/{draftId}" && labels["status"] == "404" {
				count += metric.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, count)
}
