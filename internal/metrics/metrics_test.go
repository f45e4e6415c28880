package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Instrument)
	r.Get("/api/v1/requests/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/v1/requests/{id}", "418"))
	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/requests/"+id, nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/v1/requests/{id}", "418"))
	assert.Equal(t, 3.0, after-before)
}

func TestRecordHelpers(t *testing.T) {
	before := testutil.ToFloat64(transitions.WithLabelValues("InProgress", "Done"))
	RecordTransition("InProgress", "Done")
	assert.Equal(t, 1.0, testutil.ToFloat64(transitions.WithLabelValues("InProgress", "Done"))-before)

	beforeUnknown := testutil.ToFloat64(assignments.WithLabelValues("unknown"))
	RecordAssignment("")
	assert.Equal(t, 1.0, testutil.ToFloat64(assignments.WithLabelValues("unknown"))-beforeUnknown)
}

func TestHandlerExposesRegistry(t *testing.T) {
	RecordAssignment("assigned")
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "aidhub_requests_assign_attempts_total"))
}
