package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_Counters(t *testing.T) {
	m := New("vet_test")

	m.IncBooking(BookingResultCreated)
	m.IncBooking(BookingResultCreated)
	m.IncBooking(BookingResultConflict)
	m.IncCancellation("cancelled")
	m.IncStoreOperation("memory", "get", nil)
	m.IncStoreOperation("memory", "set", errors.New("boom"))
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/slots", http.StatusOK, 15*time.Millisecond)

	body := scrape(t, m)

	assert.Contains(t, body, `vet_test_bookings_total{result="created"} 2`)
	assert.Contains(t, body, `vet_test_bookings_total{result="conflict"} 1`)
	assert.Contains(t, body, `vet_test_cancellations_total{result="cancelled"} 1`)
	assert.Contains(t, body, `vet_test_store_operations_total{backend="memory",op="set",result="error"} 1`)
	assert.Contains(t, body, `vet_test_http_requests_total{method="GET",route="/api/v1/slots",status="200"} 1`)
}

func TestMetrics_NewIsRepeatable(t *testing.T) {
	require.NotPanics(t, func() {
		New("vet_a")
		New("vet_a")
	})
}
