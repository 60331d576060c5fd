package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type fakeMetrics struct {
	observed []observation
}

func (f *fakeMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	f.observed = append(f.observed, observation{method: method, route: route, status: status})
}

type fakeChecker struct{ loggedIn bool }

func (f fakeChecker) IsLoggedIn(context.Context) bool { return f.loggedIn }

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/reservations/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)
	r.HandleFunc("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/reservations/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Len(t, m.observed, 2)
	assert.Equal(t, observation{http.MethodGet, "/reservations/{id}", http.StatusNotFound}, m.observed[0])
	assert.Equal(t, observation{http.MethodGet, "/ok", http.StatusOK}, m.observed[1])
}

func TestAdminAuth(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	AdminAuth(fakeChecker{loggedIn: false}, nopLogger{})(next).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), msgAdminRequired)

	rec = httptest.NewRecorder()
	AdminAuth(fakeChecker{loggedIn: true}, nopLogger{})(next).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/admin/reservations", nil)
	req.Header.Set("Origin", "http://localhost:5500")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "http://localhost:5500", rec.Header().Get("Access-Control-Allow-Origin"))
}
