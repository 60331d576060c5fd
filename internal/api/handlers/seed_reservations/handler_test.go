package seed_reservations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/VetEstetica-BookingService/internal/service/seed"
)

type mockSeed struct {
	ensureCalls int
	ifEmpty     int
	err         error
}

func (m *mockSeed) EnsureSeedData(context.Context, bool) (bool, error) {
	m.ensureCalls++
	return false, m.err
}

func (m *mockSeed) SeedIfEmpty(context.Context) (bool, error) {
	m.ifEmpty++
	return true, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		err        error
		status     int
		wantEnsure int
		wantEmpty  int
	}{
		{"without force", "/api/v1/admin/seed", nil, http.StatusOK, 1, 0},
		{"force", "/api/v1/admin/seed?force=true", nil, http.StatusOK, 0, 1},
		{"force refused", "/api/v1/admin/seed?force=1", seed.ErrReservationsExist, http.StatusConflict, 0, 1},
		{"bad force", "/api/v1/admin/seed?force=maybe", nil, http.StatusBadRequest, 0, 0},
		{"store failure", "/api/v1/admin/seed", errors.New("down"), http.StatusInternalServerError, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockSeed{err: tt.err}
			rec := httptest.NewRecorder()
			NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, tt.url, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantEnsure, svc.ensureCalls)
			assert.Equal(t, tt.wantEmpty, svc.ifEmpty)
		})
	}
}
