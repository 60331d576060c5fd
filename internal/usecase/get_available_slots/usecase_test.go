package get_available_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

type mockRepo struct {
	items []domain.Reservation
}

func (m *mockRepo) List(context.Context) []domain.Reservation { return m.items }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func newTestUseCase(items ...domain.Reservation) *UseCase {
	return NewUseCase(&mockRepo{items: items}, domain.DefaultCatalog(), domain.DefaultSchedule(), nopLogger{})
}

func TestExecute_WithoutProfessional(t *testing.T) {
	uc := newTestUseCase(domain.Reservation{ProfessionalID: "vet-1", StartISO: "2024-05-06T09:00"})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-06"})

	require.NoError(t, err)
	assert.False(t, resp.Closed)
	assert.Equal(t, 30, resp.SlotDurationMinutes)
	require.Len(t, resp.Slots, 18)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
	}
	assert.Equal(t, []string{"09:00"}, resp.ReservedStartTimes)
}

func TestExecute_GroomingMarksOverlaps(t *testing.T) {
	uc := newTestUseCase(
		domain.Reservation{ProfessionalID: "groom-1", ServiceID: "groom_full", StartISO: "2024-05-11T10:00"},
		domain.Reservation{ProfessionalID: "groom-2", ServiceID: "groom_full", StartISO: "2024-05-11T09:00"},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:           "2024-05-11",
		ServiceID:      "groom_full",
		ProfessionalID: "groom-1",
	})

	require.NoError(t, err)
	assert.Equal(t, 60, resp.SlotDurationMinutes)
	assert.Equal(t, []SlotInfo{
		{StartTime: "09:00", EndTime: "10:00", Available: true},
		{StartTime: "10:00", EndTime: "11:00", Available: false},
		{StartTime: "11:00", EndTime: "12:00", Available: true},
	}, resp.Slots)
	assert.Equal(t, []string{"10:00"}, resp.ReservedStartTimes)
}

func TestExecute_Sunday(t *testing.T) {
	resp, err := newTestUseCase().Execute(context.Background(), &Request{Date: "2024-05-12"})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"empty date", Request{}, ErrInvalidDate},
		{"bad date", Request{Date: "2024-02-30"}, ErrInvalidDate},
		{"unknown service", Request{Date: "2024-05-06", ServiceID: "spa"}, ErrServiceNotFound},
		{"unknown professional", Request{Date: "2024-05-06", ProfessionalID: "x"}, ErrProfessionalNotFound},
		{"mismatch", Request{Date: "2024-05-06", ServiceID: "vet_consulta", ProfessionalID: "groom-1"}, ErrProfessionalMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestUseCase().Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
