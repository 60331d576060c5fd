package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, key string) time.Time {
	t.Helper()
	v, ok := ParseStartKey(key)
	require.True(t, ok, key)
	return v
}

func TestIsOpenHours(t *testing.T) {
	schedule := DefaultSchedule()

	tests := []struct {
		name     string
		start    string
		duration int
		want     bool
	}{
		{"weekday opening", monday + "T09:00", 30, true},
		{"weekday before opening", monday + "T08:30", 30, false},
		{"weekday last slot", monday + "T17:30", 30, true},
		{"weekday runs past close", monday + "T17:30", 60, false},
		{"weekday at close", monday + "T18:00", 30, false},
		{"default duration", monday + "T17:30", 0, true},
		{"saturday morning", saturday + "T12:00", 30, true},
		{"saturday past close", saturday + "T12:00", 60, false},
		{"sunday", sunday + "T10:00", 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOpenHours(at(t, tt.start), tt.duration, schedule))
		})
	}

	assert.False(t, IsOpenHours(time.Time{}, 30, schedule))
}

func TestIsHalfHourStep(t *testing.T) {
	assert.True(t, IsHalfHourStep("09:00"))
	assert.True(t, IsHalfHourStep("17:30"))
	assert.False(t, IsHalfHourStep("09:15"))
	assert.False(t, IsHalfHourStep("09:45"))
	assert.False(t, IsHalfHourStep("nine"))
	assert.False(t, IsHalfHourStep(""))
}

func TestIsPetTypeAllowed(t *testing.T) {
	assert.True(t, IsPetTypeAllowed("Perro", nil))
	assert.True(t, IsPetTypeAllowed("  Gato ", nil))
	assert.False(t, IsPetTypeAllowed("Loro", nil))
	assert.False(t, IsPetTypeAllowed("perro", nil))
	assert.True(t, IsPetTypeAllowed("Loro", []string{"Loro"}))
}

func TestIsFutureDate(t *testing.T) {
	now := at(t, monday+"T10:00")

	assert.True(t, IsFutureDate(now.Add(time.Hour), now))
	assert.True(t, IsFutureDate(now, now))
	assert.True(t, IsFutureDate(now.Add(-30*time.Second), now))
	assert.False(t, IsFutureDate(now.Add(-2*time.Minute), now))
}

func TestProfessionalMatchesService(t *testing.T) {
	c := DefaultCatalog()
	vet, _ := c.Professional("vet-1")
	groomer, _ := c.Professional("groom-1")
	consult, _ := c.Service("vet_consulta")

	assert.True(t, ProfessionalMatchesService(vet, consult))
	assert.False(t, ProfessionalMatchesService(groomer, consult))
}

func TestNewSchedule(t *testing.T) {
	s, err := NewSchedule("08:00", "20:00", "10:00", "14:00")
	require.NoError(t, err)
	assert.Equal(t, DayHours{Open: 480, Close: 1200}, s.Weekday)
	assert.Equal(t, DayHours{Open: 600, Close: 840}, s.Saturday)

	_, err = NewSchedule("18:00", "09:00", "09:00", "12:30")
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = NewSchedule("09:00", "18:00", "bad", "12:30")
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	assert.Equal(t, "Lun-Vie 09:00-18:00 | Sab 09:00-12:30 | Dom cerrado", DefaultSchedule().Summary())
}
