package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservation(t *testing.T) {
	c := DefaultCatalog()
	service, _ := c.Service("groom_full")
	pro, _ := c.Professional("groom-1")
	start := at(t, monday+"T10:00")
	created := time.UnixMilli(1714900000000)

	r := CreateReservation(ReservationInput{
		OwnerName:    "Ana Lopez",
		PetName:      "Milo",
		PetType:      "Perro",
		Phone:        "099 111 222",
		Service:      service,
		Professional: pro,
		StartDate:    start,
	}, FactoryDeps{
		NewID: func() string { return "fixed-id" },
		Now:   func() time.Time { return created },
	})

	assert.Equal(t, Reservation{
		ID:               "fixed-id",
		OwnerName:        "Ana Lopez",
		PetName:          "Milo",
		PetType:          "Perro",
		ServiceID:        "groom_full",
		ServiceLabel:     service.Label,
		ProfessionalType: ProfessionalTypeGroom,
		ProfessionalID:   "groom-1",
		ProfessionalName: "Valentina Rocha",
		Phone:            "099 111 222",
		Email:            "",
		StartISO:         monday + "T10:00",
		CreatedAt:        created.UnixMilli(),
		Status:           StatusActive,
	}, r)

	assert.Equal(t, r, NormalizeStatus(r))
}

func TestCreateReservation_DefaultDeps(t *testing.T) {
	r := CreateReservation(ReservationInput{StartDate: at(t, monday+"T09:30")}, FactoryDeps{})

	require.NotEmpty(t, r.ID)
	assert.Equal(t, monday+"T09:30", r.StartISO)
	assert.NotZero(t, r.CreatedAt)
	assert.Equal(t, StatusActive, r.Status)
}

func TestTimeKeys(t *testing.T) {
	v, ok := ParseDateTime(monday, "09:30")
	require.True(t, ok)
	assert.Equal(t, monday+"T09:30", FormatStartKey(v))
	assert.Equal(t, "06/05/2024 09:30", FormatNice(v))
	assert.Equal(t, monday, DateKey(v))
	assert.Equal(t, 570, MinuteOfDay(v))

	_, ok = ParseDateTime(monday, "25:00")
	assert.False(t, ok)
	_, ok = ParseDateTime("06/05/2024", "09:30")
	assert.False(t, ok)

	withSeconds, ok := ParseStartKey(monday + "T09:30:00")
	require.True(t, ok)
	assert.True(t, withSeconds.Equal(v))

	r := Reservation{StartISO: monday + "T09:30:00"}
	assert.Equal(t, monday, r.DateKey())
	assert.Equal(t, "09:30", r.StartTimeKey())
}

func TestNewCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.Len(t, c.Services(), 2)
	assert.Len(t, c.ProfessionalsByType(ProfessionalTypeVet), 3)
	assert.Equal(t, 60, c.ServiceDuration("groom_full"))
	assert.Equal(t, 0, c.ServiceDuration("missing"))

	_, err := NewCatalog([]Service{{ID: "a", ProfessionalType: "cook"}}, nil)
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = NewCatalog(nil, []Professional{
		{ID: "p", Type: ProfessionalTypeVet},
		{ID: "p", Type: ProfessionalTypeVet},
	})
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	zero, err := NewCatalog([]Service{{ID: "s", ProfessionalType: ProfessionalTypeVet}}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultSlotDurationMinutes, zero.ServiceDuration("s"))
}
