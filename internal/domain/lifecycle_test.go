package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReservations() []Reservation {
	return []Reservation{
		{
			ID: "r3", OwnerName: "Carla Gomez", PetName: "Toby", PetType: "Perro",
			ServiceLabel: "Consulta veterinaria", ProfessionalType: ProfessionalTypeVet,
			ProfessionalName: "Dra. Lucia Pereira", Phone: "097 222 555", Email: "carla@mail.com",
			StartISO: "2024-05-08T09:00",
		},
		{
			ID: "r1", OwnerName: "Ana Lopez", PetName: "Milo", PetType: "Perro",
			ServiceLabel: "Estetica completa (lavado, secado, corte, unas)", ProfessionalType: ProfessionalTypeGroom,
			ProfessionalName: "Valentina Rocha", Phone: "099 111 222", Email: "ana@mail.com",
			StartISO: "2024-05-06T10:00", Status: StatusActive,
		},
		{
			ID: "r2", OwnerName: "Bruno Perez", PetName: "Luna", PetType: "Gato",
			ServiceLabel: "Consulta veterinaria", ProfessionalType: ProfessionalTypeVet,
			ProfessionalName: "Dr. Martin Suarez", Phone: "098 333 444",
			StartISO: "2024-05-06T11:30", Status: StatusCancelled,
		},
	}
}

func TestNormalizeStatus(t *testing.T) {
	r := Reservation{ID: "x"}

	n := NormalizeStatus(r)

	assert.Equal(t, StatusActive, n.Status)
	assert.Empty(t, r.Status)
	assert.Equal(t, StatusCancelled, NormalizeStatus(Reservation{Status: StatusCancelled}).Status)
}

func TestCancelReservationByID(t *testing.T) {
	list := sampleReservations()
	now := time.UnixMilli(1715000000000)

	out := CancelReservationByID(list, "r3", now)

	require.Len(t, out, 3)
	assert.Equal(t, StatusCancelled, out[0].Status)
	require.NotNil(t, out[0].CancelledAt)
	assert.Equal(t, now.UnixMilli(), *out[0].CancelledAt)
	assert.Equal(t, StatusActive, out[1].Status)
	assert.Empty(t, list[0].Status, "input must not change")

	t.Run("idempotent", func(t *testing.T) {
		again := CancelReservationByID(out, "r3", now.Add(time.Hour))

		require.NotNil(t, again[0].CancelledAt)
		assert.Equal(t, now.UnixMilli(), *again[0].CancelledAt)
		assert.Equal(t, StatusCancelled, again[0].Status)
	})

	t.Run("unknown id only normalizes", func(t *testing.T) {
		same := CancelReservationByID(list, "missing", now)

		for _, r := range same {
			assert.NotEmpty(t, r.Status)
		}
		assert.Nil(t, same[0].CancelledAt)
	})
}

func TestFilterReservations(t *testing.T) {
	list := sampleReservations()
	now, _ := ParseStartKey("2024-05-07T00:00")

	ids := func(rs []Reservation) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	tests := []struct {
		name     string
		criteria FilterCriteria
		want     []string
	}{
		{"no criteria", FilterCriteria{Now: now}, []string{"r3", "r1", "r2"}},
		{"service all", FilterCriteria{Service: "all", Now: now}, []string{"r3", "r1", "r2"}},
		{"service vet", FilterCriteria{Service: "vet", Now: now}, []string{"r3", "r2"}},
		{"service groom", FilterCriteria{Service: "groom", Now: now}, []string{"r1"}},
		{"future", FilterCriteria{DateFilter: "future", Now: now}, []string{"r3"}},
		{"past", FilterCriteria{DateFilter: "past", Now: now}, []string{"r1", "r2"}},
		{"exact date", FilterCriteria{DateFilter: "2024-05-06", Now: now}, []string{"r1", "r2"}},
		{"impossible date matches nothing", FilterCriteria{DateFilter: "2024-13-40", Now: now}, []string{}},
		{"unknown date filter passes", FilterCriteria{DateFilter: "tomorrow", Now: now}, []string{"r3", "r1", "r2"}},
		{"future without now", FilterCriteria{DateFilter: "future"}, []string{"r3", "r1", "r2"}},
		{"past without now", FilterCriteria{DateFilter: "past"}, []string{"r3", "r1", "r2"}},
		{"query label", FilterCriteria{Query: "estetica", Now: now}, []string{"r1"}},
		{"query case insensitive", FilterCriteria{Query: "  LUNA ", Now: now}, []string{"r2"}},
		{"query phone", FilterCriteria{Query: "222", Now: now}, []string{"r3", "r1"}},
		{"combined", FilterCriteria{Service: "vet", DateFilter: "past", Query: "gato", Now: now}, []string{"r2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterReservations(list, tt.criteria)))
		})
	}

	t.Run("invalid start never matches date filters", func(t *testing.T) {
		bad := []Reservation{{ID: "bad", StartISO: "nope"}}

		assert.Empty(t, FilterReservations(bad, FilterCriteria{DateFilter: "future", Now: now}))
		assert.Empty(t, FilterReservations(bad, FilterCriteria{DateFilter: "past", Now: now}))
		assert.Empty(t, FilterReservations(bad, FilterCriteria{DateFilter: "2024-05-06", Now: now}))
	})
}

func TestCountReservationsByType(t *testing.T) {
	counts := CountReservationsByType(sampleReservations())

	assert.Equal(t, ReservationCounts{Total: 3, Vet: 2, Groom: 1}, counts)
	assert.Equal(t, ReservationCounts{}, CountReservationsByType(nil))
}

func TestSortReservationsByStartISO(t *testing.T) {
	list := sampleReservations()

	sorted := SortReservationsByStartISO(list)

	require.Len(t, sorted, 3)
	assert.Equal(t, "r1", sorted[0].ID)
	assert.Equal(t, "r2", sorted[1].ID)
	assert.Equal(t, "r3", sorted[2].ID)
	assert.Equal(t, "r3", list[0].ID, "input must not change")
}
