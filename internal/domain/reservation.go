package domain

import (
	"strings"
	"time"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation is a stored appointment.
// JSON keys are the ones already present in stored data.
type Reservation struct {
	ID               string            `json:"id"`
	OwnerName        string            `json:"ownerName"`
	PetName          string            `json:"petName"`
	PetType          string            `json:"petType"`
	ServiceID        string            `json:"serviceId"`
	ServiceLabel     string            `json:"serviceLabel"`
	ProfessionalType ProfessionalType  `json:"proType"`
	ProfessionalID   string            `json:"proId"`
	ProfessionalName string            `json:"proName"`
	Phone            string            `json:"phone"`
	Email            string            `json:"email"`
	StartISO         string            `json:"startISO"`
	DurationMinutes  int               `json:"durationMin,omitempty"` // 0 = resolve from service
	CreatedAt        int64             `json:"createdAt"`              // epoch ms
	Status           ReservationStatus `json:"status,omitempty"`       // empty = active
	CancelledAt      *int64            `json:"cancelledAt,omitempty"`  // epoch ms
}

// Start parses StartISO, false when it is malformed
func (r Reservation) Start() (time.Time, bool) {
	return ParseStartKey(r.StartISO)
}

// DateKey returns the "YYYY-MM-DD" part of StartISO, empty when absent
func (r Reservation) DateKey() string {
	date, _, ok := strings.Cut(r.StartISO, "T")
	if !ok {
		return ""
	}
	return date
}

// StartTimeKey returns the "HH:MM" part of StartISO, empty when absent
func (r Reservation) StartTimeKey() string {
	_, timePart, ok := strings.Cut(r.StartISO, "T")
	if !ok {
		return ""
	}
	if len(timePart) > 5 {
		timePart = timePart[:5]
	}
	return timePart
}

// ReservationCounts totals per professional type
type ReservationCounts struct {
	Total int `json:"total"`
	Vet   int `json:"vet"`
	Groom int `json:"groom"`
}

// FilterCriteria admin list filter
type FilterCriteria struct {
	Service    string    // "", "all" or a ProfessionalType
	DateFilter string    // "", "all", "future", "past" or YYYY-MM-DD
	Query      string    // free text, case-insensitive
	Now        time.Time // reference for future/past, zero skips them
}
