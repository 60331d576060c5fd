package domain

import (
	"time"

	"github.com/m04kA/VetEstetica-BookingService/pkg/idgen"
)

// ReservationInput is what the booking form provides, already resolved
// against the catalog
type ReservationInput struct {
	OwnerName    string
	PetName      string
	PetType      string
	Phone        string
	Email        string
	Service      Service
	Professional Professional
	StartDate    time.Time
}

// FactoryDeps are the side-effecting collaborators of CreateReservation.
// Nil fields fall back to idgen.New, time.Now and FormatStartKey.
type FactoryDeps struct {
	NewID     func() string
	Now       func() time.Time
	FormatKey func(time.Time) string
}

// CreateReservation builds an active reservation record. It does no validation.
func CreateReservation(in ReservationInput, deps FactoryDeps) Reservation {
	newID := deps.NewID
	if newID == nil {
		newID = idgen.New
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	formatKey := deps.FormatKey
	if formatKey == nil {
		formatKey = FormatStartKey
	}

	return Reservation{
		ID:               newID(),
		OwnerName:        in.OwnerName,
		PetName:          in.PetName,
		PetType:          in.PetType,
		ServiceID:        in.Service.ID,
		ServiceLabel:     in.Service.Label,
		ProfessionalType: in.Service.ProfessionalType,
		ProfessionalID:   in.Professional.ID,
		ProfessionalName: in.Professional.Name,
		Phone:            in.Phone,
		Email:            in.Email,
		StartISO:         formatKey(in.StartDate),
		CreatedAt:        now().UnixMilli(),
		Status:           StatusActive,
	}
}
