package check_availability

import (
	checkAvailability "github.com/m04kA/VetEstetica-BookingService/internal/usecase/check_availability"
)

type CheckAvailabilityRequest struct {
	ProfessionalID  string `json:"professionalId"`
	ServiceID       string `json:"serviceId,omitempty"`
	StartISO        string `json:"startISO"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

type CheckAvailabilityResponse struct {
	Available       bool `json:"available"`
	DurationMinutes int  `json:"durationMinutes"`
}

func (r *CheckAvailabilityRequest) ToUseCaseRequest() *checkAvailability.Request {
	return &checkAvailability.Request{
		ProfessionalID:  r.ProfessionalID,
		ServiceID:       r.ServiceID,
		StartISO:        r.StartISO,
		DurationMinutes: r.DurationMinutes,
	}
}
