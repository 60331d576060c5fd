package create_reservation

import (
	"github.com/m04kA/VetEstetica-BookingService/internal/service/reservations/models"
	createBooking "github.com/m04kA/VetEstetica-BookingService/internal/usecase/create_booking"
)

// CreateReservationRequest HTTP запрос на бронирование (поля формы)
type CreateReservationRequest struct {
	OwnerName      string `json:"ownerName"`
	PetName        string `json:"petName"`
	PetType        string `json:"petType"`
	ServiceID      string `json:"serviceId"`
	ProfessionalID string `json:"professionalId"`
	Date           string `json:"date"` // YYYY-MM-DD
	Time           string `json:"time"` // HH:MM
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}

// CreateReservationResponse HTTP ответ с созданным бронированием
type CreateReservationResponse struct {
	Reservation models.ReservationResponse `json:"reservation"`
	Summary     string                     `json:"summary"`
}

func (r *CreateReservationRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		OwnerName:      r.OwnerName,
		PetName:        r.PetName,
		PetType:        r.PetType,
		ServiceID:      r.ServiceID,
		ProfessionalID: r.ProfessionalID,
		Date:           r.Date,
		Time:           r.Time,
		Phone:          r.Phone,
		Email:          r.Email,
	}
}

func FromUseCaseResponse(resp *createBooking.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		Reservation: models.FromDomainReservation(resp.Reservation),
		Summary:     resp.Summary,
	}
}
