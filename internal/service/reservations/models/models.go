package models

import (
	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

// Request модели

// ListRequest фильтры административного списка
type ListRequest struct {
	Service    string `json:"service"` // "all", "vet", "groom"
	DateFilter string `json:"date"`    // "all", "future", "past" или YYYY-MM-DD
	Query      string `json:"q"`
}

// Response модели

// ReservationResponse бронирование для административного интерфейса
type ReservationResponse struct {
	ID               string `json:"id"`
	OwnerName        string `json:"ownerName"`
	PetName          string `json:"petName"`
	PetType          string `json:"petType"`
	ServiceID        string `json:"serviceId"`
	ServiceLabel     string `json:"serviceLabel"`
	ProfessionalType string `json:"professionalType"`
	ProfessionalID   string `json:"professionalId"`
	ProfessionalName string `json:"professionalName"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	StartISO         string `json:"startISO"`
	StartDisplay     string `json:"startDisplay"` // "06/05/2024 10:00", пусто для некорректного времени
	DurationMinutes  int    `json:"durationMinutes,omitempty"`
	Status           string `json:"status"`
	CreatedAt        int64  `json:"createdAt"`
	CancelledAt      *int64 `json:"cancelledAt,omitempty"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// CountsResponse счетчики по типам специалистов
type CountsResponse struct {
	Total int `json:"total"`
	Vet   int `json:"vet"`
	Groom int `json:"groom"`
}

// FromDomainReservation конвертирует domain.Reservation, статус нормализуется
func FromDomainReservation(r domain.Reservation) ReservationResponse {
	r = domain.NormalizeStatus(r)

	display := ""
	if start, ok := r.Start(); ok {
		display = domain.FormatNice(start)
	}

	return ReservationResponse{
		ID:               r.ID,
		OwnerName:        r.OwnerName,
		PetName:          r.PetName,
		PetType:          r.PetType,
		ServiceID:        r.ServiceID,
		ServiceLabel:     r.ServiceLabel,
		ProfessionalType: string(r.ProfessionalType),
		ProfessionalID:   r.ProfessionalID,
		ProfessionalName: r.ProfessionalName,
		Phone:            r.Phone,
		Email:            r.Email,
		StartISO:         r.StartISO,
		StartDisplay:     display,
		DurationMinutes:  r.DurationMinutes,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt,
		CancelledAt:      r.CancelledAt,
	}
}

// FromDomainReservationList конвертирует список с сохранением порядка
func FromDomainReservationList(items []domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: out, Total: len(out)}
}

// FromDomainCounts конвертирует счетчики
func FromDomainCounts(c domain.ReservationCounts) *CountsResponse {
	return &CountsResponse{Total: c.Total, Vet: c.Vet, Groom: c.Groom}
}
