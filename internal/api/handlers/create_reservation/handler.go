package create_reservation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/VetEstetica-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/VetEstetica-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "Solicitud invalida."
	msgMissingFields        = "Por favor completa todos los campos obligatorios (*)."
	msgInvalidPetType       = "Tipo de mascota invalido. Solo Perro o Gato."
	msgServiceNotFound      = "Servicio invalido."
	msgProfessionalMismatch = "Profesional invalido para el servicio seleccionado."
	msgInvalidDateTime      = "Fecha u hora invalida. Elegi un horario en punto o y media."
	msgDateInPast           = "Elegi una fecha y hora futura."
	msgOutsideOpenHours     = "Fuera del horario de atencion. %s."
	msgSlotNotAvailable     = "Ese profesional ya tiene un turno en ese horario. Elige otro."
)

type Handler struct {
	useCase      CreateBookingUseCase
	hoursSummary string
	logger       Logger
}

// NewHandler hoursSummary подставляется в сообщение о нерабочем времени
func NewHandler(useCase CreateBookingUseCase, hoursSummary string, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		hoursSummary: hoursSummary,
		logger:       logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingFields):
			h.logger.Warn("POST /reservations - Missing fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidPetType):
			h.logger.Warn("POST /reservations - Invalid pet type: %s", req.PetType)
			handlers.RespondBadRequest(w, msgInvalidPetType)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrProfessionalMismatch):
			h.logger.Warn("POST /reservations - Professional mismatch: professional_id=%s, service_id=%s",
				req.ProfessionalID, req.ServiceID)
			handlers.RespondBadRequest(w, msgProfessionalMismatch)

		case errors.Is(err, createBooking.ErrInvalidDateTime):
			h.logger.Warn("POST /reservations - Invalid date/time: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /reservations - Date in past: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrOutsideOpenHours):
			h.logger.Warn("POST /reservations - Outside open hours: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, fmt.Sprintf(msgOutsideOpenHours, h.hoursSummary))

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: professional_id=%s, date=%s, time=%s",
				req.ProfessionalID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%s, professional_id=%s",
		result.Reservation.ID, result.Reservation.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
