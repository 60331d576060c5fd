package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/VetEstetica-BookingService/internal/api/handlers"
	"github.com/m04kA/VetEstetica-BookingService/internal/service/reservations"
)

const (
	msgMissingID           = "Falta el id de la reserva."
	msgReservationNotFound = "Reserva no encontrada."
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/reservations/{id}/cancel
// Повторная отмена отвечает 200 с уже отмененной записью
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	result, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Reservation not found: reservation_id=%s", id)
			handlers.RespondNotFound(w, msgReservationNotFound)
		default:
			h.logger.Error("PATCH /admin/reservations/{id}/cancel - Failed to cancel: reservation_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id}/cancel - Reservation cancelled: reservation_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
