package get_reservation_counts

import (
	"net/http"

	"github.com/m04kA/VetEstetica-BookingService/internal/api/handlers"
)

type Handler struct {
	service ReservationService
}

func NewHandler(service ReservationService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/admin/reservations/counts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Counts(r.Context()))
}
