package clear_reservations

import (
	"net/http"

	"github.com/m04kA/VetEstetica-BookingService/internal/api/handlers"
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

// Handle DELETE /api/v1/admin/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		h.logger.Error("DELETE /admin/reservations - Failed to clear reservations: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/reservations - All reservations removed")
	handlers.RespondNoContent(w)
}
