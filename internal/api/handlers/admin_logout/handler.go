package admin_logout

import (
	"net/http"

	"github.com/m04kA/VetEstetica-BookingService/internal/api/handlers"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		h.logger.Error("POST /admin/logout - Failed to logout: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/logout - Admin logged out")
	handlers.RespondNoContent(w)
}
