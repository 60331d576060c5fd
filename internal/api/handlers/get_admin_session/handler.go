package get_admin_session

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

// Handle GET /api/v1/admin/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Session(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/session - Failed to load session: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSession(session))
}
