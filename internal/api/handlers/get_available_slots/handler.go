package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/VetEstetica-BookingService/internal/api/handlers"
	getSlots "github.com/m04kA/VetEstetica-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate          = "Fecha invalida. Usa el formato AAAA-MM-DD."
	msgServiceNotFound      = "Servicio invalido."
	msgProfessionalNotFound = "Profesional no encontrado."
	msgProfessionalMismatch = "Profesional invalido para el servicio seleccionado."
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD&serviceId=...&professionalId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getSlots.Request{
		Date:           query.Get("date"),
		ServiceID:      query.Get("serviceId"),
		ProfessionalID: query.Get("professionalId"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrInvalidDate):
			h.logger.Warn("GET /slots - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, getSlots.ErrServiceNotFound):
			h.logger.Warn("GET /slots - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, getSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /slots - Professional not found: professional_id=%s", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)
		case errors.Is(err, getSlots.ErrProfessionalMismatch):
			h.logger.Warn("GET /slots - Professional mismatch: professional_id=%s, service_id=%s",
				req.ProfessionalID, req.ServiceID)
			handlers.RespondBadRequest(w, msgProfessionalMismatch)
		default:
			h.logger.Error("GET /slots - Failed to build slots: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots built: date=%s, count=%d, reserved=%d",
		result.Date, len(result.Slots), len(result.ReservedStartTimes))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
