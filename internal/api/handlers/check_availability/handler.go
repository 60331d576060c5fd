package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/VetEstetica-BookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/VetEstetica-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "Solicitud invalida."
	msgInvalidInput       = "Profesional y horario son obligatorios (AAAA-MM-DDTHH:MM)."
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if errors.Is(err, checkAvailability.ErrInvalidInput) {
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /availability/check - Failed to check availability: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CheckAvailabilityResponse{
		Available:       result.Available,
		DurationMinutes: result.DurationMinutes,
	})
}
