package list_reservations

import (
	"net/http"
	"strings"

	"github.com/m04kA/VetEstetica-BookingService/internal/api/handlers"
	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
	"github.com/m04kA/VetEstetica-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidServiceFilter = "Filtro de servicio invalido. Usa all, vet o groom."
	msgInvalidDateFilter    = "Filtro de fecha invalido. Usa all, future, past o AAAA-MM-DD."
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

// Handle GET /api/v1/admin/reservations?service=all|vet|groom&date=all|future|past|YYYY-MM-DD&q=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListRequest{
		Service:    strings.TrimSpace(query.Get("service")),
		DateFilter: strings.TrimSpace(query.Get("date")),
		Query:      query.Get("q"),
	}

	if !isValidServiceFilter(req.Service) {
		h.logger.Warn("GET /admin/reservations - Invalid service filter: %s", req.Service)
		handlers.RespondBadRequest(w, msgInvalidServiceFilter)
		return
	}
	if !isValidDateFilter(req.DateFilter) {
		h.logger.Warn("GET /admin/reservations - Invalid date filter: %s", req.DateFilter)
		handlers.RespondBadRequest(w, msgInvalidDateFilter)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.service.List(r.Context(), req))
}

func isValidServiceFilter(v string) bool {
	if v == "" || v == domain.ServiceFilterAll {
		return true
	}
	return domain.ProfessionalType(v).IsValid()
}

func isValidDateFilter(v string) bool {
	switch v {
	case "", domain.DateFilterAll, domain.DateFilterFuture, domain.DateFilterPast:
		return true
	}
	return domain.IsDateKey(v)
}
