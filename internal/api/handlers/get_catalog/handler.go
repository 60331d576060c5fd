package get_catalog

import (
	"net/http"

	"github.com/m04kA/VetEstetica-BookingService/internal/api/handlers"
	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

const msgInvalidProfessionalType = "Tipo de profesional invalido."

type Handler struct {
	catalog  CatalogProvider
	petTypes []string
	hours    string
	logger   Logger
}

func NewHandler(catalog CatalogProvider, petTypes []string, hours string, logger Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		petTypes: petTypes,
		hours:    hours,
		logger:   logger,
	}
}

// Handle GET /api/v1/catalog[?proType=vet|groom]
// С proType специалисты и услуги фильтруются по типу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := h.catalog.Services()
	pros := h.catalog.Professionals()

	if raw := r.URL.Query().Get("proType"); raw != "" {
		proType := domain.ProfessionalType(raw)
		if !proType.IsValid() {
			h.logger.Warn("GET /catalog - Invalid professional type: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidProfessionalType)
			return
		}
		pros = h.catalog.ProfessionalsByType(proType)
		filtered := services[:0]
		for _, s := range services {
			if s.ProfessionalType == proType {
				filtered = append(filtered, s)
			}
		}
		services = filtered
	}

	petTypes := h.petTypes
	if petTypes == nil {
		petTypes = []string{}
	}

	handlers.RespondJSON(w, http.StatusOK, CatalogResponse{
		Services:      FromDomainServices(services),
		Professionals: FromDomainProfessionals(pros),
		PetTypes:      petTypes,
		Hours:         h.hours,
	})
}
