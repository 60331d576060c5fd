package seed_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/VetEstetica-BookingService/internal/api/handlers"
	"github.com/m04kA/VetEstetica-BookingService/internal/service/seed"
)

const (
	msgInvalidForce      = "Parametro force invalido."
	msgReservationsExist = "Ya hay reservas cargadas. Si quieres ejemplos, primero borra todo."
)

type Handler struct {
	service SeedService
	logger  Logger
}

func NewHandler(service SeedService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/seed[?force=true]
// Без force примеры загружаются только один раз.
// С force загрузка разрешена, если хранилище пустое.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	force := false
	if raw := r.URL.Query().Get("force"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("POST /admin/seed - Invalid force: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidForce)
			return
		}
		force = v
	}

	var (
		seeded bool
		err    error
	)
	if force {
		seeded, err = h.service.SeedIfEmpty(r.Context())
	} else {
		seeded, err = h.service.EnsureSeedData(r.Context(), false)
	}
	if err != nil {
		if errors.Is(err, seed.ErrReservationsExist) {
			h.logger.Warn("POST /admin/seed - Reservations already exist")
			handlers.RespondConflict(w, msgReservationsExist)
			return
		}
		h.logger.Error("POST /admin/seed - Failed to seed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/seed - Seed finished: seeded=%t", seeded)
	handlers.RespondJSON(w, http.StatusOK, SeedResponse{Seeded: seeded})
}
