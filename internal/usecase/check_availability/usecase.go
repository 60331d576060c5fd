package check_availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

// UseCase проверяет, свободен ли специалист в произвольное время
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         *domain.Catalog
	logger          Logger
}

func NewUseCase(reservationRepo ReservationRepository, catalog *domain.Catalog, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		logger:          logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	candidate := domain.Reservation{
		ProfessionalID:  strings.TrimSpace(req.ProfessionalID),
		ServiceID:       strings.TrimSpace(req.ServiceID),
		StartISO:        strings.TrimSpace(req.StartISO),
		DurationMinutes: req.DurationMinutes,
		Status:          domain.StatusActive,
	}

	if candidate.ProfessionalID == "" {
		uc.logger.Warn("CheckAvailability: professional is required")
		return nil, fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}
	if _, ok := candidate.Start(); !ok {
		uc.logger.Warn("CheckAvailability: invalid start %q", candidate.StartISO)
		return nil, fmt.Errorf("%w: startISO %q", ErrInvalidInput, candidate.StartISO)
	}
	if candidate.DurationMinutes < 0 {
		return nil, fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}

	existing := uc.reservationRepo.List(ctx)
	overlaps := domain.HasOverlap(existing, candidate, uc.catalog.ServiceDuration, domain.DefaultSlotDurationMinutes)

	uc.logger.Info("CheckAvailability: professional=%s start=%s available=%t",
		candidate.ProfessionalID, candidate.StartISO, !overlaps)

	return &Response{
		Available:       !overlaps,
		DurationMinutes: domain.EffectiveDuration(candidate, uc.catalog.ServiceDuration, domain.DefaultSlotDurationMinutes),
	}, nil
}
