package get_available_slots

import (
	"context"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         *domain.Catalog
	schedule        domain.Schedule
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalog *domain.Catalog,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		schedule:        schedule,
		logger:          logger,
	}
}

// Execute строит сетку слотов на дату
// Ширина слота равна длительности услуги (30 минут, если услуга не выбрана)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	r := normalizeRequest(req)
	uc.logger.Info("GetAvailableSlots: date=%s, service=%s, professional=%s", r.Date, r.ServiceID, r.ProfessionalID)

	service, err := validateRequest(r, uc.catalog)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	slotDuration := domain.DefaultSlotDurationMinutes
	if service.DurationMinutes > 0 {
		slotDuration = service.DurationMinutes
	}

	slots := domain.BuildSlotsForDate(r.Date, slotDuration, uc.schedule)
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: closed on %s", r.Date)
		return &Response{
			Date:                r.Date,
			SlotDurationMinutes: slotDuration,
			Closed:              true,
			Slots:               []SlotInfo{},
			ReservedStartTimes:  []string{},
		}, nil
	}

	existing := uc.reservationRepo.List(ctx)
	reserved := domain.ReservedStartTimesForDate(existing, r.Date, r.ProfessionalID)

	return &Response{
		Date:                r.Date,
		SlotDurationMinutes: slotDuration,
		Slots:               markAvailability(slots, r, slotDuration, existing, uc.catalog.ServiceDuration),
		ReservedStartTimes:  sortedKeys(reserved),
	}, nil
}
