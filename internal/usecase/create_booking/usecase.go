package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
	"github.com/m04kA/VetEstetica-BookingService/pkg/idgen"
	"github.com/m04kA/VetEstetica-BookingService/pkg/metrics"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         *domain.Catalog
	schedule        domain.Schedule
	petTypes        []string
	txManager       TransactionManager
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	newID           func() string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalog *domain.Catalog,
	schedule domain.Schedule,
	petTypes []string,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		schedule:        schedule,
		petTypes:        petTypes,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		newID:           idgen.New,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и запись выполняются под одной блокировкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	r := normalizeRequest(req)
	uc.logger.Info("CreateBooking: service=%s, professional=%s, date=%s, time=%s",
		r.ServiceID, r.ProfessionalID, r.Date, r.Time)

	// 1. Обязательные поля
	if err := validateRequiredFields(r); err != nil {
		return nil, uc.reject("required fields", err)
	}

	// 2. Вид питомца
	if !domain.IsPetTypeAllowed(r.PetType, uc.petTypes) {
		return nil, uc.reject("pet type", fmt.Errorf("%w: %q", ErrInvalidPetType, r.PetType))
	}

	// 3. Услуга
	service, ok := uc.catalog.Service(r.ServiceID)
	if !ok {
		return nil, uc.reject("service", fmt.Errorf("%w: id=%s", ErrServiceNotFound, r.ServiceID))
	}

	// 4. Специалист должен существовать и подходить под услугу
	professional, ok := uc.catalog.Professional(r.ProfessionalID)
	if !ok || !domain.ProfessionalMatchesService(professional, service) {
		return nil, uc.reject("professional",
			fmt.Errorf("%w: professional=%s service=%s", ErrProfessionalMismatch, r.ProfessionalID, r.ServiceID))
	}

	// 5. Дата и время
	start, err := parseStart(r.Date, r.Time)
	if err != nil {
		return nil, uc.reject("date/time", err)
	}

	now := uc.timeProvider.Now()
	if !domain.IsFutureDate(start, now) {
		return nil, uc.reject("date", fmt.Errorf("%w: %s", ErrDateInPast, domain.FormatStartKey(start)))
	}

	// 6. Часы работы с учетом длительности услуги
	if !domain.IsOpenHours(start, service.DurationMinutes, uc.schedule) {
		return nil, uc.reject("open hours",
			fmt.Errorf("%w: %s for %d minutes", ErrOutsideOpenHours, domain.FormatStartKey(start), service.DurationMinutes))
	}

	var created domain.Reservation

	// 7. Проверка пересечений и сохранение
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		candidate := domain.CreateReservation(domain.ReservationInput{
			OwnerName:    r.OwnerName,
			PetName:      r.PetName,
			PetType:      r.PetType,
			Phone:        r.Phone,
			Email:        r.Email,
			Service:      service,
			Professional: professional,
			StartDate:    start,
		}, domain.FactoryDeps{
			NewID: uc.newID,
			Now:   uc.timeProvider.Now,
		})
		candidate.DurationMinutes = service.DurationMinutes

		existing, err := uc.reservationRepo.Load(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
		}
		if domain.HasOverlap(existing, candidate, uc.catalog.ServiceDuration, domain.DefaultSlotDurationMinutes) {
			return fmt.Errorf("%w: professional=%s start=%s", ErrSlotNotAvailable, candidate.ProfessionalID, candidate.StartISO)
		}

		next := domain.SortReservationsByStartISO(append(existing, candidate))
		if err := uc.reservationRepo.Save(txCtx, next); err != nil {
			return fmt.Errorf("%w: failed to save reservations: %v", ErrInternal, err)
		}

		created = candidate
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable):
			uc.logger.Warn("CreateBooking: %v", err)
			uc.metrics.IncBooking(metrics.BookingResultConflict)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: %v", err)
		default:
			uc.logger.Error("CreateBooking: serializable section failed: %v", err)
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		uc.metrics.IncBooking(metrics.BookingResultError)
		return nil, err
	}

	uc.metrics.IncBooking(metrics.BookingResultCreated)
	uc.logger.Info("CreateBooking: successfully created reservation id=%s for professional=%s at %s",
		created.ID, created.ProfessionalID, created.StartISO)

	return &Response{
		Reservation: created,
		Summary:     buildSummary(created, start),
	}, nil
}

// reject логирует и учитывает отказ валидации
func (uc *UseCase) reject(step string, err error) error {
	uc.logger.Warn("CreateBooking: validation failed (%s): %v", step, err)
	uc.metrics.IncBooking(metrics.BookingResultRejected)
	return err
}
