package seed

import (
	"context"
	"fmt"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
	"github.com/m04kA/VetEstetica-BookingService/pkg/idgen"
)

// Service загружает примеры бронирований
type Service struct {
	reservationRepo ReservationRepository
	catalog         *domain.Catalog
	txManager       TransactionManager
	timeProvider    TimeProvider
	newID           func() string
	logger          Logger
}

func NewService(
	reservationRepo ReservationRepository,
	catalog *domain.Catalog,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		newID:           idgen.New,
		logger:          logger,
	}
}

// EnsureSeedData сохраняет примеры, если флаг seed не выставлен или force=true
// Существующий список при этом перезаписывается. Возвращает true, если данные загружены.
func (s *Service) EnsureSeedData(ctx context.Context, force bool) (bool, error) {
	var seeded bool

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		seeded, err = s.seed(txCtx, force)
		return err
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

// SeedIfEmpty загружает примеры только в пустое хранилище, флаг seed игнорируется
func (s *Service) SeedIfEmpty(ctx context.Context) (bool, error) {
	var seeded bool

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.reservationRepo.Load(txCtx)
		if err != nil {
			s.logger.Error("Seed: failed to read reservations: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if len(current) > 0 {
			s.logger.Warn("Seed: store already has %d reservations", len(current))
			return fmt.Errorf("%w: %d stored", ErrReservationsExist, len(current))
		}
		seeded, err = s.seed(txCtx, true)
		return err
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

func (s *Service) seed(ctx context.Context, force bool) (bool, error) {
	if !force {
		already, err := s.reservationRepo.IsSeeded(ctx)
		if err != nil {
			s.logger.Error("Seed: failed to read seed flag: %v", err)
			return false, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if already {
			s.logger.Info("Seed: already seeded, skipping")
			return false, nil
		}
	}

	items := s.BuildExamples()
	if len(items) == 0 {
		s.logger.Warn("Seed: catalog has none of the example services, nothing to seed")
		return false, nil
	}

	if err := s.reservationRepo.Save(ctx, items); err != nil {
		s.logger.Error("Seed: failed to save examples: %v", err)
		return false, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := s.reservationRepo.MarkSeeded(ctx); err != nil {
		s.logger.Error("Seed: failed to set seed flag: %v", err)
		return false, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Seed: stored %d example reservations", len(items))
	return true, nil
}

// BuildExamples строит примеры на три ближайших рабочих дня
// Примеры, чьих услуг или специалистов нет в каталоге, пропускаются
func (s *Service) BuildExamples() []domain.Reservation {
	now := s.timeProvider.Now()
	items := make([]domain.Reservation, 0, len(examples))

	for _, ex := range examples {
		service, ok := s.catalog.Service(ex.serviceID)
		if !ok {
			continue
		}
		professional, ok := s.catalog.Professional(ex.professionalID)
		if !ok || !domain.ProfessionalMatchesService(professional, service) {
			continue
		}

		day := nextBusinessDay(now, ex.dayOffset)
		items = append(items, domain.CreateReservation(domain.ReservationInput{
			OwnerName:    ex.ownerName,
			PetName:      ex.petName,
			PetType:      ex.petType,
			Phone:        ex.phone,
			Email:        ex.email,
			Service:      service,
			Professional: professional,
			StartDate:    domain.AtMinute(day, ex.hour*60+ex.minute),
		}, domain.FactoryDeps{
			NewID: s.newID,
			Now:   s.timeProvider.Now,
		}))
	}
	return items
}
