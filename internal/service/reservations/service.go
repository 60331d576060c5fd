package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
	"github.com/m04kA/VetEstetica-BookingService/internal/service/reservations/models"
)

// Service сервис администрирования бронирований
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// List возвращает бронирования, отсортированные по времени начала и отфильтрованные
func (s *Service) List(ctx context.Context, req *models.ListRequest) *models.ReservationListResponse {
	s.logger.Info("ListReservations: service=%q, date=%q, q=%q", req.Service, req.DateFilter, req.Query)

	items := domain.SortReservationsByStartISO(s.reservationRepo.List(ctx))
	filtered := domain.FilterReservations(items, domain.FilterCriteria{
		Service:    req.Service,
		DateFilter: req.DateFilter,
		Query:      req.Query,
		Now:        s.timeProvider.Now(),
	})

	s.logger.Info("ListReservations: %d of %d reservations match", len(filtered), len(items))
	return models.FromDomainReservationList(filtered)
}

// Counts считает все бронирования, включая отмененные
func (s *Service) Counts(ctx context.Context) *models.CountsResponse {
	return models.FromDomainCounts(domain.CountReservationsByType(s.reservationRepo.List(ctx)))
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	for _, r := range s.reservationRepo.List(ctx) {
		if r.ID == id {
			resp := models.FromDomainReservation(r)
			return &resp, nil
		}
	}
	s.logger.Warn("GetByID: reservation id=%s not found", id)
	return nil, ErrReservationNotFound
}

// Cancel отменяет бронирование
// Повторная отмена ничего не меняет и возвращает уже отмененную запись
func (s *Service) Cancel(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("CancelReservation: id=%s", id)

	var result domain.Reservation
	var alreadyCancelled bool

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		items, err := s.reservationRepo.Load(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Cancel - load: %v", ErrInternal, err)
		}

		found := false
		for _, r := range items {
			if r.ID == id {
				found = true
				alreadyCancelled = domain.IsCancelled(r)
				break
			}
		}
		if !found {
			return ErrReservationNotFound
		}

		next := domain.CancelReservationByID(items, id, s.timeProvider.Now())
		if !alreadyCancelled {
			if err := s.reservationRepo.Save(txCtx, next); err != nil {
				return fmt.Errorf("%w: Cancel - save: %v", ErrInternal, err)
			}
		}

		for _, r := range next {
			if r.ID == id {
				result = r
				break
			}
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			s.logger.Warn("CancelReservation: reservation id=%s not found", id)
			s.metrics.IncCancellation(cancelResultNotFound)
			return nil, err
		}
		s.logger.Error("CancelReservation: failed to cancel id=%s: %v", id, err)
		s.metrics.IncCancellation(cancelResultError)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: Cancel: %v", ErrInternal, err)
		}
		return nil, err
	}

	if alreadyCancelled {
		s.logger.Info("CancelReservation: id=%s was already cancelled", id)
		s.metrics.IncCancellation(cancelResultAlreadyCancelled)
	} else {
		s.logger.Info("CancelReservation: successfully cancelled id=%s", id)
		s.metrics.IncCancellation(cancelResultCancelled)
	}

	resp := models.FromDomainReservation(result)
	return &resp, nil
}

// Clear удаляет все бронирования
func (s *Service) Clear(ctx context.Context) error {
	s.logger.Info("ClearReservations: removing all reservations")

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return s.reservationRepo.Clear(txCtx)
	})
	if err != nil {
		s.logger.Error("ClearReservations: %v", err)
		return fmt.Errorf("%w: Clear: %v", ErrInternal, err)
	}
	return nil
}
