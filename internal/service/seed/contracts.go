package seed

import (
	"context"
	"time"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований с флагом seed
type ReservationRepository interface {
	Load(ctx context.Context) ([]domain.Reservation, error)
	Save(ctx context.Context, items []domain.Reservation) error
	IsSeeded(ctx context.Context) (bool, error)
	MarkSeeded(ctx context.Context) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
