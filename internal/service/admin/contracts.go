package admin

import (
	"context"
	"time"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

// SessionRepository интерфейс хранилища сессии администратора
type SessionRepository interface {
	Get(ctx context.Context) (*domain.AdminSession, error)
	Save(ctx context.Context, s domain.AdminSession) error
	Delete(ctx context.Context) error
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

// Credentials учетные данные администратора из конфигурации
type Credentials struct {
	Username string
	Password string
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
