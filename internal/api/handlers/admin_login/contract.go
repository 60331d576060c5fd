package admin_login

import (
	"context"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

type AdminService interface {
	Login(ctx context.Context, username, password string) (*domain.AdminSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
