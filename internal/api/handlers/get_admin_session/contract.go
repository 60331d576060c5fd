package get_admin_session

import (
	"context"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

type AdminService interface {
	Session(ctx context.Context) (*domain.AdminSession, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
