package list_reservations

import (
	"context"

	"github.com/m04kA/VetEstetica-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context, req *models.ListRequest) *models.ReservationListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
