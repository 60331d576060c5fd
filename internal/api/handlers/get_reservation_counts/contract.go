package get_reservation_counts

import (
	"context"

	"github.com/m04kA/VetEstetica-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	Counts(ctx context.Context) *models.CountsResponse
}
