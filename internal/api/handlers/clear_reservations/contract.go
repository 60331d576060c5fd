package clear_reservations

import "context"

type ReservationService interface {
	Clear(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
