package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// Результаты отмены (label метрики)
const (
	cancelResultCancelled        = "cancelled"
	cancelResultAlreadyCancelled = "already_cancelled"
	cancelResultNotFound         = "not_found"
	cancelResultError            = "error"
)
