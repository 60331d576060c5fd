package seed

import "errors"

var (
	// ErrReservationsExist возвращается, когда примеры просят загрузить в непустое хранилище
	ErrReservationsExist = errors.New("seed: reservations already exist")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("seed: internal error")
)
