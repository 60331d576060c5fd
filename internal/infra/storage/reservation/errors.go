package reservation

import "errors"

var (
	// ErrEncode возвращается, когда список бронирований не сериализуется в JSON
	ErrEncode = errors.New("reservation.repository: failed to encode reservations")

	// ErrSave возвращается при ошибке записи в хранилище
	ErrSave = errors.New("reservation.repository: failed to save")

	// ErrLoad возвращается при ошибке чтения из хранилища
	ErrLoad = errors.New("reservation.repository: failed to load")
)
