package create_booking

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнено обязательное поле
	ErrMissingFields = errors.New("create_booking: required fields are missing")

	// ErrInvalidPetType возвращается для вида питомца вне списка разрешенных
	ErrInvalidPetType = errors.New("create_booking: invalid pet type")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrProfessionalMismatch возвращается, когда специалист не найден или не оказывает услугу
	ErrProfessionalMismatch = errors.New("create_booking: professional does not match service")

	// ErrInvalidDateTime возвращается при некорректной дате или времени (в том числе вне сетки :00/:30)
	ErrInvalidDateTime = errors.New("create_booking: invalid date or time")

	// ErrDateInPast возвращается, когда время начала уже прошло
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrOutsideOpenHours возвращается, когда визит не помещается в часы работы
	ErrOutsideOpenHours = errors.New("create_booking: outside open hours")

	// ErrSlotNotAvailable возвращается, когда у специалиста уже есть пересекающаяся запись
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
