package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при пустой или некорректной дате
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrProfessionalNotFound возвращается, когда специалист не найден в каталоге
	ErrProfessionalNotFound = errors.New("get_available_slots: professional not found")

	// ErrProfessionalMismatch возвращается, когда специалист не оказывает выбранную услугу
	ErrProfessionalMismatch = errors.New("get_available_slots: professional does not match service")
)
