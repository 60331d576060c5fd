package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается, когда не указан специалист или время начала некорректно
	ErrInvalidInput = errors.New("check_availability: invalid input data")
)
