package admin

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("admin: invalid credentials")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("admin: internal error")
)
