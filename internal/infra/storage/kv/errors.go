package kv

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("kv.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("kv.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("kv.repository: failed to scan row")

	// ErrUnavailable возвращается, когда redis не отвечает
	ErrUnavailable = errors.New("kv.repository: store unavailable")

	// ErrUnknownBackend возвращается при неизвестном значении storage.backend
	ErrUnknownBackend = errors.New("kv.repository: unknown backend")
)
