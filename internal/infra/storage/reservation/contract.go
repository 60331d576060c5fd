package reservation

import "context"

// Store хранилище ключ-значение, в котором лежит список бронирований
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Keys логические ключи в хранилище
type Keys struct {
	Reservations string
	Seeded       string
}
