package kv

import (
	"context"
	"database/sql"
)

// Store хранилище строковых значений по ключу
// Отсутствующий ключ - это ("", false, nil), а не ошибка
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// DBExecutor подмножество *sql.DB, нужное PostgresStore
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// MetricsRecorder учитывает операции с хранилищем
type MetricsRecorder interface {
	IncStoreOperation(backend, op string, err error)
}
