package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/VetEstetica-BookingService/pkg/psqlbuilder"
)

const (
	BackendPostgres = "postgres"

	DefaultTable = "kv_store"
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// PostgresStore хранит значения в таблице key/value
type PostgresStore struct {
	db    DBExecutor
	table string
}

// NewPostgresStore создает хранилище поверх таблицы table (kv_store если пусто)
func NewPostgresStore(db DBExecutor, table string) (*PostgresStore, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("%w: invalid table name %q", ErrBuildQuery, table)
	}
	return &PostgresStore{db: db, table: table}, nil
}

// EnsureSchema создает таблицу, если ее еще нет
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, s.table)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table %s: %v", ErrExecQuery, s.table, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.buildGet(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - key %s: %v", ErrScanRow, key, err)
	}

	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query, args, err := s.buildUpsert(key, value)
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - key %s: %v", ErrExecQuery, key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query, args, err := s.buildDelete(key)
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - key %s: %v", ErrExecQuery, key, err)
	}
	return nil
}

func (s *PostgresStore) buildGet(key string) (string, []interface{}, error) {
	return psqlbuilder.Select("value").
		From(s.table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
}

func (s *PostgresStore) buildUpsert(key, value string) (string, []interface{}, error) {
	return psqlbuilder.Insert(s.table).
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
}

func (s *PostgresStore) buildDelete(key string) (string, []interface{}, error) {
	return psqlbuilder.Delete(s.table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
}
