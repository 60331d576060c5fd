package reservation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

const (
	DefaultReservationsKey = "vetestetica_reservas_v1"
	DefaultSeededKey       = "vetestetica_seeded_v1"

	seededValue = "1"
)

// Repository хранит весь список бронирований одним JSON-массивом
type Repository struct {
	store  Store
	keys   Keys
	logger Logger
}

// NewRepository создает репозиторий, пустые ключи заменяются значениями по умолчанию
func NewRepository(store Store, keys Keys, logger Logger) *Repository {
	if keys.Reservations == "" {
		keys.Reservations = DefaultReservationsKey
	}
	if keys.Seeded == "" {
		keys.Seeded = DefaultSeededKey
	}
	return &Repository{store: store, keys: keys, logger: logger}
}

// List возвращает сохраненные бронирования для отображения
// Ошибка чтения дает пустой список, причина пишется в лог
func (r *Repository) List(ctx context.Context) []domain.Reservation {
	items, err := r.Load(ctx)
	if err != nil {
		r.logger.Warn("reservation.List: using empty list: %v", err)
		return []domain.Reservation{}
	}
	return items
}

// Load читает список для последующей перезаписи
// Ошибка хранилища возвращается вызывающему, битый JSON читается как пустой список
func (r *Repository) Load(ctx context.Context) ([]domain.Reservation, error) {
	raw, ok, err := r.store.Get(ctx, r.keys.Reservations)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - key %s: %v", ErrLoad, r.keys.Reservations, err)
	}
	if !ok || raw == "" {
		return []domain.Reservation{}, nil
	}

	var items []domain.Reservation
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		r.logger.Warn("reservation.Load: stored value under %s is not a reservation list, using empty list: %v", r.keys.Reservations, err)
		return []domain.Reservation{}, nil
	}
	if items == nil {
		items = []domain.Reservation{}
	}
	return items, nil
}

// Save перезаписывает весь список
func (r *Repository) Save(ctx context.Context, items []domain.Reservation) error {
	if items == nil {
		items = []domain.Reservation{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: Save: %v", ErrEncode, err)
	}

	if err := r.store.Set(ctx, r.keys.Reservations, string(data)); err != nil {
		return fmt.Errorf("%w: Save - key %s: %v", ErrSave, r.keys.Reservations, err)
	}
	return nil
}

// Clear сохраняет пустой список, флаг seed не трогает
func (r *Repository) Clear(ctx context.Context) error {
	return r.Save(ctx, []domain.Reservation{})
}

// IsSeeded проверяет флаг загрузки примеров
func (r *Repository) IsSeeded(ctx context.Context) (bool, error) {
	raw, ok, err := r.store.Get(ctx, r.keys.Seeded)
	if err != nil {
		return false, fmt.Errorf("%w: IsSeeded - key %s: %v", ErrLoad, r.keys.Seeded, err)
	}
	return ok && raw == seededValue, nil
}

// MarkSeeded выставляет флаг загрузки примеров
func (r *Repository) MarkSeeded(ctx context.Context) error {
	if err := r.store.Set(ctx, r.keys.Seeded, seededValue); err != nil {
		return fmt.Errorf("%w: MarkSeeded - key %s: %v", ErrSave, r.keys.Seeded, err)
	}
	return nil
}
