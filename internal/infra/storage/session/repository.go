package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

const DefaultSessionKey = "vetestetica_admin_session_v1"

// Repository хранит одну сессию администратора
type Repository struct {
	store Store
	key   string
}

func NewRepository(store Store, key string) *Repository {
	if key == "" {
		key = DefaultSessionKey
	}
	return &Repository{store: store, key: key}
}

// Get возвращает сохраненную сессию или nil, если ее нет либо она не читается
func (r *Repository) Get(ctx context.Context) (*domain.AdminSession, error) {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - key %s: %v", ErrLoad, r.key, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var s domain.AdminSession
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, nil
	}
	return &s, nil
}

func (r *Repository) Save(ctx context.Context, s domain.AdminSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: Save - encode: %v", ErrSave, err)
	}
	if err := r.store.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("%w: Save - key %s: %v", ErrSave, r.key, err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("%w: Delete - key %s: %v", ErrSave, r.key, err)
	}
	return nil
}
