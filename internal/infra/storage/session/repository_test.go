package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
	"github.com/m04kA/VetEstetica-BookingService/internal/infra/storage/kv"
)

type downStore struct{}

func (downStore) Get(context.Context, string) (string, bool, error) { return "", false, errors.New("down") }
func (downStore) Set(context.Context, string, string) error         { return errors.New("down") }
func (downStore) Delete(context.Context, string) error              { return errors.New("down") }

func TestRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewRepository(store, "")

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, repo.Save(ctx, domain.AdminSession{OK: true, At: 1715000000000}))

	raw, _, _ := store.Get(ctx, DefaultSessionKey)
	assert.JSONEq(t, `{"ok":true,"at":1715000000000}`, raw)

	s, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, s.OK)

	require.NoError(t, repo.Delete(ctx))
	s, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestRepository_GarbageIsNoSession(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "sess", "not json"))

	s, err := NewRepository(store, "sess").Get(ctx)

	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestRepository_StoreErrors(t *testing.T) {
	repo := NewRepository(downStore{}, "")
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrLoad)
	assert.ErrorIs(t, repo.Save(ctx, domain.AdminSession{OK: true}), ErrSave)
	assert.ErrorIs(t, repo.Delete(ctx), ErrSave)
}
