package reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
	"github.com/m04kA/VetEstetica-BookingService/internal/infra/storage/kv"
)

type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Warn(format string, v ...interface{}) {
	m.warnings = append(m.warnings, fmt.Sprintf(format, v...))
}

type brokenStore struct {
	getErr error
	setErr error
}

func (s *brokenStore) Get(context.Context, string) (string, bool, error) { return "", false, s.getErr }
func (s *brokenStore) Set(context.Context, string, string) error         { return s.setErr }
func (s *brokenStore) Delete(context.Context, string) error              { return nil }

func TestRepository_SaveAndList(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewRepository(store, Keys{}, &mockLogger{})

	assert.Empty(t, repo.List(ctx))

	items := []domain.Reservation{
		{ID: "1", ProfessionalID: "vet-1", ProfessionalType: domain.ProfessionalTypeVet, StartISO: "2024-05-06T09:00", Status: domain.StatusActive},
	}
	require.NoError(t, repo.Save(ctx, items))

	assert.Equal(t, items, repo.List(ctx))

	raw, ok, err := store.Get(ctx, DefaultReservationsKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"proId":"vet-1"`)
	assert.Contains(t, raw, `"startISO":"2024-05-06T09:00"`)
}

func TestRepository_ListReadsLegacyRecords(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, DefaultReservationsKey,
		`[{"id":"x","ownerName":"Ana","proType":"groom","proId":"groom-1","startISO":"2024-05-06T10:00","createdAt":1}]`))
	repo := NewRepository(store, Keys{}, &mockLogger{})

	items := repo.List(ctx)

	require.Len(t, items, 1)
	assert.Equal(t, "groom-1", items[0].ProfessionalID)
	assert.Empty(t, items[0].Status)
	assert.Equal(t, domain.StatusActive, domain.NormalizeStatus(items[0]).Status)
}

func TestRepository_ListFailuresYieldEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("store error", func(t *testing.T) {
		logger := &mockLogger{}
		repo := NewRepository(&brokenStore{getErr: errors.New("down")}, Keys{}, logger)

		assert.Equal(t, []domain.Reservation{}, repo.List(ctx))
		assert.Len(t, logger.warnings, 1)
	})

	t.Run("bad json", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "custom", "{not json"))
		logger := &mockLogger{}
		repo := NewRepository(store, Keys{Reservations: "custom"}, logger)

		assert.Equal(t, []domain.Reservation{}, repo.List(ctx))
		assert.Len(t, logger.warnings, 1)
	})
}

func TestRepository_LoadReturnsStoreErrors(t *testing.T) {
	ctx := context.Background()

	items, err := NewRepository(&brokenStore{getErr: errors.New("down")}, Keys{}, &mockLogger{}).Load(ctx)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, ErrLoad)

	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, DefaultReservationsKey, "{not json"))
	items, err = NewRepository(store, Keys{}, &mockLogger{}).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Reservation{}, items)
}

func TestRepository_SaveFailurePropagates(t *testing.T) {
	repo := NewRepository(&brokenStore{setErr: errors.New("read-only")}, Keys{}, &mockLogger{})

	err := repo.Save(context.Background(), nil)

	assert.ErrorIs(t, err, ErrSave)
}

func TestRepository_ClearAndSeedFlag(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewRepository(store, Keys{}, &mockLogger{})

	seeded, err := repo.IsSeeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	require.NoError(t, repo.MarkSeeded(ctx))
	require.NoError(t, repo.Save(ctx, []domain.Reservation{{ID: "1"}}))
	require.NoError(t, repo.Clear(ctx))

	assert.Empty(t, repo.List(ctx))
	raw, _, _ := store.Get(ctx, DefaultReservationsKey)
	assert.Equal(t, "[]", raw)

	seeded, err = repo.IsSeeded(ctx)
	require.NoError(t, err)
	assert.True(t, seeded, "clear keeps the seed flag")
}
