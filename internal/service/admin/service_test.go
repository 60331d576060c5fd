package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
	"github.com/m04kA/VetEstetica-BookingService/internal/infra/storage/kv"
	"github.com/m04kA/VetEstetica-BookingService/internal/infra/storage/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var creds = Credentials{Username: "admin", Password: "1234"}

func TestService_LoginLogout(t *testing.T) {
	ctx := context.Background()
	svc := NewService(session.NewRepository(kv.NewMemoryStore(), ""), creds, nopLogger{})
	svc.timeProvider = fixedTime{now: time.UnixMilli(1715000000000)}

	assert.False(t, svc.IsLoggedIn(ctx))

	s, err := svc.Login(ctx, " admin ", "1234")
	require.NoError(t, err)
	assert.Equal(t, &domain.AdminSession{OK: true, At: 1715000000000}, s)
	assert.True(t, svc.IsLoggedIn(ctx))

	stored, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, stored)

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.IsLoggedIn(ctx))
}

func TestService_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewService(session.NewRepository(kv.NewMemoryStore(), ""), creds, nopLogger{})

	_, err := svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.False(t, svc.IsLoggedIn(ctx))
}

type brokenSessions struct{}

func (brokenSessions) Get(context.Context) (*domain.AdminSession, error) {
	return nil, errors.New("down")
}
func (brokenSessions) Save(context.Context, domain.AdminSession) error { return errors.New("down") }
func (brokenSessions) Delete(context.Context) error                  { return errors.New("down") }

func TestService_StoreFailures(t *testing.T) {
	ctx := context.Background()
	svc := NewService(brokenSessions{}, creds, nopLogger{})

	_, err := svc.Login(ctx, "admin", "1234")
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, svc.Logout(ctx), ErrInternal)
	assert.False(t, svc.IsLoggedIn(ctx))
}
