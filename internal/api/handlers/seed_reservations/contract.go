package seed_reservations

import "context"

type SeedService interface {
	EnsureSeedData(ctx context.Context, force bool) (bool, error)
	SeedIfEmpty(ctx context.Context) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
