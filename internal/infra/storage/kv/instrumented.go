package kv

import "context"

// InstrumentedStore считает операции нижележащего хранилища
type InstrumentedStore struct {
	next    Store
	backend string
	metrics MetricsRecorder
}

func NewInstrumentedStore(next Store, backend string, metrics MetricsRecorder) *InstrumentedStore {
	return &InstrumentedStore{next: next, backend: backend, metrics: metrics}
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok, err := s.next.Get(ctx, key)
	s.metrics.IncStoreOperation(s.backend, "get", err)
	return value, ok, err
}

func (s *InstrumentedStore) Set(ctx context.Context, key, value string) error {
	err := s.next.Set(ctx, key, value)
	s.metrics.IncStoreOperation(s.backend, "set", err)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	err := s.next.Delete(ctx, key)
	s.metrics.IncStoreOperation(s.backend, "delete", err)
	return err
}
