package simpletxmanager

import (
	"context"
	"sync"
)

// TransactionManager сериализует read-modify-write над хранилищем в пределах процесса
// Хранилище ключ-значение не умеет транзакции, поэтому "serializable" здесь означает
// эксклюзивную блокировку на время fn
type TransactionManager struct {
	mu sync.Mutex
}

func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// DoSerializable выполняет fn под эксклюзивной блокировкой
// Если контекст отменен до захвата блокировки, fn не вызывается
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}
