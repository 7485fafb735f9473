package repository

import (
	"context"
	"sync"

	"kitchen-drone/internal/domain"
)

// MemoryStore in-memory хранилище заказов в порядке вставки.
// Единственный мьютекс делает Append/List/DeleteByID атомарными
// относительно друг друга.
type MemoryStore struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make([]domain.Order, 0)}
}

var _ OrderRepository = (*MemoryStore)(nil)

func (m *MemoryStore) Append(_ context.Context, o domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, o)
	return nil
}

func (m *MemoryStore) List(_ context.Context) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// return copy
	out := make([]domain.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *MemoryStore) DeleteByID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, o := range m.orders {
		if o.ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
