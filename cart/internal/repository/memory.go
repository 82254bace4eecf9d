package repository

import (
	"context"
	"sync"

	"github.com/elanicia/storefront/cart/internal/domain"
)

// MemoryStorage holds the cart in process memory. Nothing survives a restart.
type MemoryStorage struct {
	mu    sync.RWMutex
	items []domain.LineItem
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load(context.Context) ([]domain.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return items, nil
}

func (s *MemoryStorage) Save(_ context.Context, items []domain.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]domain.LineItem, len(items))
	copy(s.items, items)
	return nil
}

func (s *MemoryStorage) Delete(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}
