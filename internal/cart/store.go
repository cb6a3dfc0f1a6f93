package cart

import (
	"context"
	"sync"

	"trendify-storefront/internal/domain"
)

// StoreKey is the fixed name the cart is persisted under, matching the key
// the web client used for its local storage.
const StoreKey = "cart"

// Store persists the full cart as a flat ordered sequence of lines. A Load
// error means the stored value is unreadable or corrupt; the manager treats
// that as "no cart".
type Store interface {
	Load(ctx context.Context) ([]domain.CartLine, error)
	Save(ctx context.Context, lines []domain.CartLine) error
}

// MemoryStore keeps the cart in process memory. Used by tests and as a
// fallback when no durable store is configured.
type MemoryStore struct {
	mu    sync.Mutex
	lines []domain.CartLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]domain.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, lines []domain.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make([]domain.CartLine, len(lines))
	copy(s.lines, lines)
	return nil
}
