package cart

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"trendify-storefront/internal/domain"
)

const saveTimeout = 2 * time.Second

// Manager is the single source of truth for the active cart. Construct one
// per session and inject it into consumers; there is no package-level state.
// All operations are total: from the caller's point of view a cart mutation
// always succeeds, and a broken store only costs durability, never the
// in-memory state. Safe for concurrent use.
type Manager struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	store   Store
	logger  *log.Logger
	subs    map[int]func([]domain.CartLine)
	nextSub int
}

// NewManager builds a Manager seeded from the store. A corrupt or unreadable
// stored cart degrades to an empty one.
func NewManager(store Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	m := &Manager{
		store:  store,
		logger: logger,
		subs:   make(map[int]func([]domain.CartLine)),
	}
	if store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		lines, err := store.Load(ctx)
		if err != nil {
			logger.Printf("cart: stored cart unreadable, starting empty: %v", err)
		} else {
			m.lines = lines
		}
	}
	return m
}

// AddItem puts one unit of (product, variant) in the cart: an existing line
// gains quantity 1, otherwise a new line is appended.
func (m *Manager) AddItem(product domain.Product, variant string) {
	m.mutate(func() {
		for i := range m.lines {
			if m.lines[i].Matches(product.ID, variant) {
				m.lines[i].Quantity++
				return
			}
		}
		m.lines = append(m.lines, domain.NewCartLine(product, variant))
	})
}

// SetQuantity replaces the quantity of the matching line. A quantity of zero
// or less removes the line. Non-matching lines are untouched.
func (m *Manager) SetQuantity(productID, variant string, quantity int) {
	m.mutate(func() {
		for i := range m.lines {
			if m.lines[i].Matches(productID, variant) {
				if quantity <= 0 {
					m.lines = append(m.lines[:i], m.lines[i+1:]...)
				} else {
					m.lines[i].Quantity = quantity
				}
				return
			}
		}
	})
}

// RemoveItem drops the matching line if present; no-op otherwise.
func (m *Manager) RemoveItem(productID, variant string) {
	m.SetQuantity(productID, variant, 0)
}

// Clear empties the cart. Used after a completed checkout.
func (m *Manager) Clear() {
	m.mutate(func() {
		m.lines = nil
	})
}

// Total is the sum of price times quantity over all lines, computed on
// demand and never cached.
func (m *Manager) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for _, l := range m.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// LineCount is the number of distinct lines, not the summed quantities.
func (m *Manager) LineCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines)
}

// Lines returns a copy of the cart in insertion order.
func (m *Manager) Lines() []domain.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Subscribe registers fn to run after every mutation with a snapshot of the
// new state. The returned function unsubscribes.
func (m *Manager) Subscribe(fn func([]domain.CartLine)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// mutate applies fn, persists the new state, and notifies subscribers with a
// snapshot. The mutation and persist run under one lock so observers never
// see a torn state; notification happens outside it so subscribers may call
// back into the manager.
func (m *Manager) mutate(fn func()) {
	m.mu.Lock()
	fn()
	m.persistLocked()
	snapshot := m.snapshot()
	subs := make([]func([]domain.CartLine), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func (m *Manager) persistLocked() {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := m.store.Save(ctx, m.lines); err != nil {
		m.logger.Printf("cart: persist failed: %v", err)
	}
}

func (m *Manager) snapshot() []domain.CartLine {
	out := make([]domain.CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}
