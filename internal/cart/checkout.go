package cart

import (
	"io"
	"log"
	"sync"
	"time"
)

// Checkout is the timed confirmation flow that follows "place order": it
// enters a checking-out display state, and after a fixed delay clears the
// cart and leaves that state. No network call backs this transition; it is
// not a payment or order-creation protocol.
type Checkout struct {
	mu     sync.Mutex
	active bool
	cart   *Manager
	delay  time.Duration
	logger *log.Logger
	timer  *time.Timer
}

func NewCheckout(cart *Manager, delay time.Duration, logger *log.Logger) *Checkout {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Checkout{
		cart:   cart,
		delay:  delay,
		logger: logger,
	}
}

// Begin enters the checking-out state and schedules the completion that
// clears the cart. Returns false when a checkout is already in flight.
func (c *Checkout) Begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return false
	}
	c.active = true
	c.logger.Printf("checkout: started, completing in %s", c.delay)
	c.timer = time.AfterFunc(c.delay, c.complete)
	return true
}

// Active reports whether the checking-out display state is showing.
func (c *Checkout) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Checkout) complete() {
	c.mu.Lock()
	c.active = false
	c.timer = nil
	c.mu.Unlock()

	c.cart.Clear()
	c.logger.Printf("checkout: completed, cart cleared")
}
