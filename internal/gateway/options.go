package gateway

import (
	"log"
	"time"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP transport.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the boundary logger for attempt diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout sets the default per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxRetries sets the default retry budget per logical call.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithBackoffBase overrides the 1s backoff base. Tests use this to keep the
// 2^attempt schedule while waiting milliseconds instead of seconds.
func WithBackoffBase(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.backoffBase = d
		}
	}
}

// WithMetrics attaches a Prometheus collector for attempt observation.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

type callConfig struct {
	timeout    time.Duration
	maxRetries int
	degrade    bool
}

// CallOption adjusts a single logical call.
type CallOption func(*callConfig)

func (c *Client) callConfig(opts ...CallOption) callConfig {
	cfg := callConfig{
		timeout:    c.timeout,
		maxRetries: c.maxRetries,
		degrade:    true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCallTimeout overrides the per-attempt timeout for one call.
func WithCallTimeout(d time.Duration) CallOption {
	return func(cfg *callConfig) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

// WithCallRetries overrides the retry budget for one call.
func WithCallRetries(n int) CallOption {
	return func(cfg *callConfig) {
		if n >= 0 {
			cfg.maxRetries = n
		}
	}
}

// WithoutDegrade disables the degrade-to-empty policy on read wrappers so
// failures propagate as classified errors. Write wrappers never degrade.
func WithoutDegrade() CallOption {
	return func(cfg *callConfig) {
		cfg.degrade = false
	}
}
