package gateway

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes Prometheus counters for the gateway request lifecycle.
// Attempt recording is observation only; nothing in the retry path branches
// on it. Safe for concurrent use.
type Metrics struct {
	attemptsTotal   *prometheus.CounterVec
	retriesTotal    *prometheus.CounterVec
	failuresTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers gateway metrics on the supplied registerer.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	return &Metrics{
		attemptsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_attempts_total",
				Help: "Total number of HTTP attempts made, including retries",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		retriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_retries_total",
				Help: "Total number of retry attempts scheduled",
			},
			[]string{"method", "endpoint"},
		),
		failuresTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_failures_total",
				Help: "Total number of logical calls that exhausted their retry budget",
			},
			[]string{"method", "endpoint", "kind"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_request_duration_seconds",
				Help:    "Duration of logical calls including retries and backoff",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}
}

func (m *Metrics) recordAttempt(method, endpoint string, statusCode int) {
	if m == nil {
		return
	}
	m.attemptsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
}

func (m *Metrics) recordRetry(method, endpoint string) {
	if m == nil {
		return
	}
	m.retriesTotal.WithLabelValues(method, endpoint).Inc()
}

func (m *Metrics) recordFailure(method, endpoint string, kind Kind) {
	if m == nil {
		return
	}
	m.failuresTotal.WithLabelValues(method, endpoint, string(kind)).Inc()
}

func (m *Metrics) recordDuration(method, endpoint string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}
