package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxResponseBytes caps how much of a response body one attempt will read.
const maxResponseBytes = 1 << 20

// HTTPClient matches the subset of http.Client the gateway uses.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is the single choke point for all HTTP calls to the backend API.
// It applies a per-attempt timeout, classifies every failure into a Kind,
// and retries transient failures with exponential backoff. Safe for
// concurrent use.
type Client struct {
	base        *url.URL
	http        HTTPClient
	logger      *log.Logger
	timeout     time.Duration
	maxRetries  int
	backoffBase time.Duration
	metrics     *Metrics
}

// New constructs a Client for the given base URL using the provided options.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("gateway: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("gateway: parse base URL: %w", err)
	}
	c := &Client{
		base:        parsed,
		http:        http.DefaultClient,
		logger:      log.New(io.Discard, "", 0),
		timeout:     30 * time.Second,
		maxRetries:  2,
		backoffBase: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do performs one logical call: up to 1+maxRetries attempts, each bounded by
// the timeout, with exponential backoff between attempts. On success the raw
// response body is returned; on failure the last classified error is returned
// unchanged.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any, opts ...CallOption) ([]byte, error) {
	cfg := c.callConfig(opts...)

	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{
				Kind:     KindUnknown,
				Message:  "encode request body",
				Method:   method,
				Endpoint: endpoint,
				Cause:    err,
			}
		}
		payload = encoded
	}

	requestID := uuid.NewString()
	start := time.Now()

	var lastErr *Error
	for attempt := 0; ; attempt++ {
		data, aerr := c.attempt(ctx, method, endpoint, payload, cfg.timeout, requestID, attempt, cfg.maxRetries)
		if aerr == nil {
			c.logger.Printf("api: %s %s ok (attempt %d/%d, request %s)", method, endpoint, attempt+1, cfg.maxRetries+1, requestID)
			c.metrics.recordDuration(method, endpoint, time.Since(start))
			return data, nil
		}
		lastErr = aerr
		c.logger.Printf("api: %s %s failed (attempt %d/%d, request %s): %v", method, endpoint, attempt+1, cfg.maxRetries+1, requestID, aerr)

		if attempt >= cfg.maxRetries || !aerr.Kind.Retryable() {
			break
		}

		wait := c.backoffDelay(attempt)
		c.metrics.recordRetry(method, endpoint)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			c.metrics.recordFailure(method, endpoint, lastErr.Kind)
			return nil, lastErr
		}
	}

	c.metrics.recordFailure(method, endpoint, lastErr.Kind)
	c.metrics.recordDuration(method, endpoint, time.Since(start))
	return nil, lastErr
}

// backoffDelay returns the wait before resubmitting after attempt: a pure
// 2^attempt * base schedule, no jitter.
func (c *Client) backoffDelay(attempt int) time.Duration {
	if attempt > 30 {
		attempt = 30
	}
	return c.backoffBase << uint(attempt)
}

func (c *Client) attempt(ctx context.Context, method, endpoint string, payload []byte, timeout time.Duration, requestID string, attempt, maxRetries int) ([]byte, *Error) {
	fail := func(kind Kind, message string, statusCode int, cause error) *Error {
		c.metrics.recordAttempt(method, endpoint, statusCode)
		return &Error{
			Kind:       kind,
			StatusCode: statusCode,
			Message:    message,
			Method:     method,
			Endpoint:   endpoint,
			Attempt:    attempt,
			MaxRetries: maxRetries,
			RequestID:  requestID,
			Cause:      cause,
		}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, c.resolve(endpoint), bodyReader)
	if err != nil {
		return nil, fail(KindUnknown, "build request", 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err, attemptCtx) {
			return nil, fail(KindTimeout, "attempt exceeded time budget", 0, err)
		}
		return nil, fail(KindNetwork, "request did not reach the server", 0, err)
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if readErr != nil {
			return nil, fail(KindUnknown, "read response body", resp.StatusCode, readErr)
		}
		c.metrics.recordAttempt(method, endpoint, resp.StatusCode)
		return data, nil
	case resp.StatusCode >= 500:
		return nil, fail(KindServer, messageFromBody(data, resp.StatusCode), resp.StatusCode, nil)
	case resp.StatusCode >= 400:
		return nil, fail(KindClient, messageFromBody(data, resp.StatusCode), resp.StatusCode, nil)
	default:
		return nil, fail(KindUnknown, messageFromBody(data, resp.StatusCode), resp.StatusCode, nil)
	}
}

func (c *Client) resolve(endpoint string) string {
	if endpoint == "" {
		return c.base.String()
	}
	trimmed := strings.TrimPrefix(endpoint, "/")
	base := *c.base
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	ref := &url.URL{Path: trimmed}
	return base.ResolveReference(ref).String()
}

// isTimeout distinguishes an exceeded attempt budget from a transport
// failure. The parent context being done is not a timeout of ours.
func isTimeout(err error, attemptCtx context.Context) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Is(attemptCtx.Err(), context.DeadlineExceeded)
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// messageFromBody extracts the server's error message from the JSON error
// envelope, falling back to the status text.
func messageFromBody(body []byte, statusCode int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil {
			if payload.Message != "" {
				return payload.Message
			}
			if payload.Error != "" {
				return payload.Error
			}
		}
	}
	return http.StatusText(statusCode)
}

// Call performs a logical call through c and decodes the response body as T.
func Call[T any](ctx context.Context, c *Client, method, endpoint string, body any, opts ...CallOption) (T, error) {
	var out T
	data, err := c.Do(ctx, method, endpoint, body, opts...)
	if err != nil {
		return out, err
	}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &Error{
			Kind:     KindUnknown,
			Message:  "decode response body",
			Method:   method,
			Endpoint: endpoint,
			Cause:    err,
		}
	}
	return out, nil
}
