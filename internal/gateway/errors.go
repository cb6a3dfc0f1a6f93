package gateway

import (
	"errors"
	"fmt"
)

// Kind is the classified failure category of a gateway call. Every failure
// that leaves this package carries exactly one Kind.
type Kind string

const (
	// KindTimeout means an attempt exceeded its time budget with no response.
	KindTimeout Kind = "Timeout"
	// KindNetwork means the request never reached the server.
	KindNetwork Kind = "NetworkError"
	// KindServer means the server answered with a 5xx status.
	KindServer Kind = "ServerError"
	// KindClient means the server answered with a 4xx status. Retrying
	// cannot fix these.
	KindClient Kind = "ClientError"
	// KindUnknown covers anything the other kinds do not.
	KindUnknown Kind = "UnknownError"
)

// Retryable reports whether a failure of this kind may succeed on retry.
func (k Kind) Retryable() bool {
	switch k {
	case KindTimeout, KindNetwork, KindServer:
		return true
	default:
		return false
	}
}

// Error is the single error shape surfaced by the gateway. It normalizes
// timeouts, transport failures and HTTP status failures into one type that
// callers can branch on via Kind.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Method     string
	Endpoint   string
	Attempt    int
	MaxRetries int
	RequestID  string
	Cause      error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s %s: %s", e.Kind, e.Method, e.Endpoint, e.Message)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.MaxRetries > 0 {
		msg = fmt.Sprintf("%s (attempt %d/%d)", msg, e.Attempt+1, e.MaxRetries+1)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches two gateway errors by Kind, so callers can write
// errors.Is(err, &gateway.Error{Kind: gateway.KindTimeout}).
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf extracts the classified kind from err, or KindUnknown when err did
// not come out of the gateway.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}
