package directions

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// FailureKind labels the transport-level failure categories the provider
// distinguishes when a directions request cannot complete.
type FailureKind string

const (
	KindHTTPStatus FailureKind = "http_status"
	KindConnection FailureKind = "connection"
	KindTimeout    FailureKind = "timeout"
	KindOther      FailureKind = "other"
)

// TransportError wraps any failure to complete the HTTP exchange with the
// directions service. Application-level routing errors (a valid response
// with a non-zero status code) are not transport errors.
type TransportError struct {
	Kind FailureKind
	Err  error
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("HTTP error occurred: %v", e.Err)
	case KindConnection:
		return fmt.Sprintf("Connection error: %v", e.Err)
	case KindTimeout:
		return fmt.Sprintf("Request timed out: %v", e.Err)
	}
	return fmt.Sprintf("An error occurred: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// classifyTransport buckets a request error into a FailureKind.
// Timeouts are checked before connection errors: a dial timeout satisfies
// both net.Error and *net.OpError and must report as a timeout.
func classifyTransport(err error) *TransportError {
	var he *httpStatusError
	if errors.As(err, &he) {
		return &TransportError{Kind: KindHTTPStatus, Err: err}
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &TransportError{Kind: KindTimeout, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Kind: KindTimeout, Err: err}
	}

	var oe *net.OpError
	if errors.As(err, &oe) {
		return &TransportError{Kind: KindConnection, Err: err}
	}
	var de *net.DNSError
	if errors.As(err, &de) {
		return &TransportError{Kind: KindConnection, Err: err}
	}

	return &TransportError{Kind: KindOther, Err: err}
}
