package api

import (
	"errors"
	"fmt"
)

// TransportError is the single error channel for all remote failures:
// network errors, timeouts, and non-2xx responses. Callers treat every
// TransportError uniformly; there is no partial-success interpretation.
type TransportError struct {
	Op         string // the remote operation that failed, e.g. "respond"
	StatusCode int    // HTTP status, or 0 for network-level failures
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: server returned %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// retryable reports whether a retry could plausibly succeed: network
// failures and 5xx responses, but never 4xx.
func (e *TransportError) retryable() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
