package gateway

import "fmt"

// TransportError signals the gateway could not be reached or answered
// with something unreadable. The original cause is kept for logging; the
// message shown to users stays generic.
type TransportError struct {
	Op    string
	Cause error
}

func (e TransportError) Error() string {
	return "Network request failed. Please check your connection and try again."
}

func (e TransportError) Unwrap() error {
	return e.Cause
}

// BusinessRuleError signals the gateway answered success=false with a
// known message, e.g. "Account does not exist.".
type BusinessRuleError struct {
	Op      string
	Message string
}

func (e BusinessRuleError) Error() string {
	if e.Message == "" {
		return "Request failed. Please try again."
	}
	return e.Message
}

// wrapTransport builds a TransportError around a low-level failure.
func wrapTransport(op string, cause error) error {
	return TransportError{Op: op, Cause: fmt.Errorf("%s: %w", op, cause)}
}
