package domain

import "fmt"

// UpstreamError is a non-200 response from the Gemini API. Message carries the
// upstream error message when one could be extracted, otherwise a generic
// "API Error <status>" string.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// TransportError is a network-level failure reaching the upstream: connection
// refused, DNS failure, timeout. No HTTP response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
