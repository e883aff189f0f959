package client

import (
	"errors"
	"fmt"
)

// ErrEnvelopeContract reports a response where success was true but no data
// was attached. The envelope contract makes that combination illegal, so it
// is rejected instead of being read as an empty result.
var ErrEnvelopeContract = errors.New("envelope contract violated: success with no data")

// APIError is an application-level failure: the envelope decoded and the
// backend set success=false. Message is the user-facing reason and must be
// presented verbatim.
type APIError struct {
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// TransportError is a connectivity, timeout, or HTTP-level failure raised
// before a valid envelope could be read.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is a malformed or contract-violating response body: broken
// JSON, an unknown enum token, or a success envelope with no data.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsAPIError extracts an application error so callers can show its Message
// verbatim; anything else gets a generic fallback string.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTransport reports whether err is a connectivity or HTTP-level failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
