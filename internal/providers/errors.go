package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable is returned when no player source is configured.
	ErrProviderUnavailable = errors.New("player provider unavailable")
	// ErrMalformedResponse marks a payload that is empty or lacks the players collection.
	ErrMalformedResponse = errors.New("invalid response format")
)

// networkFailureMessage is the message carried by every transport-level failure.
const networkFailureMessage = "Failed to fetch"

// NetworkError captures a transport failure: the request never produced a response.
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	return networkFailureMessage
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError captures a non-success response from the upstream API.
type HTTPError struct {
	Provider   string
	Status     int
	StatusText string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// AsHTTPError attempts to unwrap an error into an HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}
