package providers

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	msgUnreachable   = "Unable to connect to server"
	msgServerError   = "Server error"
	msgInternalError = "Internal server error"
)

// Failure is the uniform shape every fetch error is reduced to.
type Failure struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (f Failure) Error() string {
	return fmt.Sprintf("%d: %s", f.Status, f.Message)
}

// AsFailure attempts to unwrap an error into a Failure.
func AsFailure(err error) (Failure, bool) {
	var f Failure
	if errors.As(err, &f) {
		return f, true
	}
	return Failure{}, false
}

// NormalizeError maps any error to a Failure. It never fails: transport
// errors become 503, HTTP errors keep their status and reason, everything
// else becomes 500 with the error text.
func NormalizeError(err error) Failure {
	if err == nil {
		return Failure{Status: http.StatusInternalServerError, Message: msgInternalError}
	}
	if f, ok := AsFailure(err); ok {
		return f
	}
	if _, ok := AsNetworkError(err); ok {
		return Failure{Status: http.StatusServiceUnavailable, Message: msgUnreachable}
	}
	if httpErr, ok := AsHTTPError(err); ok && httpErr.Status != 0 {
		msg := httpErr.StatusText
		if msg == "" {
			msg = msgServerError
		}
		return Failure{Status: httpErr.Status, Message: msg}
	}

	msg := err.Error()
	if msg == "" {
		msg = msgInternalError
	}
	return Failure{Status: http.StatusInternalServerError, Message: msg}
}
