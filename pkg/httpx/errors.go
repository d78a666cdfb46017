package httpx

import (
	"errors"
	"fmt"
)

// UnreachableMessage is the user-facing fallback for transport failures,
// shown whenever the backend is down or returns something unparseable.
const UnreachableMessage = "Something went wrong. Check that the backend is running, reachable and returns valid JSON."

// APIError is a non-2xx response carrying the backend's error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// TransportError covers network failures and malformed responses.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// UserMessage converts an error from the client into the string shown to the
// user: the backend's own message when there is one, the generic
// backend-unreachable message otherwise.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return UnreachableMessage
}
