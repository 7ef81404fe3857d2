package oxp

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned when neither OXP_BEARER_TOKEN nor
// OXP_API_KEY is available.
var ErrMissingCredentials = errors.New("oxp: missing credentials (set OXP_BEARER_TOKEN or OXP_API_KEY)")

// StatusError is a remote API-level error: the service answered with a
// non-success status code. Body holds the decoded structured error body
// when one was present.
type StatusError struct {
	StatusCode int
	Status     string
	Body       *ErrorBody
	Raw        []byte
}

// Error returns a formatted message including the HTTP status and, when
// available, the remote-supplied message.
func (e *StatusError) Error() string {
	if e.Body != nil && e.Body.Message != "" {
		return fmt.Sprintf("oxp: %s: %s", e.Status, e.Body.Message)
	}
	return fmt.Sprintf("oxp: %s", e.Status)
}
