package agui

import (
	"encoding/json"
	"errors"

	"github.com/harborai/oxbridge/interrupt"
)

// ErrResponseNotAllowed is returned when the frontend sends a response
// other than an acceptance. Authorization interrupts only permit
// accepting; ignore, edit, and free-form responses are rejected.
var ErrResponseNotAllowed = errors.New("agui: only accept responses are allowed for authorization interrupts")

// AcceptInput represents an acceptance from the AG-UI frontend. This
// corresponds to a user action on an authorization tool call, after
// the user has completed the authorization flow in the browser.
type AcceptInput struct {
	InterruptID string `json:"interruptId"`
	Accepted    bool   `json:"accepted"`
}

// ParseAcceptInput parses an acceptance from JSON.
func ParseAcceptInput(data []byte) (*AcceptInput, error) {
	var input AcceptInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, err
	}
	return &input, nil
}

// HandleAccept routes an acceptance to the broker, resuming the
// suspended tool call. Non-accept responses are rejected with
// ErrResponseNotAllowed.
func HandleAccept(broker *interrupt.Broker, input *AcceptInput) error {
	if !input.Accepted {
		return ErrResponseNotAllowed
	}
	return broker.Accept(input.InterruptID)
}

// HandleAcceptJSON processes a JSON-encoded acceptance.
func HandleAcceptJSON(broker *interrupt.Broker, data []byte) error {
	input, err := ParseAcceptInput(data)
	if err != nil {
		return err
	}
	return HandleAccept(broker, input)
}
