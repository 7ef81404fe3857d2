package oxp

import "encoding/json"

// CallContext carries the identity of the user a tool call is executed for.
type CallContext struct {
	UserID string `json:"user_id"`
}

// CallRequest is the payload for executing one tool.
type CallRequest struct {
	// ToolID identifies the tool to execute.
	ToolID string `json:"tool_id"`
	// Context carries the caller identity.
	Context CallContext `json:"context"`
	// Input is the argument mapping, forwarded verbatim.
	Input map[string]any `json:"input"`
}

// CallResponse is the remote result of a tool execution.
type CallResponse struct {
	// Success reports whether the tool executed successfully. When false,
	// Error carries the remote-supplied failure message and Value must not
	// be treated as valid output.
	Success bool `json:"success"`
	// Value is the tool's result value.
	Value json.RawMessage `json:"value,omitempty"`
	// Error is the remote failure message when Success is false.
	Error string `json:"error,omitempty"`
}

// toolItem is one catalog entry as returned by the listing endpoint.
type toolItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// listResponse is the body of the tool listing endpoint.
type listResponse struct {
	Items []toolItem `json:"items"`
}

// AuthorizationRequirement describes one outstanding authorization the
// user must complete before a tool can run.
type AuthorizationRequirement struct {
	AuthorizationURL string `json:"authorization_url,omitempty"`
}

// MissingRequirements lists what a failed call needs before it can succeed.
type MissingRequirements struct {
	Authorization []AuthorizationRequirement `json:"authorization,omitempty"`
}

// ErrorBody is the structured body of a remote API error.
type ErrorBody struct {
	Message             string               `json:"message,omitempty"`
	MissingRequirements *MissingRequirements `json:"missing_requirements,omitempty"`
}

// PendingAuthorization returns the authorization URL when the error body
// reports exactly one outstanding authorization requirement that carries a
// URL. Any other shape (no requirements, multiple entries, missing URL)
// returns false: those are not the authorization-required case.
func (b *ErrorBody) PendingAuthorization() (string, bool) {
	if b == nil || b.MissingRequirements == nil {
		return "", false
	}
	auth := b.MissingRequirements.Authorization
	if len(auth) != 1 {
		return "", false
	}
	if auth[0].AuthorizationURL == "" {
		return "", false
	}
	return auth[0].AuthorizationURL, true
}
