package oxbridge

import "encoding/json"

// Tool describes one remotely executable action from the OXP catalog.
// Tools are immutable once fetched; consumers treat them as read-only.
type Tool struct {
	// Name is the unique identifier of the tool (e.g. "Google_SendEmail").
	Name string
	// Description explains what the tool does (helps the model decide when to use it).
	Description string
	// InputSchema is a JSON Schema object describing the accepted arguments.
	// The schema is supplied by the remote service and passed through verbatim.
	InputSchema json.RawMessage
}

// ToolCall represents a request from the model to invoke a tool.
type ToolCall struct {
	// ID is a unique identifier for this tool call (used to match results).
	ID string `json:"id"`
	// Name is the name of the tool to invoke.
	Name string `json:"name"`
	// Arguments is a JSON string containing the arguments to pass.
	Arguments string `json:"arguments"`
}

// ToolResult represents the result of executing a tool call.
type ToolResult struct {
	// ToolCallID matches the ID from the corresponding ToolCall.
	ToolCallID string `json:"toolCallId"`
	// Content is the result content to return to the model.
	Content string `json:"content"`
	// IsError indicates if the result represents an error.
	IsError bool `json:"isError,omitempty"`
}
