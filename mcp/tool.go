// Package mcp exposes a bridged tool set over the Model Context
// Protocol. A tool.Registry populated from the remote execution
// catalog can be served to MCP clients such as desktop assistants,
// turning the bridge into an MCP tool provider:
//
//	registry := bridge.Registry(selected, userID)
//
//	if err := mcp.ServeStdio(registry); err != nil {
//	    log.Fatal(err)
//	}
//
// Conversion helpers are also provided for the reverse direction, so
// MCP tool definitions can be represented as oxbridge tools.
package mcp

import (
	"encoding/json"
	"strings"

	ai "github.com/harborai/oxbridge"
	"github.com/mark3labs/mcp-go/mcp"
)

// ToMCPTool converts an oxbridge Tool to an MCP Tool. The input schema
// is passed through as the MCP tool's raw schema, exactly as the
// remote catalog delivered it.
func ToMCPTool(t ai.Tool) mcp.Tool {
	return mcp.NewToolWithRawSchema(t.Name, t.Description, t.InputSchema)
}

// ToMCPTools converts a slice of oxbridge Tools to MCP Tools.
func ToMCPTools(tools []ai.Tool) []mcp.Tool {
	result := make([]mcp.Tool, len(tools))
	for i, t := range tools {
		result[i] = ToMCPTool(t)
	}
	return result
}

// FromMCPTool converts an MCP Tool to an oxbridge Tool.
// It extracts the JSON schema from either RawInputSchema or InputSchema.
func FromMCPTool(t mcp.Tool) ai.Tool {
	var schema json.RawMessage

	if len(t.RawInputSchema) > 0 {
		schema = t.RawInputSchema
	} else {
		data, err := json.Marshal(t.InputSchema)
		if err == nil {
			schema = data
		}
	}

	return ai.Tool{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: schema,
	}
}

// FromMCPTools converts a slice of MCP Tools to oxbridge Tools.
func FromMCPTools(tools []mcp.Tool) []ai.Tool {
	result := make([]ai.Tool, len(tools))
	for i, t := range tools {
		result[i] = FromMCPTool(t)
	}
	return result
}

// ToMCPCallToolRequest converts an oxbridge ToolCall to an MCP
// CallToolRequest.
func ToMCPCallToolRequest(call ai.ToolCall) mcp.CallToolRequest {
	var args any
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			// Not valid JSON; pass the string through.
			args = call.Arguments
		}
	}

	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      call.Name,
			Arguments: args,
		},
	}
}

// FromMCPCallToolResult converts an MCP CallToolResult to an oxbridge
// ToolResult. Text content parts are concatenated; structured content
// is appended as JSON.
func FromMCPCallToolResult(callID string, result *mcp.CallToolResult) ai.ToolResult {
	if result == nil {
		return ai.ToolResult{
			ToolCallID: callID,
			Content:    "",
			IsError:    true,
		}
	}

	var textParts []string
	for _, c := range result.Content {
		switch content := c.(type) {
		case mcp.TextContent:
			textParts = append(textParts, content.Text)
		case *mcp.TextContent:
			textParts = append(textParts, content.Text)
		default:
			if data, err := json.Marshal(content); err == nil {
				textParts = append(textParts, string(data))
			}
		}
	}

	if result.StructuredContent != nil {
		if data, err := json.Marshal(result.StructuredContent); err == nil {
			textParts = append(textParts, string(data))
		}
	}

	return ai.ToolResult{
		ToolCallID: callID,
		Content:    strings.Join(textParts, "\n"),
		IsError:    result.IsError,
	}
}

// ToMCPCallToolResult converts an oxbridge ToolResult to an MCP
// CallToolResult.
func ToMCPCallToolResult(result ai.ToolResult) *mcp.CallToolResult {
	if result.IsError {
		return mcp.NewToolResultError(result.Content)
	}
	return mcp.NewToolResultText(result.Content)
}
