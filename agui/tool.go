package agui

import (
	"encoding/json"

	ai "github.com/harborai/oxbridge"
)

// Tool represents a tool definition in the AG-UI protocol. Catalog
// tools are rendered in this shape when listed to frontends.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// FromTool converts a catalog tool to an AG-UI tool definition.
func FromTool(t ai.Tool) Tool {
	return Tool{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.InputSchema,
	}
}

// FromTools converts a slice of catalog tools, preserving order.
func FromTools(tools []ai.Tool) []Tool {
	if len(tools) == 0 {
		return nil
	}

	result := make([]Tool, len(tools))
	for i, t := range tools {
		result[i] = FromTool(t)
	}
	return result
}

// ToTool converts an AG-UI tool definition to a catalog tool.
func (t Tool) ToTool() ai.Tool {
	return ai.Tool{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: t.Parameters,
	}
}

// ToolNames extracts the names from a slice of tools.
func ToolNames(tools []Tool) []string {
	if len(tools) == 0 {
		return nil
	}

	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return names
}
