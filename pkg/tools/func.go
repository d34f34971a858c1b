package tools

import (
	"context"
	"fmt"

	models "github.com/XiaoConstantine/mcp-go/pkg/model"
)

// ToolFunc represents a function that can be called as a tool.
type ToolFunc func(ctx context.Context, args map[string]interface{}) (*models.CallToolResult, error)

// FuncTool wraps a Go function as a Tool implementation.
type FuncTool struct {
	name        string
	description string
	schema      models.InputSchema
	fn          ToolFunc
}

// NewFuncTool creates a new function-based tool.
func NewFuncTool(name, description string, schema models.InputSchema, fn ToolFunc) *FuncTool {
	return &FuncTool{
		name:        name,
		description: description,
		schema:      schema,
		fn:          fn,
	}
}

// Name returns the tool's identifier.
func (t *FuncTool) Name() string {
	return t.name
}

// Description returns human-readable explanation of the tool.
func (t *FuncTool) Description() string {
	return t.description
}

// InputSchema returns the expected parameter structure.
func (t *FuncTool) InputSchema() models.InputSchema {
	return t.schema
}

// Call executes the wrapped function with the provided arguments.
func (t *FuncTool) Call(ctx context.Context, args map[string]interface{}) (*models.CallToolResult, error) {
	return t.fn(ctx, args)
}

// Validate checks if the parameters match the expected schema.
func (t *FuncTool) Validate(params map[string]interface{}) error {
	for name, param := range t.schema.Properties {
		if param.Required {
			if _, exists := params[name]; !exists {
				return fmt.Errorf("missing required parameter: %s", name)
			}
		}
	}

	return nil
}
