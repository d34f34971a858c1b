package server

import (
	"context"

	models "github.com/XiaoConstantine/mcp-go/pkg/model"
)

// stubTool is a minimal core.Tool for discovery tests.
type stubTool struct {
	name string
}

func newStubTool(name string) *stubTool {
	return &stubTool{name: name}
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "A stub tool" }

func (s *stubTool) InputSchema() models.InputSchema {
	return models.InputSchema{
		Type: "object",
		Properties: map[string]models.ParameterSchema{
			"value": {Type: "string", Description: "Value to echo", Required: true},
		},
	}
}

func (s *stubTool) Call(ctx context.Context, args map[string]interface{}) (*models.CallToolResult, error) {
	return &models.CallToolResult{
		Content: []models.Content{models.TextContent{Type: "text", Text: "{}"}},
	}, nil
}
