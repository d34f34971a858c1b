package server

import (
	"sort"

	"github.com/XiaoConstantine/checklist-go/pkg/checklist"
	"github.com/XiaoConstantine/checklist-go/pkg/core"
	"github.com/XiaoConstantine/checklist-go/pkg/tools"
)

// DiscoveryDocument is the static tool-discovery payload served on GET /mcp.
type DiscoveryDocument struct {
	Tools []ToolDescriptor `json:"tools"`
}

// ToolDescriptor describes one tool and its input contract.
type ToolDescriptor struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	InputSchema JSONSchema `json:"input_schema"`
}

// JSONSchema is the subset of JSON Schema needed to describe tool inputs.
type JSONSchema struct {
	Type                 string                    `json:"type"`
	Properties           map[string]SchemaProperty `json:"properties"`
	Required             []string                  `json:"required"`
	AdditionalProperties bool                      `json:"additionalProperties"`
}

// SchemaProperty describes a single input parameter.
type SchemaProperty struct {
	Type        string      `json:"type"`
	Description string      `json:"description,omitempty"`
	Enum        []string    `json:"enum,omitempty"`
	Default     interface{} `json:"default,omitempty"`
	Minimum     *int        `json:"minimum,omitempty"`
	Maximum     *int        `json:"maximum,omitempty"`
}

// buildDiscovery assembles the discovery document for all registered tools.
// mcp-go's schema type cannot carry bounds, enums or defaults, so the
// checklist tool gets its full schema spelled out here; any other tool falls
// back to a plain rendering of its InputSchema.
func buildDiscovery(registry core.ToolRegistry) DiscoveryDocument {
	doc := DiscoveryDocument{Tools: []ToolDescriptor{}}

	for _, tool := range registry.List() {
		if tool.Name() == tools.ChecklistToolName {
			doc.Tools = append(doc.Tools, checklistDescriptor(tool))
			continue
		}
		doc.Tools = append(doc.Tools, genericDescriptor(tool))
	}

	return doc
}

func checklistDescriptor(tool core.Tool) ToolDescriptor {
	minSteps := checklist.MinSteps
	maxSteps := checklist.MaxSteps

	return ToolDescriptor{
		Name:        tool.Name(),
		Description: tool.Description(),
		InputSchema: JSONSchema{
			Type: "object",
			Properties: map[string]SchemaProperty{
				"text": {
					Type:        "string",
					Description: "Source text to convert into checklist steps",
				},
				"context": {
					Type:        "string",
					Description: "Optional context",
				},
				"audience": {
					Type:    "string",
					Enum:    []string{"agent"},
					Default: "agent",
				},
				"max_steps": {
					Type:    "integer",
					Minimum: &minSteps,
					Maximum: &maxSteps,
					Default: checklist.DefaultMaxSteps,
				},
			},
			Required:             []string{"text"},
			AdditionalProperties: false,
		},
	}
}

func genericDescriptor(tool core.Tool) ToolDescriptor {
	schema := tool.InputSchema()

	properties := make(map[string]SchemaProperty, len(schema.Properties))
	required := []string{}
	for name, param := range schema.Properties {
		properties[name] = SchemaProperty{
			Type:        param.Type,
			Description: param.Description,
		}
		if param.Required {
			required = append(required, name)
		}
	}
	sort.Strings(required)

	return ToolDescriptor{
		Name:        tool.Name(),
		Description: tool.Description(),
		InputSchema: JSONSchema{
			Type:                 "object",
			Properties:           properties,
			Required:             required,
			AdditionalProperties: false,
		},
	}
}
