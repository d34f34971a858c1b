package tools

import (
	"context"
	"encoding/json"
	"time"

	models "github.com/XiaoConstantine/mcp-go/pkg/model"
	"github.com/go-playground/validator/v10"

	"github.com/XiaoConstantine/checklist-go/pkg/checklist"
	"github.com/XiaoConstantine/checklist-go/pkg/errors"
	"github.com/XiaoConstantine/checklist-go/pkg/logging"
)

// ChecklistToolName is the single tool identifier exposed by this service.
const ChecklistToolName = "generate_checklist"

// ChecklistToolDescription is the natural-language description published by
// tool discovery.
const ChecklistToolDescription = "Convert input text into a structured execution checklist."

// ChecklistArgs is the validated input of one generate_checklist invocation.
type ChecklistArgs struct {
	Text     string  `json:"text" validate:"required"`
	Context  *string `json:"context,omitempty"`
	MaxSteps int     `json:"max_steps,omitempty" validate:"omitempty,min=3,max=12"`
	Audience string  `json:"audience,omitempty" validate:"omitempty,oneof=agent"`
}

var validate = validator.New()

// ChecklistTool generates checklists from free-form task text. It is a
// FuncTool whose wrapped function runs the generation pipeline; Name,
// Description, InputSchema and Call all come from the embedded tool. The
// typed Generate entry point skips the JSON round-trip for callers that
// already hold decoded arguments.
type ChecklistTool struct {
	*FuncTool
	generator *checklist.Generator
}

// NewChecklistTool creates the generate_checklist tool over a generator.
func NewChecklistTool(generator *checklist.Generator) *ChecklistTool {
	t := &ChecklistTool{generator: generator}
	t.FuncTool = NewFuncTool(ChecklistToolName, ChecklistToolDescription, checklistInputSchema(), t.invoke)
	return t
}

// checklistInputSchema describes the generate_checklist parameters.
func checklistInputSchema() models.InputSchema {
	return models.InputSchema{
		Type: "object",
		Properties: map[string]models.ParameterSchema{
			"text": {
				Type:        "string",
				Description: "Source text to convert into checklist steps",
				Required:    true,
			},
			"context": {
				Type:        "string",
				Description: "Optional context for the checklist",
			},
			"max_steps": {
				Type:        "integer",
				Description: "Maximum number of steps (3-12, default 8)",
			},
			"audience": {
				Type:        "string",
				Description: "Audience must be 'agent'",
			},
		},
	}
}

// invoke is the wrapped tool function. The checklist result is rendered as
// JSON text content; validation failures are reported inside the result
// envelope with IsError set, never as a Go error.
func (t *ChecklistTool) invoke(ctx context.Context, args map[string]interface{}) (*models.CallToolResult, error) {
	parsed, err := decodeArgs(args)

	var result *checklist.Result
	if err != nil {
		result = checklist.FailureResult(err, parsed.Context)
	} else {
		result = t.Generate(ctx, parsed)
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, errors.Wrap(err, errors.Unknown, "failed to encode checklist result")
	}

	return &models.CallToolResult{
		Content: []models.Content{
			models.TextContent{
				Type: "text",
				Text: string(payload),
			},
		},
		IsError: result.Meta != nil && result.Meta.State == checklist.StateFailure,
	}, nil
}

// Generate runs the pipeline for already-decoded arguments. It is total:
// every outcome, including rejection, is expressed as a Result.
func (t *ChecklistTool) Generate(ctx context.Context, args ChecklistArgs) *checklist.Result {
	logger := logging.GetLogger()
	start := time.Now()

	if err := validateArgs(args); err != nil {
		logger.Warn(ctx, "Rejected checklist request: %v", err)
		return checklist.FailureResult(err, args.Context)
	}

	maxSteps := args.MaxSteps
	if maxSteps == 0 {
		maxSteps = checklist.DefaultMaxSteps
	}

	steps, err := t.generator.Generate(args.Text, maxSteps)
	if err != nil {
		logger.Warn(ctx, "Rejected checklist request: %v", err)
		return checklist.FailureResult(err, args.Context)
	}

	logger.ToolInvocation(ctx, ChecklistToolName, len(steps), time.Since(start))
	return checklist.SuccessResult(steps, args.Context)
}

// decodeArgs converts loosely-typed tool arguments into ChecklistArgs.
func decodeArgs(args map[string]interface{}) (ChecklistArgs, error) {
	var parsed ChecklistArgs

	raw, err := json.Marshal(args)
	if err != nil {
		return parsed, errors.Wrap(err, errors.InvalidInput, "failed to encode tool arguments")
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return parsed, errors.Wrap(err, errors.InvalidInput, "malformed tool arguments")
	}
	return parsed, nil
}

// validateArgs applies the input contract and maps field violations onto the
// caller-facing failure codes.
func validateArgs(args ChecklistArgs) error {
	if err := validate.Struct(args); err != nil {
		fieldErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.Wrap(err, errors.ValidationFailed, "argument validation failed")
		}
		for _, fe := range fieldErrors {
			switch fe.Field() {
			case "Text":
				return errors.New(errors.EmptyText, "text must be non-empty")
			case "Audience":
				return errors.New(errors.InvalidAudience, "audience must be 'agent'")
			}
		}
		return errors.Wrap(err, errors.ValidationFailed, "argument validation failed")
	}
	return nil
}
