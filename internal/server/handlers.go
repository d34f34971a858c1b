package server

import (
	"net/http"

	models "github.com/XiaoConstantine/mcp-go/pkg/model"
	"github.com/gin-gonic/gin"

	"github.com/XiaoConstantine/checklist-go/pkg/checklist"
	"github.com/XiaoConstantine/checklist-go/pkg/core"
	"github.com/XiaoConstantine/checklist-go/pkg/errors"
	"github.com/XiaoConstantine/checklist-go/pkg/logging"
	"github.com/XiaoConstantine/checklist-go/pkg/tools"
)

// MCPRequest is the invocation envelope accepted on POST /mcp.
type MCPRequest struct {
	Tool  string              `json:"tool"`
	Input tools.ChecklistArgs `json:"input"`
}

// Handler carries the dependencies of the HTTP endpoints.
type Handler struct {
	registry    core.ToolRegistry
	verifyToken string
}

// NewHandler creates the endpoint handler set.
func NewHandler(registry core.ToolRegistry, verifyToken string) *Handler {
	return &Handler{
		registry:    registry,
		verifyToken: verifyToken,
	}
}

// Tools serves the static tool-discovery document.
func (h *Handler) Tools(c *gin.Context) {
	c.JSON(http.StatusOK, buildDiscovery(h.registry))
}

// Invoke executes one tool call. Validation failures are reported inside the
// result envelope with an explicit failure state; the HTTP status stays 200
// so callers can distinguish "validation rejected" from transport errors.
func (h *Handler) Invoke(c *gin.Context) {
	var req MCPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		wrapped := errors.Wrap(err, errors.InvalidInput, "malformed request body")
		c.JSON(http.StatusOK, checklist.FailureResult(wrapped, nil))
		return
	}

	ctx := logging.WithToolName(c.Request.Context(), req.Tool)

	// Caller-imposed deadlines live at the transport; the pipeline itself has
	// no suspension points.
	if err := errors.CheckContext(ctx, "tool invocation"); err != nil {
		c.JSON(http.StatusOK, checklist.FailureResult(err, req.Input.Context))
		return
	}

	tool, err := h.registry.Get(req.Tool)
	if err != nil {
		logging.GetLogger().Warn(ctx, "Unknown tool requested: %s", req.Tool)
		c.JSON(http.StatusOK, checklist.FailureResult(err, req.Input.Context))
		return
	}

	if ct, ok := tool.(*tools.ChecklistTool); ok {
		c.JSON(http.StatusOK, ct.Generate(ctx, req.Input))
		return
	}

	// Generic dispatch for any other registered tool: the result's text
	// content is already a JSON document.
	result, err := tool.Call(ctx, map[string]interface{}{
		"text":      req.Input.Text,
		"context":   req.Input.Context,
		"max_steps": req.Input.MaxSteps,
		"audience":  req.Input.Audience,
	})
	if err != nil {
		c.JSON(http.StatusOK, checklist.FailureResult(err, req.Input.Context))
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(textContent(result)))
}

// textContent extracts the first text payload from a tool result.
func textContent(result *models.CallToolResult) string {
	for _, content := range result.Content {
		if tc, ok := content.(models.TextContent); ok {
			return tc.Text
		}
	}
	return "{}"
}

// Health reports process liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Verify serves the domain-ownership token as plain text, no JSON, no quotes.
func (h *Handler) Verify(c *gin.Context) {
	if h.verifyToken == "" {
		c.Status(http.StatusNotFound)
		return
	}
	c.String(http.StatusOK, h.verifyToken)
}
