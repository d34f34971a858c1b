// Package checklistgo provides an MCP-style tool service that converts
// free-form task descriptions into bounded, ordered execution checklists.
//
// The generation core lives in pkg/checklist; pkg/tools exposes it as the
// generate_checklist tool, and internal/server binds the tool to HTTP with
// discovery, health and domain-verification endpoints.
package checklistgo
