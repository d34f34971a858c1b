package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/checklist-go/pkg/checklist"
	"github.com/XiaoConstantine/checklist-go/pkg/config"
	"github.com/XiaoConstantine/checklist-go/pkg/core"
	"github.com/XiaoConstantine/checklist-go/pkg/logging"
	"github.com/XiaoConstantine/checklist-go/pkg/tools"
)

func newTestRouter(t *testing.T, mutate func(*config.Config)) *gin.Engine {
	t.Helper()

	cfg := config.Default()
	cfg.Server.VerificationToken = "verify-token-123"
	if mutate != nil {
		mutate(cfg)
	}

	catalog, err := checklist.CatalogForLocale(cfg.Checklist.Locale)
	require.NoError(t, err)
	generator := checklist.NewGenerator(catalog, cfg.Checklist.GeneratorOptions())

	registry := tools.NewInMemoryToolRegistry()
	require.NoError(t, registry.Register(tools.NewChecklistTool(generator)))

	logger := logging.NewLogger(logging.Config{Severity: logging.ERROR})
	return NewRouter(cfg, registry, logger)
}

func postMCP(t *testing.T, router *gin.Engine, body interface{}) (*httptest.ResponseRecorder, *checklist.Result) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mcp", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	var result checklist.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return rec, &result
}

func TestDiscoveryDocument(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc DiscoveryDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Len(t, doc.Tools, 1)

	tool := doc.Tools[0]
	assert.Equal(t, "generate_checklist", tool.Name)
	assert.NotEmpty(t, tool.Description)

	schema := tool.InputSchema
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"text"}, schema.Required)
	assert.False(t, schema.AdditionalProperties)

	maxSteps := schema.Properties["max_steps"]
	require.NotNil(t, maxSteps.Minimum)
	require.NotNil(t, maxSteps.Maximum)
	assert.Equal(t, 3, *maxSteps.Minimum)
	assert.Equal(t, 12, *maxSteps.Maximum)
	assert.Equal(t, float64(8), maxSteps.Default)

	audience := schema.Properties["audience"]
	assert.Equal(t, []string{"agent"}, audience.Enum)
	assert.Equal(t, "agent", audience.Default)
}

func TestInvokeSuccess(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, result := postMCP(t, router, map[string]interface{}{
		"tool": "generate_checklist",
		"input": map[string]interface{}{
			"text":      "Deploy the API endpoint. Write documentation.",
			"max_steps": 5,
			"audience":  "agent",
			"context":   "release prep",
		},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "checklist", result.Type)
	assert.Equal(t, checklist.StateSuccess, result.Meta.State)
	require.Len(t, result.Steps, 3)
	assert.Equal(t, "1", result.Steps[0].ID)
	assert.Equal(t, "3", result.Steps[2].ID)
	require.NotNil(t, result.Context)
	assert.Equal(t, "release prep", *result.Context)
}

func TestInvokeUnknownTool(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, result := postMCP(t, router, map[string]interface{}{
		"tool":  "bogus_tool",
		"input": map[string]interface{}{"text": "Deploy the api."},
	})

	// Failures keep the success shape and a 200 status.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, checklist.StateFailure, result.Meta.State)
	assert.Equal(t, "unknown_tool", result.Meta.Reason)
	assert.Empty(t, result.Steps)
	assert.NotNil(t, result.Steps)
}

func TestInvokeInvalidAudience(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, result := postMCP(t, router, map[string]interface{}{
		"tool": "generate_checklist",
		"input": map[string]interface{}{
			"text":     "Deploy the api.",
			"audience": "human",
		},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, checklist.StateFailure, result.Meta.State)
	assert.Equal(t, "invalid_audience", result.Meta.Reason)
}

func TestInvokeEmptyText(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, result := postMCP(t, router, map[string]interface{}{
		"tool":  "generate_checklist",
		"input": map[string]interface{}{"text": "   "},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, checklist.StateFailure, result.Meta.State)
	assert.Equal(t, "empty_text", result.Meta.Reason)
	assert.Empty(t, result.Steps)
}

func TestInvokeMalformedBody(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mcp", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result checklist.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, checklist.StateFailure, result.Meta.State)
	assert.Equal(t, "invalid_input", result.Meta.Reason)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestVerifyToken(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/.well-known/openai-api", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	// Plain text, no JSON, no quotes.
	assert.Equal(t, "verify-token-123", rec.Body.String())
	assert.NotContains(t, rec.Header().Get("Content-Type"), "json")
}

func TestVerifyTokenDisabled(t *testing.T) {
	router := newTestRouter(t, func(cfg *config.Config) {
		cfg.Server.VerificationToken = ""
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/.well-known/openai-api", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t, nil)

	// Generated when absent.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	// Echoed when supplied.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "caller-id-7")
	router.ServeHTTP(rec, req)
	assert.Equal(t, "caller-id-7", rec.Header().Get(requestIDHeader))
}

func TestGenericDescriptorFallback(t *testing.T) {
	registry := tools.NewInMemoryToolRegistry()
	require.NoError(t, registry.Register(newStubTool("echo_tool")))

	doc := buildDiscovery(core.ToolRegistry(registry))
	require.Len(t, doc.Tools, 1)
	assert.Equal(t, "echo_tool", doc.Tools[0].Name)
	assert.Equal(t, []string{"value"}, doc.Tools[0].InputSchema.Required)
	assert.False(t, doc.Tools[0].InputSchema.AdditionalProperties)
}
