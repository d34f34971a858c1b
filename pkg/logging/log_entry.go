package logging

// LogEntry represents a structured log record with fields particularly
// relevant to tool invocations.
type LogEntry struct {
	// Standard fields
	Time     int64
	Severity Severity
	Message  string
	File     string
	Line     int
	Function string

	// Tool invocation fields
	RequestID string // Transport-assigned request identifier
	ToolName  string // Name of the tool being invoked
	Latency   int64  // Operation duration in milliseconds

	// General structured data
	Fields map[string]interface{}
}
