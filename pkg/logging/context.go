package logging

import "context"

type contextKey int

const (
	requestIDKey contextKey = iota
	toolNameKey
)

// WithRequestID annotates the context with the transport request identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID retrieves the request identifier from the context, if set.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// WithToolName annotates the context with the tool being invoked.
func WithToolName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, toolNameKey, name)
}

// GetToolName retrieves the tool name from the context, if set.
func GetToolName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(toolNameKey).(string)
	return name, ok
}
