package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for run identifiers.
	FieldRunID = "run_id"
	// FieldTool names the assetkit tool (strip, vocab) that produced a record.
	FieldTool = "tool"
	// FieldFile is the standardized key for the asset file a record is about.
	FieldFile = "file"
)

type contextKey int

const toolKey contextKey = iota

// WithTool tags ctx with the tool name picked up by WithContext.
func WithTool(ctx context.Context, tool string) context.Context {
	return context.WithValue(ctx, toolKey, tool)
}

// ToolFromContext returns the tool name stored by WithTool.
func ToolFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	tool, ok := ctx.Value(toolKey).(string)
	return tool, ok && tool != ""
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if tool, ok := ToolFromContext(ctx); ok {
		return logger.With(String(FieldTool, tool))
	}
	return logger
}
