package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across cleantype.
// Use these constants instead of raw strings to ensure consistency.
const (
	FieldComponent = "component"
	FieldOperation = "operation"

	// Type-name pipeline
	FieldInput   = "input"
	FieldOutput  = "output"
	FieldScheme  = "scheme"
	FieldRule    = "rule"
	FieldTokens  = "tokens"
	FieldDepth   = "depth"
	FieldSuccess = "success"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldLines = "lines"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type decipherFilter struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func newDecipherFilter() *decipherFilter {
//	    return &decipherFilter{
//	        logger: logger.ComponentLogger("decipher"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
