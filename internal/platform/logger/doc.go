// Package logger configures the process-wide structured JSON logger and
// carries request-scoped loggers through context.Context.
package logger
