package yalogger

import (
	"github.com/google/uuid"
)

// Config defines the configuration options for the logger.
//
// BaseLoggerType: The type of logger to use (e.g., Logrus).
// Level: The minimum log level to output (e.g., Info).
// FullTimestamp: Whether to include the full timestamp in log messages.
// DisableTimestamp: Whether to disable timestamps in log messages.
// TimestampFormat: The format to use for timestamps in log messages.
type Config struct {
	BaseLoggerType   BaseLoggerType
	Level            Level
	FullTimestamp    bool
	DisableTimestamp bool
	TimestampFormat  string
}

// BaseLogger is an interface for creating new Logger instances.
type BaseLogger interface {
	// NewLogger creates a new Logger instance from the base logger.
	NewLogger() Logger
}

// Logger defines a structured logging interface with support for multiple
// log levels, formatting, and context-aware logging via key-value fields.
type Logger interface {
	// Trace logs a message at the Trace level (very low-level debugging).
	//
	// Example usage:
	//
	//   logger.Trace("Entered handler function")
	Trace(msg string)

	// Tracef logs a formatted message at the Trace level.
	Tracef(format string, args ...any)

	// Debug logs a message at the Debug level.
	//
	// Example usage:
	//
	//   logger.Debug("Marker set created")
	Debug(msg string)

	// Debugf logs a formatted message at the Debug level.
	Debugf(format string, args ...any)

	// Info logs a message at the Info level.
	// Used for general operational entries about what's happening inside
	// the application.
	//
	// Example usage:
	//
	//   logger.Info("Application started")
	Info(msg string)

	// Infof logs a formatted message at the Info level.
	Infof(format string, args ...any)

	// Warn logs a message at the Warn level.
	Warn(msg string)

	// Warnf logs a formatted message at the Warn level.
	Warnf(format string, args ...any)

	// Error logs a message at the Error level.
	// Used to indicate a failure that should be investigated.
	//
	// Example usage:
	//
	//   logger.Error("Resource lookup failed")
	Error(msg string)

	// Errorf logs a formatted message at the Error level.
	Errorf(format string, args ...any)

	// Fatal logs a message at the Fatal level and terminates the process.
	Fatal(msg string)

	// Fatalf logs a formatted message at the Fatal level and terminates
	// the process.
	Fatalf(format string, args ...any)

	// WithField returns a logger instance with a single field added to the
	// context.
	//
	// Example usage:
	//
	//   logger.WithField("schedule", "update")
	WithField(key string, value any) Logger

	// WithFields returns a logger instance with multiple fields added to
	// the context.
	//
	// Example usage:
	//
	//   logger.WithFields(map[string]any{"schedule": "update", "system": "spawn"})
	WithFields(fields map[string]any) Logger

	// WithRequestUUID returns a logger with a UUID request ID in the
	// context. Useful for correlating log lines of one logical operation.
	//
	// Example usage:
	//
	//   logger.WithRequestUUID(uuid.New())
	WithRequestUUID(id uuid.UUID) Logger

	// WithRandomRequestID returns a logger with a randomly generated
	// request ID. Useful when no external ID is available.
	WithRandomRequestID() Logger

	// GetFields returns the current log context fields as a map.
	GetFields() map[string]any

	// GetField returns the value of a field from the current log context.
	//
	// Example usage:
	//
	//   schedule, ok := logger.GetField("schedule").(string)
	//   if !ok {
	//       // Handle type assertion error
	//   }
	GetField(key string) any
}
