// Package logging defines the structured logger used by rlap and output, and the
// adapters that back it.
//
// These packages never log at Info or above on their own; they emit
// Debug records with key/value fields when a caller passes a Logger through
// an option. The default everywhere is the no-op logger.
package logging

// Logger defines methods for structured logging.
//
// Compatible with zap.SugaredLogger, slog (via NewSlog) and other structured
// loggers. All methods accept alternating key-value pairs.
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, keysAndValues ...any)
}
