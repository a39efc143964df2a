package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction allows for different logging implementations (logrus, zap, etc.)
// while maintaining a consistent interface.
//
// Example usage:
//
//	logger.Info("Searching posts", map[string]interface{}{
//		"topic": "kubernetes",
//		"limit": 6,
//	})
//
//	logger.Error("Search service unavailable", map[string]interface{}{
//		"topic": "kubernetes",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	// Debug messages are typically used for detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	// Info messages are used for general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warning messages indicate potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	// Error messages indicate failures that need attention.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards everything. Services fall back to it when no Logger is injected.
type NopLogger struct{}

func (NopLogger) Debug(msg string, fields map[string]interface{}) {}
func (NopLogger) Info(msg string, fields map[string]interface{})  {}
func (NopLogger) Warn(msg string, fields map[string]interface{})  {}
func (NopLogger) Error(msg string, fields map[string]interface{}) {}
