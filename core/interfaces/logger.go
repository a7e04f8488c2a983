package interfaces

// Logger defines the interface for structured logging.
// Fields carry request-scoped context such as URLs, service names, and
// durations alongside the message.
type Logger interface {
	// Debug logs fine-grained diagnostic information.
	Debug(msg string, fields map[string]interface{})

	// Info logs normal operational events.
	Info(msg string, fields map[string]interface{})

	// Warn logs recoverable problems, such as a discovery service
	// failing while others can still run.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that abort an operation.
	Error(msg string, fields map[string]interface{})
}
