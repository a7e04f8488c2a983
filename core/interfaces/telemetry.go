package interfaces

import "context"

// Telemetry defines the optional tracing hooks the engine emits into.
// Every implementation must be safe for concurrent use. Components accept
// a Telemetry and never check it for nil; wire NoopTelemetry when tracing
// is disabled. The engine behaves identically with or without a real
// backend.
type Telemetry interface {
	// StartSpan opens a span covering one unit of work. The returned
	// context carries the span for nesting; callers must End the span.
	StartSpan(ctx context.Context, name string, attrs map[string]interface{}) (context.Context, Span)

	// AddBreadcrumb records a low-cost trail event on the current span,
	// such as a discovery service being consulted.
	AddBreadcrumb(ctx context.Context, message string, data map[string]interface{})

	// CaptureException reports an error to the telemetry backend.
	CaptureException(ctx context.Context, err error, data map[string]interface{})
}

// Span is an in-flight telemetry span.
type Span interface {
	// End closes the span.
	End()
}

// NoopTelemetry discards everything. It is the default when no telemetry
// backend is configured.
type NoopTelemetry struct{}

// StartSpan returns the context unchanged and a span whose End does nothing.
func (NoopTelemetry) StartSpan(ctx context.Context, name string, attrs map[string]interface{}) (context.Context, Span) {
	return ctx, noopSpan{}
}

// AddBreadcrumb does nothing.
func (NoopTelemetry) AddBreadcrumb(ctx context.Context, message string, data map[string]interface{}) {
}

// CaptureException does nothing.
func (NoopTelemetry) CaptureException(ctx context.Context, err error, data map[string]interface{}) {
}

type noopSpan struct{}

func (noopSpan) End() {}
