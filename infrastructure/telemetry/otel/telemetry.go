// ABOUTME: OpenTelemetry implementation of the Telemetry interface
// ABOUTME: Bridges spans, breadcrumbs, and exceptions onto the otel trace API

package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"feedscout-api/core/interfaces"
)

// OtelTelemetry implements interfaces.Telemetry on the otel trace API.
// It only uses the API surface; exporter and provider wiring belong to
// the hosting process. Without a configured provider every call is a
// cheap no-op, which keeps the engine's behavior identical either way.
type OtelTelemetry struct {
	tracer trace.Tracer
}

// NewOtelTelemetry creates the adapter using the named tracer from the
// globally registered provider.
func NewOtelTelemetry(name string) *OtelTelemetry {
	if name == "" {
		name = "feedscout-api"
	}
	return &OtelTelemetry{
		tracer: otel.Tracer(name),
	}
}

// StartSpan opens an otel span carrying the given attributes.
func (t *OtelTelemetry) StartSpan(ctx context.Context, name string, attrs map[string]interface{}) (context.Context, interfaces.Span) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(toAttributes(attrs)...))
	return ctx, otelSpan{span: span}
}

// AddBreadcrumb records an event on the span in the context, if any.
func (t *OtelTelemetry) AddBreadcrumb(ctx context.Context, message string, data map[string]interface{}) {
	trace.SpanFromContext(ctx).AddEvent(message, trace.WithAttributes(toAttributes(data)...))
}

// CaptureException records the error on the current span and marks it
// as failed.
func (t *OtelTelemetry) CaptureException(ctx context.Context, err error, data map[string]interface{}) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(err, trace.WithAttributes(toAttributes(data)...))
	span.SetStatus(codes.Error, err.Error())
}

type otelSpan struct {
	span trace.Span
}

func (s otelSpan) End() {
	s.span.End()
}

func toAttributes(data map[string]interface{}) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case string:
			attrs = append(attrs, attribute.String(key, v))
		case bool:
			attrs = append(attrs, attribute.Bool(key, v))
		case int:
			attrs = append(attrs, attribute.Int(key, v))
		case int64:
			attrs = append(attrs, attribute.Int64(key, v))
		case float64:
			attrs = append(attrs, attribute.Float64(key, v))
		default:
			attrs = append(attrs, attribute.String(key, fmt.Sprintf("%v", v)))
		}
	}
	return attrs
}
