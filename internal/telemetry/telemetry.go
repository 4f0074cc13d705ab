// Package telemetry traces CLI operations over OTLP/HTTP when
// OTEL_EXPORTER_OTLP_ENDPOINT is set, and does nothing otherwise.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	EndpointEnv    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	instrumentation = "quickplot/cmd"
)

// Tracer starts spans for CLI operations.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Init creates a Tracer exporting to the OTLP endpoint in the environment.
// Without an endpoint the Tracer is a no-op.
func Init(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return &Tracer{tracer: noop.NewTracerProvider().Tracer(instrumentation)}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = "quickplot"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewWithProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewWithProvider wraps an existing provider. Shutdown shuts it down.
func NewWithProvider(p *sdktrace.TracerProvider) *Tracer {
	return &Tracer{provider: p, tracer: p.Tracer(instrumentation)}
}

// Enabled reports whether spans are exported.
func (t *Tracer) Enabled() bool {
	return t != nil && t.provider != nil
}

// Run calls fn inside a span named name. An error from fn is recorded on
// the span and returned unchanged.
func (t *Tracer) Run(ctx context.Context, name string, fn func(context.Context) error, attrs ...attribute.KeyValue) error {
	if t == nil {
		return fn(ctx)
	}
	ctx, span := t.tracer.Start(ctx, name, oteltrace.WithAttributes(attrs...))
	defer span.End()

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Annotate adds attributes to the span in ctx, if any.
func Annotate(ctx context.Context, attrs ...attribute.KeyValue) {
	oteltrace.SpanFromContext(ctx).SetAttributes(attrs...)
}

// Shape describes a 2-D array.
func Shape(rows, cols int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("quickplot.rows", rows),
		attribute.Int("quickplot.cols", cols),
	}
}

// Count is the number of elements an operation works on.
func Count(n int) attribute.KeyValue {
	return attribute.Int("quickplot.elements", n)
}

// Shutdown flushes and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
