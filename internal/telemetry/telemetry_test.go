package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInit_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	tr, err := Init(context.Background())
	require.NoError(t, err)
	assert.False(t, tr.Enabled())

	called := false
	err = tr.Run(context.Background(), "noop", func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestRun_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tr := NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	require.True(t, tr.Enabled())

	err := tr.Run(context.Background(), "sync", func(ctx context.Context) error {
		Annotate(ctx, Shape(4, 5)...)
		return nil
	}, Count(3))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tr.Run(context.Background(), "grid", func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "sync", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("quickplot.elements", 3))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("quickplot.rows", 4))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	require.NoError(t, tr.Shutdown(context.Background()))
}

func TestRun_NilTracer(t *testing.T) {
	var tr *Tracer
	assert.NoError(t, tr.Run(context.Background(), "x", func(context.Context) error { return nil }))
	assert.NoError(t, tr.Shutdown(context.Background()))
}
