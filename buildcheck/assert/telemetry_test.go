//go:build unit

package assert

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/LerianStudio/lib-buildcheck/buildcheck/log"
	"github.com/LerianStudio/lib-buildcheck/buildcheck/metrics"
)

func newRecordingTracer(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return provider, recorder
}

func TestFailureRecordsSpanEvent(t *testing.T) {
	resetGlobals(t)
	SetFailureAction(ActionTrap)
	SetLogger(log.NewNop())

	provider, recorder := newRecordingTracer(t)
	ctx, span := provider.Tracer("test").Start(context.Background(), "op")

	checker := New(nil, "wire", "decode")
	trapped(t, func() {
		checker.That(ctx, false, "frame length must fit header", "length", 9000)
	})
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	events := spans[0].Events()
	require.Len(t, events, 2, "assertion event plus recorded error")
	assert.Equal(t, AssertionSpanEventName, events[0].Name)

	attrs := map[string]string{}
	for _, kv := range events[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}

	assert.Equal(t, "That", attrs["assertion.name"])
	assert.Equal(t, "frame length must fit header", attrs["assertion.message"])
	assert.Equal(t, "wire", attrs["assertion.component"])
	assert.Equal(t, "decode", attrs["assertion.operation"])

	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "assertion failed in wire/decode", spans[0].Status().Description)
}

func TestFailureWithoutRecordingSpanIsSafe(t *testing.T) {
	resetGlobals(t)
	SetFailureAction(ActionTrap)
	SetLogger(log.NewNop())

	trapped(t, func() {
		That(context.Background(), false, "no span in context")
	})
}

func TestFailureIncrementsCounter(t *testing.T) {
	resetGlobals(t)
	SetFailureAction(ActionTrap)
	SetLogger(log.NewNop())

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	factory, err := metrics.NewFactoryFromProvider(provider, log.NewNop())
	require.NoError(t, err)
	InitAssertionMetrics(factory)

	checker := New(nil, "codec", "encode")
	trapped(t, func() {
		checker.That(context.Background(), false, "varint overflow")
	})

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	m := rm.ScopeMetrics[0].Metrics[0]
	assert.Equal(t, "assertion_failed_total", m.Name)

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.EqualValues(t, 1, sum.DataPoints[0].Value)

	component, ok := sum.DataPoints[0].Attributes.Value(attribute.Key("component"))
	require.True(t, ok)
	assert.Equal(t, "codec", component.AsString())
}

func TestMetricsSingletonLifecycle(t *testing.T) {
	resetGlobals(t)

	assert.Nil(t, GetAssertionMetrics())

	InitAssertionMetrics(nil)
	assert.Nil(t, GetAssertionMetrics(), "nil factory must be rejected")

	factory := metrics.NewNopFactory()
	InitAssertionMetrics(factory)
	first := GetAssertionMetrics()
	require.NotNil(t, first)

	InitAssertionMetrics(metrics.NewNopFactory())
	assert.Same(t, first, GetAssertionMetrics(), "second init must be a no-op")

	ResetAssertionMetrics()
	assert.Nil(t, GetAssertionMetrics())
}

func TestRecordAssertionFailedNilReceiver(t *testing.T) {
	t.Parallel()

	var am *AssertionMetrics

	assert.NotPanics(t, func() {
		am.RecordAssertionFailed(context.Background(), "c", "o", "That")
	})
}
