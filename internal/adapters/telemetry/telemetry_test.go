package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/cookbook/internal/adapters/config"
	"go.trai.ch/cookbook/internal/adapters/telemetry"
)

func TestOTelTracer_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := telemetry.NewProviderWithProcessor("test", recorder)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	tracer := provider.Tracer()
	_, span := tracer.Start(context.Background(), "summarize")
	span.SetAttribute("recipe", "Pancake")
	span.SetAttribute("cook_time", 14)
	span.SetAttribute("cached", false)
	span.SetAttribute("ingredients", []string{"Egg", "Flour"})
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("count", int64(2))
	span.SetAttribute("other", struct{ N int }{N: 1})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "summarize", ended[0].Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "Pancake", attrs["recipe"].AsString())
	assert.Equal(t, int64(14), attrs["cook_time"].AsInt64())
	assert.False(t, attrs["cached"].AsBool())
	assert.Equal(t, []string{"Egg", "Flour"}, attrs["ingredients"].AsStringSlice())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 1e-9)
	assert.Equal(t, int64(2), attrs["count"].AsInt64())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := telemetry.NewProviderWithProcessor("test", recorder)

	_, span := provider.Tracer().Start(context.Background(), "add_entry")
	span.RecordError(nil)
	span.RecordError(errors.New("duplicate"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "duplicate", ended[0].Status().Description)
	assert.Len(t, ended[0].Events(), 1)
}

func TestOTelTracer_NestsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := telemetry.NewProviderWithProcessor("test", recorder)
	tracer := provider.Tracer()

	ctx, parent := tracer.Start(context.Background(), "seed")
	_, child := tracer.Start(ctx, "add_entry")
	child.End()
	parent.End()

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := telemetry.NewProvider(config.TelemetrySettings{}, nil)
	require.NoError(t, err)

	_, span := provider.Tracer().Start(context.Background(), "noop")
	span.SetAttribute("k", "v")
	span.End()

	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_Stdout(t *testing.T) {
	var buf bytes.Buffer
	provider, err := telemetry.NewProvider(config.TelemetrySettings{Stdout: true, ServiceName: "kitchen"}, &buf)
	require.NoError(t, err)

	_, span := provider.Tracer().Start(context.Background(), "summarize")
	span.End()
	require.NoError(t, provider.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"Name":"summarize"`)
	assert.Contains(t, buf.String(), "kitchen")
}
