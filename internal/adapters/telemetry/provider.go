// Package telemetry implements ports.Tracer with OpenTelemetry.
package telemetry

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/cookbook/internal/adapters/config"
	"go.trai.ch/zerr"
)

// DefaultServiceName names the instrumentation when settings leave it empty.
const DefaultServiceName = "cookbook"

// Provider owns the tracer provider and flushes it on shutdown.
type Provider struct {
	sdk    *sdktrace.TracerProvider
	tracer trace.Tracer
}

// NewProvider builds a provider from settings. Spans are exported to w as JSON when
// settings.Stdout is set; otherwise tracing is a no-op.
func NewProvider(settings config.TelemetrySettings, w io.Writer) (*Provider, error) {
	name := settings.ServiceName
	if name == "" {
		name = DefaultServiceName
	}

	if !settings.Stdout {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(name)}, nil
	}

	if w == nil {
		w = os.Stdout
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create stdout span exporter")
	}

	return NewProviderWithProcessor(name, sdktrace.NewBatchSpanProcessor(exporter)), nil
}

// NewProviderWithProcessor builds an SDK provider that hands finished spans to processor.
func NewProviderWithProcessor(name string, processor sdktrace.SpanProcessor) *Provider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", name))),
		sdktrace.WithSpanProcessor(processor),
	)
	return &Provider{sdk: tp, tracer: tp.Tracer(name)}
}

// Tracer returns the cookbook tracer.
func (p *Provider) Tracer() *OTelTracer {
	return NewOTelTracer(p.tracer)
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.sdk == nil {
		return nil
	}
	if err := p.sdk.Shutdown(ctx); err != nil {
		return zerr.Wrap(err, "failed to shut down tracer provider")
	}
	return nil
}
