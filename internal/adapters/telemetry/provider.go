// Package telemetry configures OpenTelemetry tracing for builder runs and
// forwards finished spans to the logger.
package telemetry

import (
	"context"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer handed out by Provider.
const InstrumentationName = "wynn-builder-ui"

// Provider owns the SDK tracer provider.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider creates a tracer provider that reports spans through a Bridge
// to logger. Additional span processors may be attached, mostly for tests.
func NewProvider(logger ports.Logger, extra ...sdktrace.SpanProcessor) *Provider {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	}
	for _, sp := range extra {
		opts = append(opts, sdktrace.WithSpanProcessor(sp))
	}
	return &Provider{tp: sdktrace.NewTracerProvider(opts...)}
}

// Tracer returns the tracer used for builder runs.
func (p *Provider) Tracer() trace.Tracer {
	return p.tp.Tracer(InstrumentationName)
}

// Install makes p the global tracer provider.
func (p *Provider) Install() {
	otel.SetTracerProvider(p.tp)
}

// Shutdown flushes and stops all span processors.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
