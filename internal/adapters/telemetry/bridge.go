package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Bridge implements sdktrace.SpanProcessor by writing a one-line summary of
// every finished span to the logger.
type Bridge struct {
	logger ports.Logger
}

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the finished span. Spans with an error status are logged as
// warnings.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	msg := Summarize(s.Name(), s.EndTime().Sub(s.StartTime()), s.Attributes())

	if status := s.Status(); status.Code == codes.Error {
		desc := status.Description
		if desc == "" {
			desc = "failed"
		}
		b.logger.Warn(msg + ": " + desc)
		return
	}
	b.logger.Info(msg)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// Summarize renders a span as "name finished in 1.5s (key=value ...)".
// Attributes keep their recorded order.
func Summarize(name string, elapsed time.Duration, attrs []attribute.KeyValue) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s finished in %s", name, elapsed.Round(time.Millisecond))

	if len(attrs) == 0 {
		return sb.String()
	}

	parts := make([]string, 0, len(attrs))
	for _, kv := range attrs {
		parts = append(parts, string(kv.Key)+"="+kv.Value.Emit())
	}
	sb.WriteString(" (" + strings.Join(parts, " ") + ")")
	return sb.String()
}
