package telemetry_test

import (
	"testing"
	"time"

	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/telemetry"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnEnd_Ok(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(log)))
	_, span := tp.Tracer("test").Start(t.Context(), "builder.run")
	span.SetAttributes(attribute.Int("builder.lines", 3))
	span.SetStatus(codes.Ok, "")
	span.End()

	assert.Contains(t, got, "builder.run finished in ")
	assert.Contains(t, got, "(builder.lines=3)")
}

func TestBridge_OnEnd_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got string
	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(log)))
	_, span := tp.Tracer("test").Start(t.Context(), "builder.run")
	span.SetStatus(codes.Error, "Failed to read stdout: reached end of stream")
	span.End()

	assert.Contains(t, got, ": Failed to read stdout: reached end of stream")
}

func TestBridge_NilLogger(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	_, span := tp.Tracer("test").Start(t.Context(), "noop")
	span.End()
}

func TestSummarize(t *testing.T) {
	got := telemetry.Summarize("builder.run", 1500*time.Millisecond, []attribute.KeyValue{
		attribute.String("builder.executable", "./builder"),
		attribute.Int("builder.pid", 12),
	})
	assert.Equal(t, "builder.run finished in 1.5s (builder.executable=./builder builder.pid=12)", got)

	assert.Equal(t, "idle finished in 0s", telemetry.Summarize("idle", 0, nil))
}
