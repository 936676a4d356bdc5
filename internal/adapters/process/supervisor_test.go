//go:build unix

package process_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/process"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

const eventTimeout = 10 * time.Second

// recordingLogger returns a permissive logger mock that keeps every warning.
func recordingLogger(t *testing.T) (*mocks.MockLogger, func() []string) {
	t.Helper()

	var (
		mu    sync.Mutex
		warns []string
	)
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		mu.Lock()
		defer mu.Unlock()
		warns = append(warns, msg)
	}).AnyTimes()

	return log, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), warns...)
	}
}

// writeScript creates an executable shell script and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "builder")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)) //nolint:gosec // test fixture must be executable
	return path
}

// drain collects events until the channel is closed.
func drain(t *testing.T, events <-chan domain.ProgressEvent) []domain.ProgressEvent {
	t.Helper()

	var got []domain.ProgressEvent
	timeout := time.After(eventTimeout)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return got
			}
			got = append(got, ev)
		case <-timeout:
			t.Fatalf("event stream not closed after %s; got %v", eventTimeout, got)
			return got
		}
	}
}

func next(t *testing.T, events <-chan domain.ProgressEvent) domain.ProgressEvent {
	t.Helper()

	select {
	case ev, ok := <-events:
		require.True(t, ok, "event stream closed early")
		return ev
	case <-time.After(eventTimeout):
		t.Fatalf("no event after %s", eventTimeout)
		return domain.ProgressEvent{}
	}
}

func waitDone(t *testing.T, h ports.SupervisorHandle) {
	t.Helper()

	select {
	case <-h.Done():
	case <-time.After(eventTimeout):
		t.Fatalf("run not reaped after %s", eventTimeout)
	}
}

func assertReaped(t *testing.T, pid int) {
	t.Helper()

	require.NotZero(t, pid)
	err := syscall.Kill(pid, 0)
	assert.True(t, errors.Is(err, syscall.ESRCH), "process %d still exists: %v", pid, err)
}

func TestSupervisor_CompletionMarker(t *testing.T) {
	log, _ := recordingLogger(t)
	script := writeScript(t, `echo "loading items"
echo "build done successfully"
sleep 30`)

	h, events := process.NewSupervisor(log).Spawn(t.Context(), script)

	got := drain(t, events)
	assert.Equal(t, []domain.ProgressEvent{
		domain.Running("loading items"),
		domain.Running("build done successfully"),
		domain.Done(),
	}, got)

	waitDone(t, h)
	assert.Equal(t, domain.PhaseCompleted, h.Phase())
	assertReaped(t, h.PID())
}

func TestSupervisor_TerminalEventArrivesAfterReap(t *testing.T) {
	log, _ := recordingLogger(t)
	script := writeScript(t, `echo done
sleep 30`)

	h, events := process.NewSupervisor(log).Spawn(t.Context(), script)

	assert.Equal(t, domain.Running("done"), next(t, events))
	assert.Equal(t, domain.Done(), next(t, events))
	assertReaped(t, h.PID())

	drain(t, events)
}

func TestSupervisor_EndOfStreamWithoutMarker(t *testing.T) {
	log, _ := recordingLogger(t)
	script := writeScript(t, `echo a
printf b`)

	h, events := process.NewSupervisor(log).Spawn(t.Context(), script)

	got := drain(t, events)
	assert.Equal(t, []domain.ProgressEvent{
		domain.Running("a"),
		domain.Running("b"),
		domain.Failed("Failed to read stdout: reached end of stream"),
	}, got)

	waitDone(t, h)
	assert.Equal(t, domain.PhaseFailed, h.Phase())
}

func TestSupervisor_InvalidUTF8EndsRun(t *testing.T) {
	log, _ := recordingLogger(t)
	script := writeScript(t, `printf 'ok\377\n'
echo done
sleep 30`)

	h, events := process.NewSupervisor(log).Spawn(t.Context(), script)

	got := drain(t, events)
	assert.Equal(t, []domain.ProgressEvent{
		domain.Failed("Failed to read stdout"),
	}, got)

	waitDone(t, h)
	assert.Equal(t, domain.PhaseFailed, h.Phase())
	assertReaped(t, h.PID())
}

func TestSupervisor_DroppedHandleKillsProcess(t *testing.T) {
	log, _ := recordingLogger(t)
	script := writeScript(t, `while true; do echo tick; sleep 0.05; done`)

	spawn := func() (int, <-chan domain.ProgressEvent) {
		h, events := process.NewSupervisor(log).Spawn(context.Background(), script)
		assert.Equal(t, domain.Running("tick"), next(t, events))
		return h.PID(), events
	}
	pid, events := spawn()
	require.NotZero(t, pid)

	deadline := time.Now().Add(eventTimeout)
	for {
		runtime.GC()
		if err := syscall.Kill(pid, 0); errors.Is(err, syscall.ESRCH) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("process %d still alive after its handle was collected", pid)
		}
		time.Sleep(20 * time.Millisecond)
	}

	// The stream ends without a terminal event once the run is cancelled.
	for ev := range events {
		assert.False(t, ev.IsTerminal(), "unexpected terminal event %v", ev)
	}
}

func TestSupervisor_SpawnFailure(t *testing.T) {
	log, _ := recordingLogger(t)
	missing := filepath.Join(t.TempDir(), "no-such-builder")

	h, events := process.NewSupervisor(log).Spawn(t.Context(), missing)

	got := drain(t, events)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ProgressError, got[0].Kind)
	assert.True(t, strings.HasPrefix(got[0].Text, "Failed to start binary: "), got[0].Text)

	waitDone(t, h)
	assert.Equal(t, domain.PhaseFailed, h.Phase())
	assert.Zero(t, h.PID())
}

func TestSupervisor_SpawnFailure_NotExecutable(t *testing.T) {
	log, _ := recordingLogger(t)
	path := filepath.Join(t.TempDir(), "builder")
	require.NoError(t, os.WriteFile(path, []byte("echo done\n"), 0o600))

	_, events := process.NewSupervisor(log).Spawn(t.Context(), path)

	got := drain(t, events)
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0].Text, "Failed to start binary: "), got[0].Text)
}

func TestSupervisor_CancelMidStream(t *testing.T) {
	log, _ := recordingLogger(t)
	script := writeScript(t, `while true; do echo tick; sleep 0.05; done`)

	h, events := process.NewSupervisor(log).Spawn(t.Context(), script)

	assert.Equal(t, domain.Running("tick"), next(t, events))
	pid := h.PID()

	h.Cancel()

	for _, ev := range drain(t, events) {
		assert.False(t, ev.IsTerminal(), "cancelled run must not emit %v", ev)
	}
	assert.Equal(t, domain.PhaseCancelled, h.Phase())
	assertReaped(t, pid)

	// Cancel is idempotent.
	h.Cancel()
	assert.Equal(t, domain.PhaseCancelled, h.Phase())
}

func TestSupervisor_CancelAfterTerminalIsNoop(t *testing.T) {
	log, _ := recordingLogger(t)
	script := writeScript(t, `echo done`)

	h, events := process.NewSupervisor(log).Spawn(t.Context(), script)
	drain(t, events)

	h.Cancel()
	assert.Equal(t, domain.PhaseCompleted, h.Phase())
}

func TestSupervisor_ParentContextCancels(t *testing.T) {
	log, _ := recordingLogger(t)
	script := writeScript(t, `echo started
sleep 30`)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	h, events := process.NewSupervisor(log).Spawn(ctx, script)

	assert.Equal(t, domain.Running("started"), next(t, events))
	cancel()

	drain(t, events)
	waitDone(t, h)
	assert.Equal(t, domain.PhaseCancelled, h.Phase())
	assertReaped(t, h.PID())
}

func TestSupervisor_PreservesOrderUnderBackpressure(t *testing.T) {
	log, _ := recordingLogger(t)
	script := writeScript(t, `i=0
while [ $i -lt 300 ]; do echo "line $i"; i=$((i+1)); done`)

	h, events := process.NewSupervisor(log).Spawn(t.Context(), script)

	// Let the child fill the pipe while nobody consumes.
	time.Sleep(100 * time.Millisecond)

	got := drain(t, events)
	require.Len(t, got, 301)
	for i := range 300 {
		assert.Equal(t, domain.Running("line "+strconv.Itoa(i)), got[i])
	}
	assert.Equal(t, domain.ProgressError, got[300].Kind)
	waitDone(t, h)
}

func TestSupervisor_StderrGoesToLogger(t *testing.T) {
	log, warnings := recordingLogger(t)
	script := writeScript(t, `echo "low memory" 1>&2
echo done`)

	h, events := process.NewSupervisor(log).Spawn(t.Context(), script)

	got := drain(t, events)
	assert.Equal(t, []domain.ProgressEvent{domain.Running("done"), domain.Done()}, got)
	waitDone(t, h)

	assert.Contains(t, warnings(), "builder stderr: low memory")
}

func TestSupervisor_WithCompletionMarker(t *testing.T) {
	log, _ := recordingLogger(t)
	script := writeScript(t, `echo "done with phase one"
echo "FINISHED"`)

	sup := process.NewSupervisor(log).With(process.WithCompletionMarker("FINISHED"))
	_, events := sup.Spawn(t.Context(), script)

	assert.Equal(t, []domain.ProgressEvent{
		domain.Running("done with phase one"),
		domain.Running("FINISHED"),
		domain.Done(),
	}, drain(t, events))
}

func TestSupervisor_RecordsSpan(t *testing.T) {
	log, _ := recordingLogger(t)
	script := writeScript(t, `echo one
echo two`)

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	h, events := process.NewSupervisor(log, process.WithTracer(tp.Tracer("test"))).Spawn(t.Context(), script)
	drain(t, events)
	waitDone(t, h)

	ended := rec.Ended()
	require.Len(t, ended, 1)
	span := ended[0]
	assert.Equal(t, process.SpanName, span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, script, attrs["builder.executable"].AsString())
	assert.Equal(t, int64(2), attrs["builder.lines"].AsInt64())
	assert.Equal(t, int64(h.PID()), attrs["builder.pid"].AsInt64())
}
