// Package process supervises the external builder executable and turns its
// standard output into a stream of progress events.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zerr"
)

const (
	// InstrumentationName is the OpenTelemetry tracer name used for builder runs.
	InstrumentationName = "wynn-builder-ui/process"

	// SpanName is the name of the span wrapping one builder run.
	SpanName = "builder.run"

	defaultWaitDelay = 2 * time.Second
)

var _ ports.Spawner = (*Supervisor)(nil)

// Supervisor implements ports.Spawner using os/exec.
type Supervisor struct {
	logger     ports.Logger
	tracer     trace.Tracer
	translator Translator
	waitDelay  time.Duration
	dir        string
}

// Option configures a Supervisor.
type Option func(*Supervisor)

// WithCompletionMarker sets the stdout substring that ends a run successfully.
func WithCompletionMarker(marker string) Option {
	return func(s *Supervisor) {
		s.translator = NewTranslator(marker)
	}
}

// WithTracer sets the tracer used to record builder runs.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Supervisor) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithWaitDelay bounds how long reaping waits for the output pipes to drain
// after the process was killed.
func WithWaitDelay(d time.Duration) Option {
	return func(s *Supervisor) {
		s.waitDelay = d
	}
}

// WithDir sets the working directory of spawned processes.
func WithDir(dir string) Option {
	return func(s *Supervisor) {
		s.dir = dir
	}
}

// NewSupervisor creates a new Supervisor.
func NewSupervisor(logger ports.Logger, opts ...Option) *Supervisor {
	s := &Supervisor{
		logger:     logger,
		tracer:     otel.Tracer(InstrumentationName),
		translator: NewTranslator(domain.DefaultCompletionMarker),
		waitDelay:  defaultWaitDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// With returns a copy of s with opts applied.
func (s *Supervisor) With(opts ...Option) *Supervisor {
	c := *s
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Spawn launches the executable without arguments and streams its progress.
//
// The process is started on a background goroutine, so Spawn never blocks.
// The returned handle kills the process on Cancel. If the handle is dropped
// without being cancelled, the run is cancelled once the handle is garbage
// collected.
func (s *Supervisor) Spawn(ctx context.Context, executable string) (ports.SupervisorHandle, <-chan domain.ProgressEvent) {
	runCtx, cancel := context.WithCancel(ctx)
	r := newRun(cancel)

	go s.produce(runCtx, r, executable)

	h := &handle{run: r}
	runtime.AddCleanup(h, func(r *run) { r.cancel() }, r)

	return h, r.events
}

// produce owns the process for its whole lifetime. It closes the event
// channel and the done channel on return, after the process was reaped.
func (s *Supervisor) produce(ctx context.Context, r *run, executable string) {
	defer close(r.done)
	defer close(r.events)
	defer r.cancel()

	ctx, span := s.tracer.Start(ctx, SpanName, trace.WithAttributes(
		attribute.String("builder.executable", executable),
	))
	defer span.End()

	r.transition(domain.PhaseSpawning)

	cmd, stdout, stderr, err := s.start(ctx, executable)
	if err != nil {
		if ctx.Err() != nil {
			r.transition(domain.PhaseCancelled)
			return
		}

		spawnErr := zerr.Wrap(err, domain.ErrSpawnFailed.Error())
		s.logger.Error(zerr.With(spawnErr, "executable", executable))
		span.RecordError(err)
		span.SetStatus(codes.Error, spawnErr.Error())

		r.transition(domain.PhaseFailed)
		r.send(ctx, domain.Failed(spawnErr.Error()))
		return
	}

	pid := cmd.Process.Pid
	r.pid.Store(int64(pid))
	span.SetAttributes(attribute.Int("builder.pid", pid))
	r.transition(domain.PhaseStreaming)
	s.logger.Info(fmt.Sprintf("builder started (pid %d)", pid))

	terminal, lines, readErr := s.stream(ctx, r, NewLineSource(stdout))

	// The child is reaped before the terminal event is delivered, so a
	// consumer that sees Done or Error never observes a live process.
	exitCode := s.reap(cmd)
	_ = stderr.Close()
	span.SetAttributes(attribute.Int("builder.lines", lines), attribute.Int("builder.exit_code", exitCode))

	if terminal == nil || ctx.Err() != nil {
		r.transition(domain.PhaseCancelled)
		span.SetAttributes(attribute.Bool("builder.cancelled", true))
		s.logger.Info(fmt.Sprintf("builder cancelled (pid %d)", pid))
		return
	}

	if terminal.Kind == domain.ProgressDone {
		r.transition(domain.PhaseCompleted)
		span.SetStatus(codes.Ok, "")
	} else {
		r.transition(domain.PhaseFailed)
		span.SetStatus(codes.Error, terminal.Text)
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			s.logger.Error(zerr.With(zerr.Wrap(readErr, domain.ErrReadFailed.Error()), "pid", pid))
		}
	}
	s.logger.Info(fmt.Sprintf("builder finished (pid %d, exit code %d, %s)", pid, exitCode, r.Phase()))

	r.send(ctx, *terminal)
}

// stream consumes lines until the translator yields a terminal event or the
// run is cancelled. It returns the terminal event, if any, without sending it.
func (s *Supervisor) stream(ctx context.Context, r *run, src *LineSource) (*domain.ProgressEvent, int, error) {
	lines := 0
	for {
		line, err := src.Next()
		if ctx.Err() != nil {
			return nil, lines, nil
		}
		if err == nil {
			lines++
		}

		for _, ev := range s.translator.Translate(line, err) {
			if ev.IsTerminal() {
				return &ev, lines, err
			}
			if !r.send(ctx, ev) {
				return nil, lines, nil
			}
		}
	}
}

// start resolves and launches the executable with all standard streams piped.
func (s *Supervisor) start(ctx context.Context, executable string) (*exec.Cmd, io.Reader, *logWriter, error) {
	path := resolveExecutable(executable, s.dir, os.Environ())

	cmd := exec.CommandContext(ctx, path) //nolint:gosec // executable comes from the user's settings
	cmd.Dir = s.dir
	cmd.WaitDelay = s.waitDelay
	configureProcessGroup(cmd)
	cmd.Cancel = func() error {
		return killProcessGroup(cmd)
	}

	// stderr is not part of the progress protocol; it is drained into the
	// diagnostics log so the child can never block on a full pipe.
	stderr := newLogWriter(s.logger, "builder stderr: ")
	cmd.Stderr = stderr

	if _, err := cmd.StdinPipe(); err != nil {
		return nil, nil, nil, zerr.Wrap(err, domain.ErrPipeSetupFailed.Error())
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, domain.ErrPipeSetupFailed.Error())
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, nil, err
	}
	return cmd, stdout, stderr, nil
}

// reap kills the process group if anything is still alive and waits for the
// process to exit. It returns the exit code, or -1 if the process was killed
// by a signal or the code is unknown.
func (s *Supervisor) reap(cmd *exec.Cmd) int {
	_ = killProcessGroup(cmd)

	err := cmd.Wait()
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
