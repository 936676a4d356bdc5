// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
)

// Spawner launches builder processes.
//
//go:generate mockgen -source=supervisor.go -destination=mocks/mock_supervisor.go -package=mocks
type Spawner interface {
	// Spawn launches the executable and returns the handle bound to the process
	// together with its progress stream.
	//
	// The stream has a buffer of one event; the producer blocks until the
	// consumer takes the buffered event. Launch failures are reported as a single
	// terminal error event. The stream is closed when the run ends, whether it
	// completed, failed or was cancelled.
	Spawn(ctx context.Context, executable string) (SupervisorHandle, <-chan domain.ProgressEvent)
}

// SupervisorHandle is the cancellation capability of exactly one builder process.
type SupervisorHandle interface {
	// Cancel stops event production and kills the process. It blocks until the
	// process has been reaped. Calling it on a finished run has no effect.
	Cancel()
	// Done is closed once the process is reaped and the progress stream is closed.
	Done() <-chan struct{}
	// PID returns the OS process id, or 0 if the process was never started.
	PID() int
	// Phase returns the current lifecycle phase of the run.
	Phase() domain.RunPhase
}
