package process

import (
	"context"
	"sync/atomic"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
)

// run is the state shared between a handle and the producer goroutine.
// The producer never references the handle, so an abandoned handle can be
// garbage collected and trigger its cleanup.
type run struct {
	cancel context.CancelFunc
	events chan domain.ProgressEvent
	done   chan struct{}
	pid    atomic.Int64
	phase  atomic.Int32
}

func newRun(cancel context.CancelFunc) *run {
	return &run{
		cancel: cancel,
		events: make(chan domain.ProgressEvent, 1),
		done:   make(chan struct{}),
	}
}

// transition moves the run to next if the lifecycle allows it.
func (r *run) transition(next domain.RunPhase) bool {
	for {
		cur := domain.RunPhase(r.phase.Load())
		if !cur.CanTransition(next) {
			return false
		}
		if r.phase.CompareAndSwap(int32(cur), int32(next)) {
			return true
		}
	}
}

// Phase returns the current lifecycle phase.
func (r *run) Phase() domain.RunPhase {
	return domain.RunPhase(r.phase.Load())
}

// send blocks until the single buffered slot is free or the run is cancelled.
func (r *run) send(ctx context.Context, ev domain.ProgressEvent) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case r.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// handle implements ports.SupervisorHandle.
type handle struct {
	run *run
}

// Cancel stops the run, kills the process group and waits until the process
// has been reaped. It is safe to call more than once.
func (h *handle) Cancel() {
	h.run.cancel()
	<-h.run.done
}

// Done is closed once the process is reaped and the event stream is closed.
func (h *handle) Done() <-chan struct{} {
	return h.run.done
}

// PID returns the OS process id, or 0 if the process was never started.
func (h *handle) PID() int {
	return int(h.run.pid.Load())
}

// Phase returns the current lifecycle phase.
func (h *handle) Phase() domain.RunPhase {
	return h.run.Phase()
}
