// Package controller owns the state of builder runs and routes progress
// events into the bounded output log.
//
// A Controller is not safe for concurrent use. All methods are called from a
// single control loop: the bubbletea Update loop or the linear renderer.
package controller

import (
	"context"
	"fmt"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// EventMsg delivers one progress event of the run identified by RunID.
type EventMsg struct {
	RunID string
	Event domain.ProgressEvent
}

// RunClosedMsg reports that the event stream of a run was closed.
type RunClosedMsg struct {
	RunID string
}

// Controller starts and stops builder runs and records their output.
type Controller struct {
	ctx        context.Context //nolint:containedctx // parent of every run; runs outlive a single call
	spawner    ports.Spawner
	logger     ports.Logger
	executable string

	log     *domain.OutputLog
	handle  ports.SupervisorHandle
	events  <-chan domain.ProgressEvent
	running bool
	runID   string
}

// New creates a Controller that spawns executable through spawner and keeps
// at most capacity lines of output. Runs are cancelled when ctx is done.
func New(ctx context.Context, spawner ports.Spawner, logger ports.Logger, executable string, capacity int) *Controller {
	return &Controller{
		ctx:        ctx,
		spawner:    spawner,
		logger:     logger,
		executable: executable,
		log:        domain.NewOutputLog(capacity),
	}
}

// Start launches a new run. An active run is cancelled and reaped first, and
// the log is cleared. The returned command yields the first event.
func (c *Controller) Start() tea.Cmd {
	if c.handle != nil {
		c.logger.Info("restarting builder, cancelling the active run")
	}
	c.release()
	c.log.Reset()

	c.runID = uuid.NewString()
	c.handle, c.events = c.spawner.Spawn(c.ctx, c.executable)
	c.running = true
	c.logger.Info(fmt.Sprintf("started builder run %s (%s)", c.runID, c.executable))

	return waitForEvent(c.runID, c.events)
}

// Stop cancels the active run, if any. The log is kept.
func (c *Controller) Stop() {
	if c.handle == nil {
		return
	}
	c.release()
	c.running = false
	c.logger.Info(fmt.Sprintf("stopped builder run %s", c.runID))
}

// Close stops any active run. It is called on application shutdown.
func (c *Controller) Close() {
	c.Stop()
}

// Update routes a message produced by a wait command. Messages of other
// types and of runs that are no longer current are ignored.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		if !c.isCurrent(msg.RunID) {
			return nil
		}
		c.log.Record(msg.Event.Render())
		if msg.Event.IsTerminal() {
			c.running = false
			c.release()
			return nil
		}
		return waitForEvent(c.runID, c.events)

	case RunClosedMsg:
		if !c.isCurrent(msg.RunID) {
			return nil
		}
		// Closed without a terminal event.
		c.running = false
		c.release()
	}
	return nil
}

// SetCapacity changes the output bound for future records.
func (c *Controller) SetCapacity(n int) {
	c.log.SetCapacity(n)
}

// IsRunning reports whether a run is active.
func (c *Controller) IsRunning() bool {
	return c.running
}

// Lines returns a copy of the output log, oldest first.
func (c *Controller) Lines() []string {
	return c.log.Lines()
}

// Capacity returns the current output bound.
func (c *Controller) Capacity() int {
	return c.log.Capacity()
}

// RunID returns the id of the latest run, or "" before the first Start.
func (c *Controller) RunID() string {
	return c.runID
}

// Executable returns the builder executable started by Start.
func (c *Controller) Executable() string {
	return c.executable
}

func (c *Controller) isCurrent(runID string) bool {
	return c.running && runID == c.runID
}

// release cancels the active handle and waits until its process is reaped.
func (c *Controller) release() {
	if c.handle == nil {
		return
	}
	c.handle.Cancel()
	c.handle = nil
	c.events = nil
}

// waitForEvent returns a command that receives exactly one event.
func waitForEvent(runID string, events <-chan domain.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return RunClosedMsg{RunID: runID}
		}
		return EventMsg{RunID: runID, Event: ev}
	}
}
