package controller_test

import (
	"context"
	"testing"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports/mocks"
	"github.com/TYTheBeast/wynn-builder-ui/internal/engine/controller"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ctrl    *gomock.Controller
	spawner *mocks.MockSpawner
	logger  *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	return &fixture{
		ctrl:    ctrl,
		spawner: mocks.NewMockSpawner(ctrl),
		logger:  logger,
	}
}

// expectRun arranges one Spawn call backed by a fresh handle and an event
// channel the test feeds directly.
func (f *fixture) expectRun() (*mocks.MockSupervisorHandle, chan domain.ProgressEvent, *gomock.Call) {
	h := mocks.NewMockSupervisorHandle(f.ctrl)
	ch := make(chan domain.ProgressEvent, 8)
	call := f.spawner.EXPECT().
		Spawn(gomock.Any(), "builder").
		Return(h, (<-chan domain.ProgressEvent)(ch))
	return h, ch, call
}

func (f *fixture) newController(capacity int) *controller.Controller {
	return controller.New(context.Background(), f.spawner, f.logger, "builder", capacity)
}

// deliver runs cmd and routes its message back into the controller.
func deliver(c *controller.Controller, cmd tea.Cmd) tea.Cmd {
	return c.Update(cmd())
}

func TestController_StreamsUntilDone(t *testing.T) {
	f := newFixture(t)
	h, ch, _ := f.expectRun()
	h.EXPECT().Cancel().Times(1)

	c := f.newController(domain.DefaultOutputLines)
	cmd := c.Start()
	require.NotNil(t, cmd)
	assert.True(t, c.IsRunning())
	assert.NotEmpty(t, c.RunID())

	ch <- domain.Running("build done successfully")
	ch <- domain.Done()

	cmd = deliver(c, cmd)
	require.NotNil(t, cmd, "non-terminal event must re-arm the wait")
	assert.True(t, c.IsRunning())

	cmd = deliver(c, cmd)
	assert.Nil(t, cmd)
	assert.False(t, c.IsRunning())
	assert.Equal(t, []string{"build done successfully", domain.DoneText}, c.Lines())
}

func TestController_StopAfterTerminalIsNoop(t *testing.T) {
	f := newFixture(t)
	h, ch, _ := f.expectRun()
	h.EXPECT().Cancel().Times(1)

	c := f.newController(domain.DefaultOutputLines)
	cmd := c.Start()

	ch <- domain.Running("build done successfully")
	ch <- domain.Done()
	cmd = deliver(c, cmd)
	assert.Nil(t, deliver(c, cmd))

	before := c.Lines()
	c.Stop()
	c.Close()

	assert.False(t, c.IsRunning())
	assert.Equal(t, before, c.Lines())
}

func TestController_ErrorEventEndsRun(t *testing.T) {
	f := newFixture(t)
	h, ch, _ := f.expectRun()
	h.EXPECT().Cancel().Times(1)

	c := f.newController(domain.DefaultOutputLines)
	cmd := c.Start()

	ch <- domain.Failed("Failed to read stdout: reached end of stream")

	assert.Nil(t, deliver(c, cmd))
	assert.False(t, c.IsRunning())
	assert.Equal(t, []string{"Failed to read stdout: reached end of stream"}, c.Lines())
}

func TestController_CapacityBoundsLog(t *testing.T) {
	f := newFixture(t)
	h, ch, _ := f.expectRun()
	h.EXPECT().Cancel().AnyTimes()

	c := f.newController(3)
	cmd := c.Start()

	for _, line := range []string{"a", "b", "c", "d"} {
		ch <- domain.Running(line)
		cmd = deliver(c, cmd)
		assert.LessOrEqual(t, len(c.Lines()), c.Capacity())
	}

	assert.Equal(t, []string{"b", "c", "d"}, c.Lines())
	assert.True(t, c.IsRunning())
}

func TestController_StartCancelsPreviousRun(t *testing.T) {
	f := newFixture(t)
	first, firstCh, firstSpawn := f.expectRun()
	second, _, secondSpawn := f.expectRun()

	cancelFirst := first.EXPECT().Cancel().Times(1)
	secondSpawn.After(cancelFirst)
	cancelFirst.After(firstSpawn)
	second.EXPECT().Cancel().AnyTimes()

	c := f.newController(domain.DefaultOutputLines)
	staleCmd := c.Start()
	firstRun := c.RunID()

	firstCh <- domain.Running("old line")
	staleCmd = deliver(c, staleCmd)
	require.Equal(t, []string{"old line"}, c.Lines())

	c.Start()
	assert.NotEqual(t, firstRun, c.RunID())
	assert.True(t, c.IsRunning())
	assert.Empty(t, c.Lines(), "log is reset on start")

	// Events of the replaced run are dropped.
	firstCh <- domain.Running("late line")
	assert.Nil(t, deliver(c, staleCmd))
	close(firstCh)
	assert.Nil(t, c.Update(controller.RunClosedMsg{RunID: firstRun}))

	assert.Empty(t, c.Lines())
	assert.True(t, c.IsRunning())
}

func TestController_StopKeepsLog(t *testing.T) {
	f := newFixture(t)
	h, ch, _ := f.expectRun()
	h.EXPECT().Cancel().Times(1)

	c := f.newController(domain.DefaultOutputLines)
	cmd := c.Start()

	ch <- domain.Running("line 1")
	cmd = deliver(c, cmd)

	c.Stop()
	assert.False(t, c.IsRunning())
	assert.Equal(t, []string{"line 1"}, c.Lines())

	// A buffered event that arrives after Stop is not recorded.
	ch <- domain.Running("line 2")
	assert.Nil(t, deliver(c, cmd))
	assert.Equal(t, []string{"line 1"}, c.Lines())

	// Stop and Close without an active run are no-ops.
	c.Stop()
	c.Close()
}

func TestController_RunClosedWithoutTerminal(t *testing.T) {
	f := newFixture(t)
	h, ch, _ := f.expectRun()
	h.EXPECT().Cancel().Times(1)

	c := f.newController(domain.DefaultOutputLines)
	cmd := c.Start()

	close(ch)
	msg := cmd()
	require.Equal(t, controller.RunClosedMsg{RunID: c.RunID()}, msg)

	assert.Nil(t, c.Update(msg))
	assert.False(t, c.IsRunning())
	assert.Empty(t, c.Lines())
}

func TestController_IgnoresForeignMessages(t *testing.T) {
	f := newFixture(t)
	c := f.newController(domain.DefaultOutputLines)

	assert.Nil(t, c.Update(tea.KeyMsg{}))
	assert.Nil(t, c.Update(controller.EventMsg{RunID: "unknown", Event: domain.Running("x")}))
	assert.Empty(t, c.Lines())
	assert.False(t, c.IsRunning())
}

func TestController_SetCapacity(t *testing.T) {
	f := newFixture(t)
	c := f.newController(200)

	c.SetCapacity(50)
	assert.Equal(t, 50, c.Capacity())

	c.SetCapacity(0)
	assert.Equal(t, 1, c.Capacity())
}
