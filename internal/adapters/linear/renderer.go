// Package linear renders a builder run as plain prefixed lines for CI logs
// and pipes.
package linear

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/TYTheBeast/wynn-builder-ui/internal/engine/controller"
	"github.com/TYTheBeast/wynn-builder-ui/internal/ui/output"
	"github.com/TYTheBeast/wynn-builder-ui/internal/ui/style"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// LinePrefix precedes every builder output line on stdout.
const LinePrefix = "builder " + style.Pipe

// Session is the part of the controller the renderer drives.
type Session interface {
	Start() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	RunID() string
	Executable() string
}

// Renderer drives one run synchronously. Output lines go to stdout and
// status messages to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output
	now    func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock replaces time.Now for duration reporting.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// NewRenderer creates a Renderer. Nil writers select os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer, opts ...Option) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	r := &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts a run and blocks until it ends. It returns
// domain.ErrBuildFailed when the run ended with an error event and
// domain.ErrBuildCancelled when it was cancelled before finishing.
func (r *Renderer) Run(s Session) error {
	started := r.now()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting %s\n", r.tag(), s.Executable())

	var terminal *domain.ProgressEvent

	cmd := s.Start()
	for cmd != nil {
		msg := cmd()
		if ev, ok := msg.(controller.EventMsg); ok && ev.RunID == s.RunID() {
			r.printLine(ev.Event.Render())
			if ev.Event.IsTerminal() {
				terminal = &ev.Event
			}
		}
		cmd = s.Update(msg)
	}

	elapsed := r.now().Sub(started).Round(time.Millisecond)

	switch {
	case terminal == nil:
		symbol := r.output.String(style.Warning).Foreground(termenv.ANSIYellow).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Cancelled after %v\n", r.tag(), symbol, elapsed)
		return domain.ErrBuildCancelled

	case terminal.Kind == domain.ProgressError:
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %s\n", r.tag(), symbol, elapsed, terminal.Text)
		return domain.ErrBuildFailed

	default:
		symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", r.tag(), symbol, elapsed)
		return nil
	}
}

func (r *Renderer) tag() string {
	return r.output.String("[builder]").Faint().String()
}

func (r *Renderer) printLine(line string) {
	_, _ = fmt.Fprintf(r.stdout, "%s %s\n", LinePrefix, line)
}
