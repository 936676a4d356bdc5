package domain

// ProgressKind tags the variant of a ProgressEvent.
type ProgressKind uint8

const (
	// ProgressRunning carries one line of builder output.
	ProgressRunning ProgressKind = iota
	// ProgressDone signals that the builder printed the completion marker.
	ProgressDone
	// ProgressError signals that the run failed.
	ProgressError
)

// DoneText is the log line rendered for a ProgressDone event.
const DoneText = "finished running builder binary"

// String returns the name of the kind.
func (k ProgressKind) String() string {
	switch k {
	case ProgressRunning:
		return "running"
	case ProgressDone:
		return "done"
	case ProgressError:
		return "error"
	default:
		return "unknown"
	}
}

// ProgressEvent is a single progress signal produced while supervising the builder.
// Text is the output line for ProgressRunning and the failure message for ProgressError.
type ProgressEvent struct {
	Kind ProgressKind
	Text string
}

// Running creates a ProgressRunning event for one output line.
func Running(line string) ProgressEvent {
	return ProgressEvent{Kind: ProgressRunning, Text: line}
}

// Done creates the terminal success event.
func Done() ProgressEvent {
	return ProgressEvent{Kind: ProgressDone}
}

// Failed creates the terminal error event.
func Failed(msg string) ProgressEvent {
	return ProgressEvent{Kind: ProgressError, Text: msg}
}

// IsTerminal reports whether the event ends a run.
func (e ProgressEvent) IsTerminal() bool {
	return e.Kind == ProgressDone || e.Kind == ProgressError
}

// Render returns the text appended to the output log for this event.
func (e ProgressEvent) Render() string {
	if e.Kind == ProgressDone {
		return DoneText
	}
	return e.Text
}
