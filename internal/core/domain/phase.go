package domain

// RunPhase is the lifecycle phase of a supervised builder process.
//
//	Idle -> Spawning -> Streaming -> {Completed | Failed | Cancelled}
//	Spawning -> {Failed | Cancelled}
//
// Completed, Failed and Cancelled are absorbing.
type RunPhase int32

const (
	// PhaseIdle is the phase before the process is launched.
	PhaseIdle RunPhase = iota
	// PhaseSpawning is the phase while the process is being launched.
	PhaseSpawning
	// PhaseStreaming is the phase while output lines are being consumed.
	PhaseStreaming
	// PhaseCompleted is reached when the completion marker was seen.
	PhaseCompleted
	// PhaseFailed is reached on launch errors, read errors or end of stream without marker.
	PhaseFailed
	// PhaseCancelled is reached when the run was cancelled.
	PhaseCancelled
)

// String returns a human-readable phase name.
func (p RunPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpawning:
		return "spawning"
	case PhaseStreaming:
		return "streaming"
	case PhaseCompleted:
		return "completed"
	case PhaseFailed:
		return "failed"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the phase is absorbing.
func (p RunPhase) IsTerminal() bool {
	return p == PhaseCompleted || p == PhaseFailed || p == PhaseCancelled
}

// CanTransition reports whether moving from p to next is a legal lifecycle step.
func (p RunPhase) CanTransition(next RunPhase) bool {
	switch p {
	case PhaseIdle:
		return next == PhaseSpawning || next == PhaseCancelled
	case PhaseSpawning:
		return next == PhaseStreaming || next == PhaseFailed || next == PhaseCancelled
	case PhaseStreaming:
		return next == PhaseCompleted || next == PhaseFailed || next == PhaseCancelled
	default:
		return false
	}
}
