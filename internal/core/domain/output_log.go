package domain

// OutputLog is an ordered, capacity-bounded log of rendered progress lines.
// Once the capacity is exceeded the oldest lines are evicted first.
//
// OutputLog is not safe for concurrent use; it is owned by the controller loop.
type OutputLog struct {
	lines    []string
	capacity int
}

// NewOutputLog creates an empty log bounded to capacity lines.
func NewOutputLog(capacity int) *OutputLog {
	return &OutputLog{capacity: clampCapacity(capacity)}
}

// Record appends text and evicts the oldest lines so that Len() <= Capacity().
func (l *OutputLog) Record(text string) {
	l.lines = append(l.lines, text)
	if excess := len(l.lines) - l.capacity; excess > 0 {
		// Copy the survivors down so the backing array does not grow without bound.
		n := copy(l.lines, l.lines[excess:])
		clear(l.lines[n:])
		l.lines = l.lines[:n]
	}
}

// SetCapacity changes the bound used by future Record calls.
// Existing lines are not truncated until the next Record.
func (l *OutputLog) SetCapacity(capacity int) {
	l.capacity = clampCapacity(capacity)
}

// Capacity returns the current bound.
func (l *OutputLog) Capacity() int {
	return l.capacity
}

// Len returns the number of lines held.
func (l *OutputLog) Len() int {
	return len(l.lines)
}

// Lines returns a copy of the held lines, oldest first.
func (l *OutputLog) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Reset drops all lines and keeps the capacity.
func (l *OutputLog) Reset() {
	clear(l.lines)
	l.lines = l.lines[:0]
}

func clampCapacity(capacity int) int {
	if capacity < 1 {
		return 1
	}
	return capacity
}
