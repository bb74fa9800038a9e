package snake

import "time"

// Loop drives a session from wall-clock time. Elapsed time accumulates
// while the session runs; once it reaches the move interval exactly one
// tick runs and the accumulator goes back to zero.
type Loop struct {
	session *Session
	acc     time.Duration
}

// NewLoop wraps s.
func NewLoop(s *Session) *Loop {
	return &Loop{session: s}
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

// Advance feeds elapsed time into the loop. It reports whether a tick ran
// and returns that tick's events.
func (l *Loop) Advance(elapsed time.Duration) (StepResult, bool) {
	if l.session.State() != StateRunning {
		l.acc = 0
		return StepResult{}, false
	}
	if elapsed > 0 {
		l.acc += elapsed
	}
	if l.acc < l.session.MoveInterval() {
		return StepResult{}, false
	}
	l.acc = 0
	return l.session.Tick(), true
}

// Pending returns the time accumulated toward the next tick.
func (l *Loop) Pending() time.Duration {
	return l.acc
}

// Reset discards accumulated time.
func (l *Loop) Reset() {
	l.acc = 0
}
