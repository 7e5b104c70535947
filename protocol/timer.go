package protocol

import "time"

// Timer is a simple two-state stopwatch: running or paused. It tracks
// the total time spent in each state and toggles at turn boundaries.
// Elapsed, Pause, and Resume are the only ways to query or change state;
// there is no cancellation.
type Timer struct {
	running bool
	start   time.Time
	elapsed [2]time.Duration // indexed by running (false=paused, true=running)
}

// NewTimer returns a Timer starting in the given state.
func NewTimer(running bool) *Timer {
	return &Timer{running: running, start: time.Now()}
}

// Running reports whether the timer is currently running.
func (t *Timer) Running() bool { return t.running }

// Paused reports whether the timer is currently paused.
func (t *Timer) Paused() bool { return !t.running }

// Elapsed returns the total time spent in the given state so far.
func (t *Timer) Elapsed(whileRunning bool) time.Duration {
	d := t.elapsed[boolIndex(whileRunning)]
	if t.running == whileRunning {
		d += time.Since(t.start)
	}
	return d
}

// Pause stops the timer, which must currently be running, and returns
// how much time passed since the last toggle.
func (t *Timer) Pause() time.Duration {
	if !t.running {
		panic("protocol: Pause called on a paused Timer")
	}
	return t.togglePause()
}

// Resume starts the timer, which must currently be paused, and returns
// how much time passed since the last toggle.
func (t *Timer) Resume() time.Duration {
	if t.running {
		panic("protocol: Resume called on a running Timer")
	}
	return t.togglePause()
}

func (t *Timer) togglePause() time.Duration {
	now := time.Now()
	delta := now.Sub(t.start)
	t.elapsed[boolIndex(t.running)] += delta
	t.start = now
	t.running = !t.running
	return delta
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
