// Package loop runs a fixed-timestep update with a per-frame render. The
// host owns the frame ticker and calls Frame on each tick.
package loop

import "time"

const (
	// Step is the fixed simulation step handed to every update.
	Step = time.Second / 60
	// MaxFrameDelta caps catch-up after a stall.
	MaxFrameDelta = 100 * time.Millisecond
)

// Clock supplies wall time. Tests swap in a controllable clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// UpdateFunc advances the simulation by dt seconds.
type UpdateFunc func(dt float64)

// RenderFunc draws the current state.
type RenderFunc func()

// Loop drains elapsed wall time in fixed steps. It is not safe for
// concurrent use; one host goroutine drives it.
type Loop struct {
	clock  Clock
	update UpdateFunc
	render RenderFunc

	running bool
	paused  bool
	last    time.Time
	acc     time.Duration
}

// New returns a stopped loop.
func New(clock Clock, update UpdateFunc, render RenderFunc) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{clock: clock, update: update, render: render}
}

// Start begins running from now. Starting a running loop does nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.paused = false
	l.last = l.clock.Now()
}

// Stop halts the loop; later frames do nothing until Start.
func (l *Loop) Stop() { l.running = false }

// Pause stops updates. Frames still render.
func (l *Loop) Pause() { l.paused = true }

// Resume restarts updates without replaying the paused interval.
func (l *Loop) Resume() {
	if !l.paused {
		return
	}
	l.paused = false
	l.last = l.clock.Now()
}

func (l *Loop) Running() bool { return l.running }
func (l *Loop) Paused() bool  { return l.paused }

// Frame runs one host frame: zero or more fixed updates, then one render.
func (l *Loop) Frame() {
	if !l.running {
		return
	}
	now := l.clock.Now()
	delta := min(now.Sub(l.last), MaxFrameDelta)
	l.last = now

	if !l.paused {
		l.acc += delta
		for l.acc >= Step {
			l.update(Step.Seconds())
			l.acc -= Step
		}
	}
	if l.render != nil {
		l.render()
	}
}
