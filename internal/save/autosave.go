package save

import "time"

// MaxRetryDelay caps how long a failed autosave waits before trying again.
const MaxRetryDelay = 30 * time.Second

// Autosaver rate-limits periodic saves. It holds no goroutine; the host
// calls Tick from the goroutine that owns the game state.
type Autosaver struct {
	Interval time.Duration
	last     time.Time
	retryAt  time.Time
}

// NewAutosaver returns an Autosaver whose first save is due one interval
// after start. A zero interval disables it.
func NewAutosaver(interval time.Duration, start time.Time) *Autosaver {
	return &Autosaver{Interval: interval, last: start}
}

// Tick calls save when an interval has elapsed since the last successful
// save and reports whether it did. After a failure the next attempt waits
// for the shorter of Interval and MaxRetryDelay.
func (a *Autosaver) Tick(now time.Time, save func() bool) bool {
	if a.Interval <= 0 || now.Sub(a.last) < a.Interval || now.Before(a.retryAt) {
		return false
	}
	if !save() {
		a.retryAt = now.Add(min(a.Interval, MaxRetryDelay))
		return false
	}
	a.last = now
	a.retryAt = time.Time{}
	return true
}

// Reset restarts the interval, typically after a manual save.
func (a *Autosaver) Reset(now time.Time) {
	a.last = now
	a.retryAt = time.Time{}
}
