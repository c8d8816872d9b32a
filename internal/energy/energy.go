// Package energy models the player's stamina pool.
package energy

import "math"

const (
	Initial         = 270.0
	StardropBonus   = 34.0
	Ceiling         = 508.0
	ExhaustedAt     = 0.0
	PassOutAt       = -15.0
	PassOutRecovery = 0.5
	SprintPerSecond = 0.1
)

// State is the stamina pool. Current may dip below zero down to PassOutAt.
type State struct {
	Current     float64 `json:"current"`
	Max         float64 `json:"max"`
	IsExhausted bool    `json:"isExhausted"`
	PassedOut   bool    `json:"passedOut"`
}

// New returns a full pool at the starting maximum.
func New() State {
	return State{Current: Initial, Max: Initial}
}

func withFlags(s State) State {
	s.IsExhausted = s.Current <= ExhaustedAt
	s.PassedOut = s.Current <= PassOutAt
	return s
}

// ConsumeTool subtracts cost. Exhaustion is a warning only; the caller
// decides what to do once PassedOut is set.
func ConsumeTool(s State, cost float64) State {
	s.Current = math.Max(PassOutAt, s.Current-cost)
	return withFlags(s)
}

// ConsumeSprint drains the sprint cost for seconds of running.
func ConsumeSprint(s State, seconds float64) State {
	return ConsumeTool(s, SprintPerSecond*seconds)
}

// ConsumeFood restores energy up to Max. Eating clears a pass-out.
func ConsumeFood(s State, restore float64) State {
	s.Current = math.Min(s.Max, s.Current+restore)
	return withFlags(s)
}

// RestoreFromSleep sets energy to floor(Max * multiplier).
func RestoreFromSleep(s State, multiplier float64) State {
	s.Current = math.Floor(s.Max * multiplier)
	return withFlags(s)
}

// RestoreFromPassOut sets energy to half of Max regardless of the hour.
func RestoreFromPassOut(s State) State {
	return RestoreFromSleep(s, PassOutRecovery)
}

// IncreaseMax raises Max by the stardrop bonus up to Ceiling and tops
// Current up by the same amount.
func IncreaseMax(s State) State {
	grown := math.Min(Ceiling, s.Max+StardropBonus)
	gain := grown - s.Max
	s.Max = grown
	s.Current = math.Min(s.Max, s.Current+gain)
	return withFlags(s)
}

// HasEnough reports whether spending cost keeps the player above the
// pass-out floor.
func HasEnough(s State, cost float64) bool {
	return s.Current-cost > PassOutAt
}

// Percent returns Current as a 0..100 share of Max, clamped at zero.
func Percent(s State) float64 {
	if s.Max <= 0 {
		return 0
	}
	return math.Max(0, s.Current/s.Max*100)
}

// Status is a coarse label for the HUD.
type Status string

const (
	Full      Status = "full"
	Good      Status = "good"
	Tired     Status = "tired"
	Exhausted Status = "exhausted"
)

// StatusOf buckets the pool for display.
func StatusOf(s State) Status {
	switch p := Percent(s); {
	case s.IsExhausted:
		return Exhausted
	case p >= 90:
		return Full
	case p >= 25:
		return Good
	default:
		return Tired
	}
}
