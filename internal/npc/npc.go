// Package npc tracks villager positions and relationships.
package npc

import (
	"math/rand"
	"slices"

	"valley-farm/assets"
	"valley-farm/internal/gamemap"
)

const (
	TalkBonus       = 20
	WeeklyGiftLimit = 2
	PointsPerHeart  = 100
	MaxHearts       = 10
	BirthdayFactor  = 8

	heartLineChance = 0.3
)

// State is the live relationship and placement of one villager.
type State struct {
	ID            string            `json:"id" validate:"required"`
	Position      assets.TilePos    `json:"position"`
	Direction     gamemap.Direction `json:"direction"`
	Hearts        int               `json:"hearts" validate:"gte=0"`
	TalkedToday   bool              `json:"talkedToday"`
	GiftedToday   bool              `json:"giftedToday"`
	GiftsThisWeek int               `json:"giftsThisWeek" validate:"gte=0"`
}

// InitialStates places every villager at home with no relationship.
func InitialStates() []State {
	defs := assets.NPCs()
	out := make([]State, len(defs))
	for i, d := range defs {
		out[i] = State{ID: d.ID, Position: d.Home, Direction: gamemap.Down}
	}
	return out
}

// PositionAt returns the last schedule point at or before hour, or home
// when hour precedes the schedule.
func PositionAt(def assets.NPC, hour int) assets.TilePos {
	pos := def.Home
	for _, e := range def.Schedule {
		if e.Hour > hour {
			break
		}
		pos = e.Pos()
	}
	return pos
}

// UpdatePositions moves every villager to their scheduled tile for hour.
// NPCs that move turn to face their direction of travel.
func UpdatePositions(states []State, hour int) []State {
	out := slices.Clone(states)
	for i, s := range out {
		def, ok := assets.NPCByID(s.ID)
		if !ok {
			continue
		}
		next := PositionAt(def, hour)
		if next != s.Position {
			out[i].Direction = heading(s.Position, next)
			out[i].Position = next
		}
	}
	return out
}

func heading(from, to assets.TilePos) gamemap.Direction {
	dx, dy := to.X-from.X, to.Y-from.Y
	if abs(dx) >= abs(dy) {
		if dx < 0 {
			return gamemap.Left
		}
		return gamemap.Right
	}
	if dy < 0 {
		return gamemap.Up
	}
	return gamemap.Down
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// HeartLevel converts heart points to the displayed 0..10 level.
func HeartLevel(points int) int {
	return min(MaxHearts, max(0, points)/PointsPerHeart)
}

// Greeting picks one of the villager's greetings.
func Greeting(def assets.NPC, rng *rand.Rand) string {
	return pick(def.Greetings, rng)
}

// RandomLine picks small talk. Once the heart level reaches a threshold
// with special lines, those lines win 30% of the time.
func RandomLine(def assets.NPC, hearts int, rng *rand.Rand) string {
	level := HeartLevel(hearts)
	for _, threshold := range def.HeartThresholds() {
		if level >= threshold {
			if rng.Float64() < heartLineChance {
				return pick(def.HeartLines[threshold], rng)
			}
			break
		}
	}
	return pick(def.Lines, rng)
}

func pick(lines []string, rng *rand.Rand) string {
	if len(lines) == 0 {
		return "..."
	}
	return lines[rng.Intn(len(lines))]
}

// TalkResult is the outcome of one conversation.
type TalkResult struct {
	State  State
	Line   string
	Points int
}

// Talk greets the villager. The first talk of the day earns TalkBonus.
func Talk(s State, rng *rand.Rand) TalkResult {
	def, ok := assets.NPCByID(s.ID)
	if !ok {
		return TalkResult{State: s, Line: "..."}
	}
	if s.TalkedToday {
		return TalkResult{State: s, Line: RandomLine(def, s.Hearts, rng)}
	}
	s.TalkedToday = true
	s.Hearts += TalkBonus
	return TalkResult{State: s, Line: Greeting(def, rng), Points: TalkBonus}
}

// ResetDaily clears the daily talk and gift flags. On the first day of a
// week the weekly gift count also resets.
func ResetDaily(states []State, newWeek bool) []State {
	out := slices.Clone(states)
	for i := range out {
		out[i].TalkedToday = false
		out[i].GiftedToday = false
		if newWeek {
			out[i].GiftsThisWeek = 0
		}
	}
	return out
}

// Index returns the position of id in states, or -1.
func Index(states []State, id string) int {
	return slices.IndexFunc(states, func(s State) bool { return s.ID == id })
}

// At returns the index of the villager standing on p, or -1.
func At(states []State, p assets.TilePos) int {
	return slices.IndexFunc(states, func(s State) bool { return s.Position == p })
}
