package store

import (
	"math"

	"valley-farm/assets"
	"valley-farm/internal/energy"
	"valley-farm/internal/gamemap"
)

// Movement tuning in world pixels and seconds.
const (
	PlayerSpeed      = 280.0
	Acceleration     = 2000.0
	Deceleration     = 1500.0
	SprintMultiplier = 1.5
	AnimationSpeed   = 0.15
	movingThreshold  = 1.0
)

// approach moves v toward target by at most step.
func approach(v, target, step float64) float64 {
	if target > v {
		return math.Min(target, v+step)
	}
	if target < v {
		return math.Max(target, v-step)
	}
	return v
}

func clampToMap(x, y float64) (float64, float64) {
	lo := float64(assets.TileSize)
	return math.Max(lo, math.Min(x, float64((assets.FarmWidth-1)*assets.TileSize))),
		math.Max(lo, math.Min(y, float64((assets.FarmHeight-1)*assets.TileSize)))
}

func (s *Store) walkable(x, y float64) bool {
	p := gamemap.TileOf(x, y)
	return s.base.IsWalkable(p.X, p.Y)
}

// step integrates velocity v over dt from the current position. The
// destination tile is the only collision sample. When it is blocked the
// move is retried along each axis alone, zeroing the blocked axis, so the
// player slides along walls. It reports whether the player is moving.
func (s *Store) step(v gamemap.Vec, dt float64) bool {
	p := &s.st.Player
	nx, ny := clampToMap(p.Position.X+v.X*dt, p.Position.Y+v.Y*dt)
	switch {
	case s.walkable(nx, ny):
	case s.walkable(nx, p.Position.Y):
		ny, v.Y = p.Position.Y, 0
	case s.walkable(p.Position.X, ny):
		nx, v.X = p.Position.X, 0
	default:
		p.Velocity = gamemap.Vec{}
		p.IsMoving = false
		return false
	}
	p.Position = gamemap.Vec{X: nx, Y: ny}
	p.Velocity = v
	p.IsMoving = math.Abs(v.X) > movingThreshold || math.Abs(v.Y) > movingThreshold
	return p.IsMoving
}

// MovePlayer eases the velocity toward the held directions and moves the
// player. Diagonals are normalized so they are no faster than straight
// lines. Sprinting drains energy until the player is exhausted. The player
// faces the last direction in dirs.
func (s *Store) MovePlayer(dirs []gamemap.Direction, sprint bool, dt float64) {
	if s.st.Paused || s.st.ActiveUI != UINone || len(dirs) == 0 {
		return
	}
	var tx, ty float64
	for _, d := range dirs {
		dx, dy := d.Vector()
		tx += float64(dx) * PlayerSpeed
		ty += float64(dy) * PlayerSpeed
	}
	if tx != 0 && ty != 0 {
		tx /= math.Sqrt2
		ty /= math.Sqrt2
	}
	if sprint && !s.st.Energy.IsExhausted && (tx != 0 || ty != 0) {
		tx *= SprintMultiplier
		ty *= SprintMultiplier
		s.st.Energy = energy.ConsumeSprint(s.st.Energy, dt)
	}

	p := &s.st.Player
	p.Direction = dirs[len(dirs)-1]
	accel := Acceleration * dt
	v := gamemap.Vec{X: approach(p.Velocity.X, tx, accel), Y: approach(p.Velocity.Y, ty, accel)}
	if s.step(v, dt) {
		s.st.Statistics.StepsWalked++
	}
}

// Coast decelerates the player when no direction is held, keeping the
// current facing.
func (s *Store) Coast(dt float64) {
	if s.st.Paused || s.st.ActiveUI != UINone {
		return
	}
	p := &s.st.Player
	if p.Velocity == (gamemap.Vec{}) {
		p.IsMoving = false
		return
	}
	decel := Deceleration * dt
	v := gamemap.Vec{X: approach(p.Velocity.X, 0, decel), Y: approach(p.Velocity.Y, 0, decel)}
	s.step(v, dt)
}

// UpdateAnimation advances the walk cycle while the player moves.
func (s *Store) UpdateAnimation(dt float64) {
	p := &s.st.Player
	if !p.IsMoving {
		return
	}
	p.AnimationFrame = math.Mod(p.AnimationFrame+AnimationSpeed*dt*60, 4)
}
