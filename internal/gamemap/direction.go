package gamemap

import (
	"math"

	"valley-farm/assets"
)

// Direction is the way the player or an NPC faces.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Vector returns the unit step for d. Unknown directions face down.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 1
}

// TileOf converts a world position to the tile containing it.
func TileOf(x, y float64) assets.TilePos {
	return assets.TilePos{
		X: int(math.Floor(x / assets.TileSize)),
		Y: int(math.Floor(y / assets.TileSize)),
	}
}

// FacingTile returns the tile one step from the world position in d.
func FacingTile(x, y float64, d Direction) assets.TilePos {
	p := TileOf(x, y)
	dx, dy := d.Vector()
	return assets.TilePos{X: p.X + dx, Y: p.Y + dy}
}

// Vec is a world-space position or velocity in pixels.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
