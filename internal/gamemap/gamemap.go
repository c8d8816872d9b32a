package gamemap

import "valley-farm/assets"

// GameMap holds the base terrain for the farm. It is read-only once built;
// soil and crop state live in the farming grid.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
}

// New creates a GameMap filled with grass.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Make(Grass)
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// KindAt returns the kind at (x, y), or Water outside the map.
func (m *GameMap) KindAt(x, y int) Kind {
	if !m.InBounds(x, y) {
		return Water
	}
	return m.Tiles[y][x].Kind
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// IsTillable reports whether the base terrain at (x, y) accepts a hoe.
func (m *GameMap) IsTillable(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x].Kind.Tillable()
}

func (m *GameMap) fill(x1, y1, x2, y2 int, k Kind) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			m.Set(x, y, Make(k))
		}
	}
}

func (m *GameMap) outline(x1, y1, x2, y2 int, k Kind) {
	for x := x1; x <= x2; x++ {
		m.Set(x, y1, Make(k))
		m.Set(x, y2, Make(k))
	}
	for y := y1; y <= y2; y++ {
		m.Set(x1, y, Make(k))
		m.Set(x2, y, Make(k))
	}
}

// Fenced field the player is expected to farm, inclusive of the fence.
var fieldBounds = struct{ X1, Y1, X2, Y2 int }{5, 10, 25, 25}

// NewFarm builds the standard farm layout. It matches assets.FarmTMX.
func NewFarm() *GameMap {
	m := New(assets.FarmWidth, assets.FarmHeight)
	m.outline(0, 0, m.Width-1, m.Height-1, Water)

	// house and shipping bin
	m.fill(2, 2, 7, 6, House)
	m.fill(3, 3, 6, 5, WoodFloor)
	m.fill(9, 5, 10, 6, ShippingBin)
	m.fill(2, 7, 10, 7, Dirt)

	m.outline(fieldBounds.X1, fieldBounds.Y1, fieldBounds.X2, fieldBounds.Y2, Fence)

	pond := []struct{ y, x1, x2 int }{
		{22, 35, 35}, {23, 33, 37}, {24, 33, 37}, {25, 32, 39},
		{26, 33, 37}, {27, 33, 37}, {28, 35, 35},
	}
	for _, r := range pond {
		m.fill(r.x1, r.y, r.x2, r.y, Water)
	}
	for _, p := range []assets.TilePos{{35, 4}, {30, 5}, {32, 8}, {33, 12}, {36, 15}, {3, 20}, {28, 20}, {31, 22}, {2, 24}} {
		m.Set(p.X, p.Y, Make(Tree))
	}
	for _, p := range []assets.TilePos{{15, 8}, {20, 9}, {22, 18}, {12, 20}} {
		m.Set(p.X, p.Y, Make(Rock))
	}
	return m
}

// InFarmableArea reports whether (x, y) lies inside the fenced field.
func InFarmableArea(x, y int) bool {
	return x > fieldBounds.X1 && x < fieldBounds.X2 && y > fieldBounds.Y1 && y < fieldBounds.Y2
}

// PlayerStart is the world-space spawn point, centred on tile (5, 8).
func PlayerStart() (x, y float64) {
	return 5*assets.TileSize + assets.TileSize/2, 8*assets.TileSize + assets.TileSize/2
}
