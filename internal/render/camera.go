package render

import "valley-farm/assets"

// Camera translates between map tiles and screen cells. Each tile is two
// terminal columns wide because emoji occupy two cells.
type Camera struct {
	OffsetX    int // leftmost visible tile
	OffsetY    int // topmost visible tile
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera returns a camera for a viewport of viewW columns by viewH rows.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Resize changes the viewport size.
func (c *Camera) Resize(viewW, viewH int) {
	c.ViewWidth, c.ViewHeight = viewW, viewH
}

// Center puts tile (tx, ty) in the middle of the view, clamped so the view
// does not scroll past the map edges of a mapW by mapH map.
func (c *Camera) Center(tx, ty, mapW, mapH int) {
	cols := c.ViewWidth / 2
	c.OffsetX = clamp(tx-cols/2, 0, max(0, mapW-cols))
	c.OffsetY = clamp(ty-c.ViewHeight/2, 0, max(0, mapH-c.ViewHeight))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// WorldToScreen converts tile (tx, ty) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(tx, ty int) (sx, sy int, visible bool) {
	sx = (tx - c.OffsetX) * 2
	sy = ty - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to a tile.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/2 + c.OffsetX, sy + c.OffsetY
}

// Origin returns the world-pixel position of the top-left screen cell.
func (c *Camera) Origin() (x, y float64) {
	return float64(c.OffsetX * assets.TileSize), float64(c.OffsetY * assets.TileSize)
}
