// Package render draws the farm, its villagers and the HUD onto a tcell
// screen. Map tiles are emoji, two terminal columns each.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"valley-farm/internal/gamemap"
	"valley-farm/internal/gametime"
	"valley-farm/internal/store"
)

// HUDHeight is the number of rows reserved below the map.
const HUDHeight = 6

// Renderer draws game state onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	glyphs *GlyphCache
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) (*Renderer, error) {
	glyphs, err := NewGlyphCache(DefaultGlyphCacheSize)
	if err != nil {
		return nil, err
	}
	r := &Renderer{screen: screen, glyphs: glyphs, camera: NewCamera(0, 0)}
	r.Resize()
	return r, nil
}

// Resize refits the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(0, h-HUDHeight))
}

// Camera exposes the viewport so input can map clicks to the world.
func (r *Renderer) Camera() *Camera { return r.camera }

// Draw renders one frame of st over m and shows it.
func (r *Renderer) Draw(st *store.State, m *gamemap.GameMap) {
	r.screen.Clear()
	p := gamemap.TileOf(st.Player.Position.X, st.Player.Position.Y)
	r.camera.Center(p.X, p.Y, m.Width, m.Height)

	r.drawMap(st, m)
	r.drawNPCs(st)
	r.drawPlayer(st)
	r.drawHUD(st)
	r.drawPanel(st)
	r.screen.Show()
}

func (r *Renderer) drawMap(st *store.State, m *gamemap.GameMap) {
	period := gametime.PeriodOf(st.Time)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			tile, _ := st.FarmTiles.At(x, y)
			g := r.glyphs.Get(KeyFor(m.KindAt(x, y), tile, period))
			r.putGlyph(sx, sy, g.Text, g.Style)
		}
	}
}

func (r *Renderer) drawNPCs(st *store.State) {
	style := tcell.StyleDefault.Background(periodBackground[gametime.PeriodOf(st.Time)])
	for _, n := range st.NPCs {
		sx, sy, onScreen := r.camera.WorldToScreen(n.Position.X, n.Position.Y)
		if !onScreen {
			continue
		}
		r.putGlyph(sx, sy, NPCGlyph(n.ID), style)
	}
}

func (r *Renderer) drawPlayer(st *store.State) {
	p := gamemap.TileOf(st.Player.Position.X, st.Player.Position.Y)
	sx, sy, onScreen := r.camera.WorldToScreen(p.X, p.Y)
	if !onScreen {
		return
	}
	style := tcell.StyleDefault.Background(periodBackground[gametime.PeriodOf(st.Time)])
	r.putGlyph(sx, sy, PlayerGlyph, style)

	// A faint marker on the tile tools will hit.
	f := st.FacingTile()
	if fx, fy, ok := r.camera.WorldToScreen(f.X, f.Y); ok && st.ActiveUI == store.UINone {
		mainc, combc, _, _ := r.screen.GetContent(fx, fy)
		r.screen.SetContent(fx, fy, mainc, combc, style.Underline(true))
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
