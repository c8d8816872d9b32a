package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"valley-farm/assets"
	"valley-farm/internal/energy"
	"valley-farm/internal/gametime"
	"valley-farm/internal/inventory"
	"valley-farm/internal/store"
)

// hotbarKeys labels the hotbar slots with their number-row keys.
var hotbarKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="}

// StatusLine is the first HUD row: clock, date, weather, energy and gold.
func StatusLine(st *store.State) string {
	t := st.Time
	e := st.Energy
	return fmt.Sprintf("%s  %s %d, Year %d  %s  Energy %d/%d (%s)  %dg",
		gametime.Format(t), seasonTitle(t.Season), t.Day, t.Year,
		skyGlyph(t),
		int(e.Current), int(e.Max), energy.StatusOf(e),
		st.Player.Gold)
}

// skyGlyph is the weather glyph, or a moon on a clear night.
func skyGlyph(t gametime.Time) string {
	if gametime.IsNight(t) && t.Weather == assets.Sunny {
		return MoonGlyph
	}
	return WeatherGlyph(t.Weather)
}

func seasonTitle(s assets.Season) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// slotLabel is a short description of a slot for compact lists.
func slotLabel(s inventory.Slot) string {
	if s.Empty() {
		return "·"
	}
	name := assets.ItemName(s.ItemID)
	if s.Quantity > 1 {
		name = fmt.Sprintf("%s x%d", name, s.Quantity)
	}
	if s.Quality != "" && s.Quality != assets.Normal {
		name += " (" + string(s.Quality) + ")"
	}
	return name
}

func (r *Renderer) drawHUD(st *store.State) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)
	status := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if gametime.IsLateNight(st.Time) {
		status = status.Foreground(tcell.ColorRed)
	}
	r.drawText(0, hudY+1, StatusLine(st), status)
	r.drawHotbar(hudY+2, screenW, st)

	// Message log (last 3 messages).
	start := max(0, len(st.Messages)-3)
	for i, msg := range st.Messages[start:] {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHotbar(y, width int, st *store.State) {
	cells := min(inventory.HotbarSize, len(st.Inventory))
	if cells == 0 {
		return
	}
	cellW := max(4, width/cells)
	for i := 0; i < cells; i++ {
		style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
		if i == st.HotbarSelection {
			style = style.Reverse(true)
		}
		label := hotbarKeys[i] + " " + slotLabel(st.Inventory[i])
		r.drawText(i*cellW, y, runewidth.Truncate(label, cellW-1, "…"), style)
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}
