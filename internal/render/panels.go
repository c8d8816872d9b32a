package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"valley-farm/assets"
	"valley-farm/internal/inventory"
	"valley-farm/internal/shop"
	"valley-farm/internal/store"
)

var (
	panelStyle  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	titleStyle  = panelStyle.Bold(true).Foreground(tcell.ColorYellow)
	hintStyle   = panelStyle.Foreground(tcell.ColorSilver)
	cursorStyle = panelStyle.Reverse(true)
)

func (r *Renderer) drawPanel(st *store.State) {
	switch st.ActiveUI {
	case store.UIInventory:
		r.drawInventory(st)
	case store.UIShop:
		r.drawShop(st)
	case store.UIDialogue:
		r.drawDialogue(st)
	case store.UIMenu:
		r.drawMenu()
	case store.UISleep:
		r.drawSleep(st)
	}
}

// box fills a w by h panel centred in the map area and returns its inner
// top-left corner.
func (r *Renderer) box(w, h int, title string) (x, y int) {
	screenW, screenH := r.screen.Size()
	w = min(w, screenW)
	h = min(h, max(3, screenH-HUDHeight))
	x0 := max(0, (screenW-w)/2)
	y0 := max(0, (screenH-HUDHeight-h)/2)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			ch := ' '
			switch {
			case (y == y0 || y == y0+h-1) && (x == x0 || x == x0+w-1):
				ch = '+'
			case y == y0 || y == y0+h-1:
				ch = '─'
			case x == x0 || x == x0+w-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, nil, panelStyle)
		}
	}
	if title != "" {
		r.drawText(x0+2, y0, " "+title+" ", titleStyle)
	}
	return x0 + 2, y0 + 1
}

func (r *Renderer) drawInventory(st *store.State) {
	const cols, cellW = 3, 26
	rows := (len(st.Inventory) + cols - 1) / cols
	x, y := r.box(cols*cellW+4, rows+6, "Inventory")
	for i, s := range st.Inventory {
		style := panelStyle
		if i == st.InventoryCursor {
			style = cursorStyle
		}
		label := runewidth.Truncate(fmt.Sprintf("%2d %s", i+1, slotLabel(s)), cellW-1, "…")
		r.drawText(x+(i%cols)*cellW, y+i/cols, label, style)
	}
	y += rows + 1
	if it, ok := assets.ItemByID(inventory.At(st.Inventory, st.InventoryCursor).ItemID); ok {
		r.drawText(x, y, runewidth.Truncate(it.Description, cols*cellW, "…"), panelStyle)
	}
	r.drawText(x, y+2, "arrows move  enter swap  o sort  c eat  x discard  esc close", hintStyle)
}

func (r *Renderer) drawShop(st *store.State) {
	name := st.ShopID
	if def, ok := assets.ShopByID(st.ShopID); ok {
		name = def.Name
	}
	x, y := r.box(60, len(st.ShopItems)+9, name)
	for i, it := range st.ShopItems {
		style := panelStyle
		if i == st.ShopSelection {
			style = cursorStyle
		}
		stock := "∞"
		if it.Stock != shop.Unlimited {
			stock = fmt.Sprint(it.Stock)
		}
		r.drawText(x, y+i, fmt.Sprintf("%-30s %6dg  %4s", it.Name, it.Price, stock), style)
	}
	y += len(st.ShopItems) + 1
	r.drawText(x, y, fmt.Sprintf("Gold: %dg", st.Player.Gold), panelStyle)
	if tier, ok := nextBackpack(len(st.Inventory)); ok {
		r.drawText(x, y+1, fmt.Sprintf("b  Backpack %d slots: %dg", tier.To, tier.Price), panelStyle)
	}
	if tool, ok := assets.ToolTypeOf(st.SelectedSlot().ItemID); ok {
		if u, ok := shop.NextToolUpgrade(tool, st.ToolLevels[tool]); ok {
			r.drawText(x, y+2, fmt.Sprintf("u  %s %s: %dg + %d %s", u.Level, tool, u.Cost.Gold, u.Cost.Bars,
				assets.ItemName(u.Cost.BarID)), panelStyle)
		}
	}
	r.drawText(x, y+4, "up/down choose  enter buy  esc leave", hintStyle)
}

// nextBackpack returns the upgrade available from size, ignoring price.
func nextBackpack(size int) (assets.BackpackTier, bool) {
	for _, t := range assets.BackpackTiers {
		if t.From == size {
			return t, true
		}
	}
	return assets.BackpackTier{}, false
}

func (r *Renderer) drawDialogue(st *store.State) {
	d := st.Dialogue
	if d == nil {
		return
	}
	const width = 56
	lines := strings.Split(runewidth.Wrap(d.Text, width-4), "\n")
	x, y := r.box(width, len(lines)+4, NPCGlyph(d.NPCID)+" "+d.Name)
	for i, line := range lines {
		r.drawText(x, y+i, line, panelStyle)
	}
	r.drawText(x, y+len(lines)+1, "enter to continue", hintStyle)
}

func (r *Renderer) drawMenu() {
	x, y := r.box(30, 8, "Menu")
	for i, line := range []string{"s  Save", "l  Load", "q  Quit", "esc  Resume"} {
		r.drawText(x, y+i, line, panelStyle)
	}
}

// SleepLines summarizes the last day for the sleep screen.
func SleepLines(d store.DaySummary) []string {
	head := "You slept well."
	if d.Forced {
		head = "You passed out and were carried home."
	}
	return []string{
		head,
		fmt.Sprintf("Day %d of %s, year %d is over.", d.Day, d.Season, d.Year),
		fmt.Sprintf("Shipped: %dg", d.Earnings),
		fmt.Sprintf("Crops harvested today: %d", d.CropsHarvested),
		fmt.Sprintf("Tomorrow: %s %s", WeatherGlyph(d.NextWeather), d.NextWeather),
		fmt.Sprintf("Gold: %dg  Energy: %d", d.Gold, int(d.EnergyAfter)),
	}
}

func (r *Renderer) drawSleep(st *store.State) {
	lines := SleepLines(st.LastDay)
	x, y := r.box(50, len(lines)+4, "Good night")
	for i, line := range lines {
		r.drawText(x, y+i, line, panelStyle)
	}
	r.drawText(x, y+len(lines)+1, "enter to wake up", hintStyle)
}

// DrawTitle renders the start screen. hasSave offers the continue option.
func (r *Renderer) DrawTitle(hasSave bool) {
	r.screen.Clear()
	x, y := r.box(40, 9, "")
	r.drawText(x, y, "🌱 Valley Farm", titleStyle)
	r.drawText(x, y+2, "n  New game", panelStyle)
	if hasSave {
		r.drawText(x, y+3, "c  Continue", panelStyle)
	}
	r.drawText(x, y+4, "q  Quit", panelStyle)
	r.screen.Show()
}
