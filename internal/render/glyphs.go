package render

import (
	"github.com/gdamore/tcell/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"valley-farm/assets"
	"valley-farm/internal/farming"
	"valley-farm/internal/gamemap"
	"valley-farm/internal/gametime"
)

// DefaultGlyphCacheSize bounds the tile glyph cache.
const DefaultGlyphCacheSize = 256

// Glyph is a resolved cell: the text to draw and its style.
type Glyph struct {
	Text  string
	Style tcell.Style
}

// GlyphKey describes everything that decides how a map cell looks.
type GlyphKey struct {
	Kind    gamemap.Kind
	Soil    farming.SoilType
	Watered bool
	CropID  string
	Stage   int
	Ripe    bool
	Period  gametime.Period
}

// GlyphCache memoizes glyph resolution in a bounded LRU.
type GlyphCache struct {
	lru *lru.Cache[GlyphKey, Glyph]
}

// NewGlyphCache returns a cache holding at most size glyphs.
func NewGlyphCache(size int) (*GlyphCache, error) {
	c, err := lru.New[GlyphKey, Glyph](size)
	if err != nil {
		return nil, err
	}
	return &GlyphCache{lru: c}, nil
}

// Get returns the glyph for k, resolving it on a miss.
func (c *GlyphCache) Get(k GlyphKey) Glyph {
	if g, ok := c.lru.Get(k); ok {
		return g
	}
	g := resolveGlyph(k)
	c.lru.Add(k, g)
	return g
}

// Len reports how many glyphs are cached.
func (c *GlyphCache) Len() int { return c.lru.Len() }

// KeyFor builds the cache key for a map cell.
func KeyFor(kind gamemap.Kind, tile farming.Tile, period gametime.Period) GlyphKey {
	k := GlyphKey{Kind: kind, Soil: tile.Type, Watered: tile.IsWatered, Period: period}
	if tile.Crop != nil {
		k.CropID = tile.Crop.CropID
		k.Stage = tile.Crop.CurrentStage
		k.Ripe = tile.Crop.FullyGrown
	}
	return k
}

var kindGlyphs = map[gamemap.Kind]string{
	gamemap.Grass:       "🟩",
	gamemap.Dirt:        "🟫",
	gamemap.Water:       "🟦",
	gamemap.Sand:        "🟨",
	gamemap.WoodFloor:   "🟧",
	gamemap.StoneFloor:  "⬜",
	gamemap.Fence:       "🚧",
	gamemap.Tree:        "🌳",
	gamemap.Rock:        "🪨",
	gamemap.Bush:        "🌿",
	gamemap.House:       "🏠",
	gamemap.Bed:         "🛌",
	gamemap.ShippingBin: "📦",
	gamemap.ShopCounter: "🏪",
}

var cropGlyphs = map[string]string{
	"parsnip":     "🥕",
	"cauliflower": "🥦",
	"potato":      "🥔",
	"strawberry":  "🍓",
	"melon":       "🍈",
	"tomato":      "🍅",
	"corn":        "🌽",
	"pumpkin":     "🎃",
	"eggplant":    "🍆",
	"cranberry":   "🍒",
}

// Background tints by time of day. Emoji keep their own colours, so only
// the background shows the light.
var periodBackground = map[gametime.Period]tcell.Color{
	gametime.Dawn:      tcell.NewRGBColor(60, 40, 50),
	gametime.Morning:   tcell.ColorBlack,
	gametime.Afternoon: tcell.ColorBlack,
	gametime.Evening:   tcell.NewRGBColor(40, 25, 10),
	gametime.Night:     tcell.NewRGBColor(5, 5, 35),
}

func resolveGlyph(k GlyphKey) Glyph {
	style := tcell.StyleDefault.Background(periodBackground[k.Period])
	switch {
	case k.CropID != "" && k.Ripe:
		text, ok := cropGlyphs[k.CropID]
		if !ok {
			text = "🌾"
		}
		return Glyph{Text: text, Style: style}
	case k.CropID != "":
		text := "🌱"
		if k.Stage > 0 {
			text = "🌿"
		}
		if k.Watered {
			style = style.Background(tcell.NewRGBColor(20, 40, 90))
		}
		return Glyph{Text: text, Style: style}
	case k.Soil == farming.Watered:
		return Glyph{Text: "🟦", Style: style}
	case k.Soil == farming.Tilled:
		return Glyph{Text: "🟤", Style: style}
	}
	text, ok := kindGlyphs[k.Kind]
	if !ok {
		text = "⬛"
	}
	return Glyph{Text: text, Style: style}
}

var npcGlyphs = map[string]string{
	"pierre": "👨",
	"robin":  "👩",
}

// NPCGlyph returns the villager's face.
func NPCGlyph(id string) string {
	if g, ok := npcGlyphs[id]; ok {
		return g
	}
	return "🧍"
}

// PlayerGlyph is the farmer.
const PlayerGlyph = "🧑"

// MoonGlyph replaces the sun on clear nights.
const MoonGlyph = "🌙"

// WeatherGlyph returns an icon for w.
func WeatherGlyph(w assets.Weather) string {
	switch w {
	case assets.Rainy:
		return "🌧"
	case assets.Stormy:
		return "⛈"
	}
	return "☀"
}
