// Package farming holds per-tile soil and crop state. Operations are pure:
// they take a Grid and return a Result whose Grid shares every row they did
// not touch. A failed operation returns the input Grid.
package farming

import (
	"math/rand"

	"valley-farm/assets"
)

// SoilType is the worked state of a tile.
type SoilType string

const (
	Grass   SoilType = "grass"
	Dirt    SoilType = "dirt"
	Tilled  SoilType = "tilled"
	Watered SoilType = "watered"
)

// Crop is a planted crop. Grids hold crops by pointer and never mutate one
// in place, so a shared pointer is safe across grid versions.
type Crop struct {
	CropID             string         `json:"cropId" validate:"required"`
	CurrentStage       int            `json:"currentStage" validate:"gte=0"`
	DaysInCurrentStage int            `json:"daysInCurrentStage" validate:"gte=0"`
	Quality            assets.Quality `json:"quality"`
	FullyGrown         bool           `json:"fullyGrown"`
	Harvests           int            `json:"harvests,omitempty"`
}

// Tile is one cell of the farm.
type Tile struct {
	X          int               `json:"x"`
	Y          int               `json:"y"`
	Type       SoilType          `json:"type" validate:"oneof=grass dirt tilled watered"`
	Crop       *Crop             `json:"crop"`
	IsWatered  bool              `json:"isWatered"`
	Fertilizer assets.Fertilizer `json:"fertilizer,omitempty"`
}

func (t Tile) worked() bool { return t.Type == Tilled || t.Type == Watered }

// Grid is indexed [y][x].
type Grid [][]Tile

// Result reports whether an operation applied and the resulting grid.
type Result struct {
	Success bool
	Grid    Grid
}

// NewGrid returns a width by height field of grass.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]Tile, width)
		for x := range g[y] {
			g[y][x] = Tile{X: x, Y: y, Type: Grass}
		}
	}
	return g
}

// At returns the tile at (x, y) and whether it exists.
func (g Grid) At(x, y int) (Tile, bool) {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return Tile{}, false
	}
	return g[y][x], true
}

// with returns a copy of g whose row y is cloned and holds t at x.
func (g Grid) with(t Tile) Grid {
	out := make(Grid, len(g))
	copy(out, g)
	row := make([]Tile, len(g[t.Y]))
	copy(row, g[t.Y])
	row[t.X] = t
	out[t.Y] = row
	return out
}

func fail(g Grid) Result { return Result{Grid: g} }

// CanTill reports whether (x, y) is untilled ground with no crop.
func CanTill(g Grid, x, y int) bool {
	t, ok := g.At(x, y)
	return ok && (t.Type == Grass || t.Type == Dirt) && t.Crop == nil
}

// Till breaks ground at (x, y).
func Till(g Grid, x, y int) Result {
	if !CanTill(g, x, y) {
		return fail(g)
	}
	t := g[y][x]
	t.Type = Tilled
	t.IsWatered = false
	return Result{Success: true, Grid: g.with(t)}
}

// CanWater reports whether (x, y) is worked soil that is still dry.
func CanWater(g Grid, x, y int) bool {
	t, ok := g.At(x, y)
	return ok && t.worked() && !t.IsWatered
}

// Water wets worked soil. Watering a wet tile fails.
func Water(g Grid, x, y int) Result {
	if !CanWater(g, x, y) {
		return fail(g)
	}
	t := g[y][x]
	t.Type = Watered
	t.IsWatered = true
	return Result{Success: true, Grid: g.with(t)}
}

// CanPlant reports whether seedID can go into (x, y) this season.
func CanPlant(g Grid, x, y int, seedID string, season assets.Season) bool {
	t, ok := g.At(x, y)
	if !ok || !t.worked() || t.Crop != nil {
		return false
	}
	c, ok := assets.CropFromSeed(seedID)
	return ok && c.GrowsIn(season)
}

// Plant sows seedID at (x, y).
func Plant(g Grid, x, y int, seedID string, season assets.Season) Result {
	if !CanPlant(g, x, y, seedID, season) {
		return fail(g)
	}
	c, _ := assets.CropFromSeed(seedID)
	t := g[y][x]
	t.Crop = &Crop{CropID: c.ID, Quality: assets.Normal}
	return Result{Success: true, Grid: g.with(t)}
}

// CanFertilize reports whether (x, y) is worked, untreated and unplanted.
func CanFertilize(g Grid, x, y int) bool {
	t, ok := g.At(x, y)
	return ok && t.worked() && t.Fertilizer == assets.FertilizerNone && t.Crop == nil
}

// Fertilize treats the soil at (x, y).
func Fertilize(g Grid, x, y int, f assets.Fertilizer) Result {
	if f == assets.FertilizerNone || !CanFertilize(g, x, y) {
		return fail(g)
	}
	t := g[y][x]
	t.Fertilizer = f
	return Result{Success: true, Grid: g.with(t)}
}

// Clear removes any crop and treatment and returns the tile to grass.
func Clear(g Grid, x, y int) Result {
	t, ok := g.At(x, y)
	if !ok || (t.Type == Grass && t.Crop == nil && t.Fertilizer == assets.FertilizerNone) {
		return fail(g)
	}
	return Result{Success: true, Grid: g.with(Tile{X: x, Y: y, Type: Grass})}
}

// Quality roll thresholds before bonuses.
const (
	iridiumChance   = 0.01
	goldChance      = 0.10
	silverChance    = 0.25
	fertilizerBonus = 0.10
	levelBonus      = 0.02
)

// RollQuality grades a crop from r in [0, 1). Higher tiers are checked
// first; every tier gets the same flat bonus.
func RollQuality(r float64, farmingLevel int, fertilized bool) assets.Quality {
	bonus := levelBonus * float64(farmingLevel)
	if fertilized {
		bonus += fertilizerBonus
	}
	switch {
	case r < iridiumChance+bonus:
		return assets.Iridium
	case r < goldChance+bonus:
		return assets.Gold
	case r < silverChance+bonus:
		return assets.Silver
	}
	return assets.Normal
}

// ProcessDailyGrowth runs the overnight pass: rain waters worked soil,
// out-of-season crops die, watered crops grow, and dry soil is restored
// for the next day unless it rained.
func ProcessDailyGrowth(g Grid, season assets.Season, raining bool, farmingLevel int, rng *rand.Rand) Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		nr := make([]Tile, len(row))
		for x, t := range row {
			nr[x] = growTile(t, season, raining, farmingLevel, rng)
		}
		out[y] = nr
	}
	return out
}

func growTile(t Tile, season assets.Season, raining bool, level int, rng *rand.Rand) Tile {
	if raining && t.worked() {
		t.IsWatered = true
		t.Type = Watered
	}
	if t.Crop != nil {
		def, ok := assets.CropByID(t.Crop.CropID)
		switch {
		case !ok || !def.GrowsIn(season):
			t.Crop = nil
		case t.IsWatered && !t.Crop.FullyGrown:
			t.Crop = grow(*t.Crop, def, t.Fertilizer, level, rng)
		}
	}
	if !raining {
		t.IsWatered = false
		if t.Type == Watered {
			t.Type = Tilled
		}
	}
	return t
}

func grow(c Crop, def assets.Crop, f assets.Fertilizer, level int, rng *rand.Rand) *Crop {
	c.DaysInCurrentStage++
	if f == assets.FertilizerSpeed {
		c.DaysInCurrentStage++
	}
	c.CurrentStage = max(c.CurrentStage, def.StageForDay(c.DaysInCurrentStage))
	if c.CurrentStage >= len(def.GrowthStages) {
		c.CurrentStage = len(def.GrowthStages)
		c.FullyGrown = true
		if c.Harvests == 0 {
			c.Quality = RollQuality(rng.Float64(), level, f != assets.FertilizerNone)
		}
	}
	return &c
}

// Produce is what one harvest action yields.
type Produce struct {
	ItemID   string
	Quantity int
	Quality  assets.Quality
}

// CanHarvest reports whether (x, y) holds a ripe crop.
func CanHarvest(g Grid, x, y int) bool {
	t, ok := g.At(x, y)
	return ok && t.Crop != nil && t.Crop.FullyGrown
}

// HarvestResult carries the new grid and what was picked.
type HarvestResult struct {
	Success bool
	Grid    Grid
	Produce Produce
}

// Harvest picks the ripe crop at (x, y). Regrowing crops drop back two
// stages on their regrow schedule and keep their quality; others leave the
// tile as bare worked soil.
func Harvest(g Grid, x, y int, rng *rand.Rand) HarvestResult {
	if !CanHarvest(g, x, y) {
		return HarvestResult{Grid: g}
	}
	t := g[y][x]
	def, ok := assets.CropByID(t.Crop.CropID)
	if !ok {
		return HarvestResult{Grid: g}
	}
	p := Produce{
		ItemID:   def.ID,
		Quantity: def.HarvestMin + rng.Intn(def.HarvestMax-def.HarvestMin+1),
		Quality:  t.Crop.Quality,
	}
	if def.Regrows {
		c := *t.Crop
		c.CurrentStage = max(0, len(def.GrowthStages)-2)
		c.DaysInCurrentStage = max(0, def.TotalDays()-def.RegrowDays)
		c.FullyGrown = false
		c.Harvests++
		t.Crop = &c
	} else {
		t.Crop = nil
		t.Fertilizer = assets.FertilizerNone
	}
	return HarvestResult{Success: true, Grid: g.with(t), Produce: p}
}
