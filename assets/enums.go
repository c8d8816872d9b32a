package assets

// Season is one of the four 28-day seasons.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
	Winter Season = "winter"
)

// Seasons lists the seasons in calendar order.
var Seasons = []Season{Spring, Summer, Fall, Winter}

// Next returns the season that follows s, wrapping winter to spring.
func (s Season) Next() Season {
	for i, v := range Seasons {
		if v == s {
			return Seasons[(i+1)%len(Seasons)]
		}
	}
	return Spring
}

// Valid reports whether s names a known season.
func (s Season) Valid() bool {
	switch s {
	case Spring, Summer, Fall, Winter:
		return true
	}
	return false
}

// Weather is the daily weather roll.
type Weather string

const (
	Sunny  Weather = "sunny"
	Rainy  Weather = "rainy"
	Stormy Weather = "stormy"
)

// IsRain reports whether crops are watered by the sky today.
func (w Weather) IsRain() bool { return w == Rainy || w == Stormy }

// Quality grades a harvested crop.
type Quality string

const (
	Normal  Quality = "normal"
	Silver  Quality = "silver"
	Gold    Quality = "gold"
	Iridium Quality = "iridium"
)

// Multiplier returns the sell-price multiplier for q.
// The empty quality is treated as normal.
func (q Quality) Multiplier() float64 {
	switch q {
	case Silver:
		return 1.25
	case Gold:
		return 1.5
	case Iridium:
		return 2
	}
	return 1
}

// Category groups items for sorting and behaviour.
type Category string

const (
	CategoryTool       Category = "tool"
	CategorySeed       Category = "seed"
	CategoryCrop       Category = "crop"
	CategoryResource   Category = "resource"
	CategoryFood       Category = "food"
	CategoryFertilizer Category = "fertilizer"
	CategoryCrafted    Category = "crafted"
	CategoryMisc       Category = "misc"
)

// categoryOrder is the inventory sort priority; lower sorts first.
var categoryOrder = map[Category]int{
	CategoryTool:       0,
	CategorySeed:       1,
	CategoryCrop:       2,
	CategoryResource:   3,
	CategoryFood:       4,
	CategoryFertilizer: 5,
	CategoryCrafted:    6,
	CategoryMisc:       7,
}

// SortPriority returns the sort rank of c. Unknown categories sort last.
func (c Category) SortPriority() int {
	if p, ok := categoryOrder[c]; ok {
		return p
	}
	return 99
}

// ToolType identifies a tool family.
type ToolType string

const (
	Hoe         ToolType = "hoe"
	WateringCan ToolType = "wateringCan"
	Axe         ToolType = "axe"
	Pickaxe     ToolType = "pickaxe"
	Scythe      ToolType = "scythe"
)

// ToolTypes lists every tool family in hotbar order.
var ToolTypes = []ToolType{Hoe, WateringCan, Axe, Pickaxe, Scythe}

// ToolLevel is a tool's upgrade tier.
type ToolLevel string

const (
	LevelBasic   ToolLevel = "basic"
	LevelCopper  ToolLevel = "copper"
	LevelIron    ToolLevel = "iron"
	LevelGold    ToolLevel = "gold"
	LevelIridium ToolLevel = "iridium"
)

// ToolLevels lists the upgrade tiers from lowest to highest.
var ToolLevels = []ToolLevel{LevelBasic, LevelCopper, LevelIron, LevelGold, LevelIridium}

// Fertilizer is a soil treatment applied before planting.
type Fertilizer string

const (
	FertilizerNone    Fertilizer = ""
	FertilizerBasic   Fertilizer = "basic"
	FertilizerQuality Fertilizer = "quality"
	FertilizerSpeed   Fertilizer = "speed"
)

// TilePos is an integer grid coordinate.
type TilePos struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}
