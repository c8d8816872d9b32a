package assets

// Crop describes a plantable crop.
type Crop struct {
	ID           string
	Name         string
	Seasons      []Season
	GrowthStages []int // days spent in each stage
	SellPrice    int
	SeedPrice    int
	Regrows      bool
	RegrowDays   int
	HarvestMin   int
	HarvestMax   int
}

// crops is ordered; shop catalogs list seeds in this order.
var crops = []Crop{
	{ID: "parsnip", Name: "Parsnip", Seasons: []Season{Spring}, GrowthStages: []int{1, 1, 1, 1}, SellPrice: 35, SeedPrice: 20, HarvestMin: 1, HarvestMax: 1},
	{ID: "cauliflower", Name: "Cauliflower", Seasons: []Season{Spring}, GrowthStages: []int{1, 2, 4, 4, 1}, SellPrice: 175, SeedPrice: 80, HarvestMin: 1, HarvestMax: 1},
	{ID: "potato", Name: "Potato", Seasons: []Season{Spring}, GrowthStages: []int{1, 1, 1, 2, 1}, SellPrice: 80, SeedPrice: 50, HarvestMin: 1, HarvestMax: 3},
	{ID: "strawberry", Name: "Strawberry", Seasons: []Season{Spring}, GrowthStages: []int{1, 1, 2, 2, 2}, SellPrice: 120, SeedPrice: 100, Regrows: true, RegrowDays: 4, HarvestMin: 1, HarvestMax: 1},
	{ID: "melon", Name: "Melon", Seasons: []Season{Summer}, GrowthStages: []int{1, 2, 3, 3, 3}, SellPrice: 250, SeedPrice: 80, HarvestMin: 1, HarvestMax: 1},
	{ID: "tomato", Name: "Tomato", Seasons: []Season{Summer}, GrowthStages: []int{2, 2, 2, 2, 3}, SellPrice: 60, SeedPrice: 50, Regrows: true, RegrowDays: 4, HarvestMin: 1, HarvestMax: 1},
	{ID: "corn", Name: "Corn", Seasons: []Season{Summer, Fall}, GrowthStages: []int{2, 3, 3, 3, 3}, SellPrice: 50, SeedPrice: 150, Regrows: true, RegrowDays: 4, HarvestMin: 1, HarvestMax: 1},
	{ID: "pumpkin", Name: "Pumpkin", Seasons: []Season{Fall}, GrowthStages: []int{1, 2, 3, 4, 3}, SellPrice: 320, SeedPrice: 100, HarvestMin: 1, HarvestMax: 1},
	{ID: "eggplant", Name: "Eggplant", Seasons: []Season{Fall}, GrowthStages: []int{1, 1, 1, 1, 1}, SellPrice: 60, SeedPrice: 20, Regrows: true, RegrowDays: 5, HarvestMin: 1, HarvestMax: 1},
	{ID: "cranberry", Name: "Cranberries", Seasons: []Season{Fall}, GrowthStages: []int{1, 2, 1, 1, 2}, SellPrice: 75, SeedPrice: 240, Regrows: true, RegrowDays: 5, HarvestMin: 2, HarvestMax: 2},
}

var cropIndex = func() map[string]int {
	m := make(map[string]int, len(crops))
	for i, c := range crops {
		m[c.ID] = i
	}
	return m
}()

// seedSuffix joins a crop id to its seed item id.
const seedSuffix = "_seeds"

// Crops returns every crop definition in table order.
func Crops() []Crop {
	out := make([]Crop, len(crops))
	copy(out, crops)
	return out
}

// CropByID looks up a crop definition.
func CropByID(id string) (Crop, bool) {
	i, ok := cropIndex[id]
	if !ok {
		return Crop{}, false
	}
	return crops[i], true
}

// CropFromSeed resolves a seed item id such as "parsnip_seeds" to its crop.
func CropFromSeed(seedID string) (Crop, bool) {
	if len(seedID) <= len(seedSuffix) || seedID[len(seedID)-len(seedSuffix):] != seedSuffix {
		return Crop{}, false
	}
	return CropByID(seedID[:len(seedID)-len(seedSuffix)])
}

// CropsInSeason returns the crops that grow in s, in table order.
func CropsInSeason(s Season) []Crop {
	var out []Crop
	for _, c := range crops {
		if c.GrowsIn(s) {
			out = append(out, c)
		}
	}
	return out
}

// SeedID returns the seed item id for c.
func (c Crop) SeedID() string { return c.ID + seedSuffix }

// GrowsIn reports whether c can be planted and kept alive in s.
func (c Crop) GrowsIn(s Season) bool {
	for _, v := range c.Seasons {
		if v == s {
			return true
		}
	}
	return false
}

// TotalDays is the number of watered days from seed to harvest.
func (c Crop) TotalDays() int {
	n := 0
	for _, d := range c.GrowthStages {
		n += d
	}
	return n
}

// StageForDay maps days of growth to a stage index. Stage boundaries are the
// cumulative sums of GrowthStages; len(GrowthStages) means fully grown.
func (c Crop) StageForDay(days int) int {
	acc := 0
	for stage, d := range c.GrowthStages {
		acc += d
		if days < acc {
			return stage
		}
	}
	return len(c.GrowthStages)
}
