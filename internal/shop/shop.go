// Package shop builds seasonal catalogs and prices trades.
package shop

import (
	"math"

	"valley-farm/assets"
)

// Unlimited marks a catalog line that never runs out.
const Unlimited = -1

// Item is one purchasable line. Season is empty for goods sold all year.
type Item struct {
	ItemID string        `json:"itemId"`
	Name   string        `json:"name"`
	Price  int           `json:"price"`
	Stock  int           `json:"stock"`
	Season assets.Season `json:"season,omitempty"`
}

// Catalog lists what shopID sells in season: a seed line for every crop
// in season followed by the shop's staples. Unknown shops sell nothing.
func Catalog(shopID string, season assets.Season) []Item {
	def, ok := assets.ShopByID(shopID)
	if !ok {
		return nil
	}
	var out []Item
	if def.SellsSeeds {
		for _, c := range assets.CropsInSeason(season) {
			out = append(out, Item{
				ItemID: c.SeedID(),
				Name:   assets.ItemName(c.SeedID()),
				Price:  c.SeedPrice,
				Stock:  Unlimited,
				Season: season,
			})
		}
	}
	for _, e := range def.Staples {
		out = append(out, Item{
			ItemID: e.ItemID,
			Name:   assets.ItemName(e.ItemID),
			Price:  e.Price,
			Stock:  e.Stock,
			Season: e.Season,
		})
	}
	return out
}

// CanPurchase reports whether gold covers it, it is in stock, and it is
// sold in season.
func CanPurchase(it Item, gold int, season assets.Season) bool {
	if gold < it.Price || it.Stock == 0 {
		return false
	}
	return it.Season == "" || it.Season == season
}

// DecreaseStock takes one unit from line i. Unlimited lines are unchanged.
func DecreaseStock(items []Item, i int) []Item {
	if i < 0 || i >= len(items) || items[i].Stock <= 0 {
		return items
	}
	out := make([]Item, len(items))
	copy(out, items)
	out[i].Stock--
	return out
}

// SellPrice applies the quality multiplier to base, rounding down.
func SellPrice(base int, q assets.Quality) int {
	return int(math.Floor(float64(base) * q.Multiplier()))
}

// ItemSellPrice is the shipping value of one unit of itemID at quality q.
// Unknown items are worth nothing.
func ItemSellPrice(itemID string, q assets.Quality) int {
	it, ok := assets.ItemByID(itemID)
	if !ok {
		return 0
	}
	return SellPrice(it.SellPrice, q)
}

// BackpackUpgrade returns the next backpack tier for size when gold
// covers it.
func BackpackUpgrade(size, gold int) (assets.BackpackTier, bool) {
	for _, t := range assets.BackpackTiers {
		if t.From == size {
			return t, gold >= t.Price
		}
	}
	return assets.BackpackTier{}, false
}

// ToolUpgrade is a priced step up for one tool.
type ToolUpgrade struct {
	Tool  assets.ToolType
	Level assets.ToolLevel
	Cost  assets.ToolUpgrade
}

// NextToolUpgrade returns the upgrade after current for tool, or false
// when the tool is at its top tier.
func NextToolUpgrade(tool assets.ToolType, current assets.ToolLevel) (ToolUpgrade, bool) {
	next, ok := assets.NextToolLevel(current)
	if !ok {
		return ToolUpgrade{}, false
	}
	if _, ok := assets.ToolFor(tool, next); !ok {
		return ToolUpgrade{}, false
	}
	cost, ok := assets.ToolUpgradeCost(next)
	if !ok {
		return ToolUpgrade{}, false
	}
	return ToolUpgrade{Tool: tool, Level: next, Cost: cost}, true
}

// CanAffordUpgrade reports whether gold and bars cover u.
func CanAffordUpgrade(u ToolUpgrade, gold, bars int) bool {
	return gold >= u.Cost.Gold && bars >= u.Cost.Bars
}
