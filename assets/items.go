package assets

import (
	"fmt"
	"sort"
	"strings"
)

// Item is a static item definition.
type Item struct {
	ID            string
	Name          string
	Category      Category
	Stackable     bool
	MaxStack      int
	SellPrice     int
	Description   string
	Edible        bool
	EnergyRestore int
	Fertilizer    Fertilizer // non-empty for soil treatments
}

// Item ids referenced by game logic.
const (
	ItemWood            = "wood"
	ItemStone           = "stone"
	ItemFiber           = "fiber"
	ItemBasicFertilizer = "basic_fertilizer"
	ItemBread           = "bread"
	ItemSalad           = "salad"
	ItemStardrop        = "stardrop"
	ItemCopperBar       = "copper_bar"
	ItemIronBar         = "iron_bar"
	ItemGoldBar         = "gold_bar"
	ItemIridiumBar      = "iridium_bar"
)

const (
	stackLimit = 999
	toolPrefix = "tool_"
)

// baseItems are the hand-authored entries; crop and seed items are derived.
var baseItems = []Item{
	{ID: ToolItemID(Hoe), Name: "Hoe", Category: CategoryTool, MaxStack: 1, Description: "Tills grass and dirt for planting."},
	{ID: ToolItemID(WateringCan), Name: "Watering Can", Category: CategoryTool, MaxStack: 1, Description: "Waters tilled soil."},
	{ID: ToolItemID(Axe), Name: "Axe", Category: CategoryTool, MaxStack: 1, Description: "Chops wood."},
	{ID: ToolItemID(Pickaxe), Name: "Pickaxe", Category: CategoryTool, MaxStack: 1, Description: "Breaks rocks."},
	{ID: ToolItemID(Scythe), Name: "Scythe", Category: CategoryTool, MaxStack: 1, Description: "Harvests ripe crops without effort."},

	{ID: ItemWood, Name: "Wood", Category: CategoryResource, Stackable: true, MaxStack: stackLimit, SellPrice: 2},
	{ID: ItemStone, Name: "Stone", Category: CategoryResource, Stackable: true, MaxStack: stackLimit, SellPrice: 2},
	{ID: ItemFiber, Name: "Fiber", Category: CategoryResource, Stackable: true, MaxStack: stackLimit, SellPrice: 1},
	{ID: ItemCopperBar, Name: "Copper Bar", Category: CategoryResource, Stackable: true, MaxStack: stackLimit, SellPrice: 60},
	{ID: ItemIronBar, Name: "Iron Bar", Category: CategoryResource, Stackable: true, MaxStack: stackLimit, SellPrice: 120},
	{ID: ItemGoldBar, Name: "Gold Bar", Category: CategoryResource, Stackable: true, MaxStack: stackLimit, SellPrice: 250},
	{ID: ItemIridiumBar, Name: "Iridium Bar", Category: CategoryResource, Stackable: true, MaxStack: stackLimit, SellPrice: 1000},

	{ID: ItemBasicFertilizer, Name: "Basic Fertilizer", Category: CategoryFertilizer, Stackable: true, MaxStack: stackLimit, SellPrice: 2,
		Fertilizer: FertilizerBasic, Description: "Improves the odds of quality crops."},

	{ID: ItemBread, Name: "Bread", Category: CategoryFood, Stackable: true, MaxStack: stackLimit, SellPrice: 60, Edible: true, EnergyRestore: 50},
	{ID: ItemSalad, Name: "Salad", Category: CategoryFood, Stackable: true, MaxStack: stackLimit, SellPrice: 110, Edible: true, EnergyRestore: 113},

	{ID: ItemStardrop, Name: "Stardrop", Category: CategoryMisc, MaxStack: 1, Description: "Permanently raises maximum energy."},
}

// items is the registry, built once at package init.
var items = buildItems()

// buildItems merges the base table with one crop item and one seed item per
// crop definition.
func buildItems() map[string]Item {
	m := make(map[string]Item, len(baseItems)+2*len(crops))
	for _, it := range baseItems {
		m[it.ID] = it
	}
	for _, c := range crops {
		m[c.ID] = Item{
			ID:            c.ID,
			Name:          c.Name,
			Category:      CategoryCrop,
			Stackable:     true,
			MaxStack:      stackLimit,
			SellPrice:     c.SellPrice,
			Edible:        true,
			EnergyRestore: c.SellPrice / 5,
		}
		m[c.SeedID()] = Item{
			ID:          c.SeedID(),
			Name:        c.Name + " Seeds",
			Category:    CategorySeed,
			Stackable:   true,
			MaxStack:    stackLimit,
			SellPrice:   c.SeedPrice / 2,
			Description: fmt.Sprintf("Plant in %s. Takes %d days to mature.", seasonList(c.Seasons), c.TotalDays()),
		}
	}
	return m
}

func seasonList(ss []Season) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// ItemByID looks up an item definition.
func ItemByID(id string) (Item, bool) {
	it, ok := items[id]
	return it, ok
}

// ItemIDs returns every registered item id, sorted.
func ItemIDs() []string {
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ItemName returns the display name for id, or id itself when unknown.
func ItemName(id string) string {
	if it, ok := items[id]; ok {
		return it.Name
	}
	return id
}

// MaxStack returns the stack limit for id. Unknown items do not stack.
func MaxStack(id string) int {
	if it, ok := items[id]; ok && it.MaxStack > 0 {
		return it.MaxStack
	}
	return 1
}

// IsTool reports whether id is a tool item.
func IsTool(id string) bool { return strings.HasPrefix(id, toolPrefix) }

// IsSeed reports whether id is a seed item.
func IsSeed(id string) bool {
	it, ok := items[id]
	return ok && it.Category == CategorySeed
}

// IsEdible reports whether id can be eaten.
func IsEdible(id string) bool {
	it, ok := items[id]
	return ok && it.Edible
}

// EnergyRestore returns the energy restored by eating id.
func EnergyRestore(id string) int {
	if it, ok := items[id]; ok && it.Edible {
		return it.EnergyRestore
	}
	return 0
}

// ToolItemID returns the inventory item id for a tool family.
func ToolItemID(t ToolType) string { return toolPrefix + string(t) }

// ToolTypeOf resolves a tool item id such as "tool_hoe" to its family.
func ToolTypeOf(itemID string) (ToolType, bool) {
	if !IsTool(itemID) {
		return "", false
	}
	t := ToolType(strings.TrimPrefix(itemID, toolPrefix))
	for _, v := range ToolTypes {
		if v == t {
			return t, true
		}
	}
	return "", false
}
