package assets

// Tool is one tier of a tool family.
type Tool struct {
	ID         string
	Name       string
	Type       ToolType
	Level      ToolLevel
	EnergyCost int
	Range      int // tiles affected by a charged swing
}

// defaultToolCost applies to tool ids missing from the table.
const defaultToolCost = 2

var tools = func() map[string]Tool {
	m := make(map[string]Tool)
	add := func(t ToolType, name string, costs, ranges [5]int) {
		for i, lvl := range ToolLevels {
			display := name
			if lvl != LevelBasic {
				display = levelNames[lvl] + " " + name
			}
			id := ToolID(t, lvl)
			m[id] = Tool{ID: id, Name: display, Type: t, Level: lvl, EnergyCost: costs[i], Range: ranges[i]}
		}
	}
	add(Hoe, "Hoe", [5]int{2, 2, 2, 2, 2}, [5]int{1, 3, 5, 9, 18})
	add(WateringCan, "Watering Can", [5]int{2, 2, 2, 2, 2}, [5]int{1, 3, 5, 9, 18})
	add(Axe, "Axe", [5]int{4, 4, 3, 3, 2}, [5]int{1, 1, 1, 1, 1})
	add(Pickaxe, "Pickaxe", [5]int{4, 4, 3, 3, 2}, [5]int{1, 1, 1, 1, 1})
	id := ToolID(Scythe, LevelBasic)
	m[id] = Tool{ID: id, Name: "Scythe", Type: Scythe, Level: LevelBasic, EnergyCost: 0, Range: 1}
	return m
}()

var levelNames = map[ToolLevel]string{
	LevelCopper:  "Copper",
	LevelIron:    "Iron",
	LevelGold:    "Gold",
	LevelIridium: "Iridium",
}

// ToolID returns the table key for a tool tier, e.g. "hoe_copper".
func ToolID(t ToolType, l ToolLevel) string { return string(t) + "_" + string(l) }

// ToolFor looks up the definition of tool family t at level l.
func ToolFor(t ToolType, l ToolLevel) (Tool, bool) {
	tool, ok := tools[ToolID(t, l)]
	return tool, ok
}

// ToolEnergyCost returns the energy a swing of t at level l costs.
func ToolEnergyCost(t ToolType, l ToolLevel) int {
	if tool, ok := ToolFor(t, l); ok {
		return tool.EnergyCost
	}
	return defaultToolCost
}

// ToolUpgrade is the blacksmith price for reaching a tier.
type ToolUpgrade struct {
	Gold  int
	BarID string
	Bars  int
}

var toolUpgrades = map[ToolLevel]ToolUpgrade{
	LevelCopper:  {Gold: 2000, BarID: ItemCopperBar, Bars: 5},
	LevelIron:    {Gold: 5000, BarID: ItemIronBar, Bars: 5},
	LevelGold:    {Gold: 10000, BarID: ItemGoldBar, Bars: 5},
	LevelIridium: {Gold: 25000, BarID: ItemIridiumBar, Bars: 5},
}

// ToolUpgradeCost returns the price of upgrading a tool to level l.
func ToolUpgradeCost(l ToolLevel) (ToolUpgrade, bool) {
	u, ok := toolUpgrades[l]
	return u, ok
}

// NextToolLevel returns the tier after l, or false at the top tier.
func NextToolLevel(l ToolLevel) (ToolLevel, bool) {
	for i, v := range ToolLevels {
		if v == l && i+1 < len(ToolLevels) {
			return ToolLevels[i+1], true
		}
	}
	return "", false
}
