package assets

import "testing"

func TestDerivedItemsExistForEveryCrop(t *testing.T) {
	for _, c := range Crops() {
		crop, ok := ItemByID(c.ID)
		if !ok {
			t.Fatalf("crop item %q missing", c.ID)
		}
		if crop.Category != CategoryCrop || !crop.Edible {
			t.Errorf("%s: category=%s edible=%v", c.ID, crop.Category, crop.Edible)
		}
		if crop.EnergyRestore != c.SellPrice/5 {
			t.Errorf("%s: restore=%d want %d", c.ID, crop.EnergyRestore, c.SellPrice/5)
		}
		seed, ok := ItemByID(c.SeedID())
		if !ok {
			t.Fatalf("seed item %q missing", c.SeedID())
		}
		if seed.Category != CategorySeed || seed.SellPrice != c.SeedPrice/2 {
			t.Errorf("%s: seed category=%s price=%d", seed.ID, seed.Category, seed.SellPrice)
		}
	}
}

func TestStageForDayUsesCumulativeThresholds(t *testing.T) {
	cauli, _ := CropByID("cauliflower") // [1,2,4,4,1]
	cases := []struct {
		days, want int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{6, 2},
		{7, 3},
		{11, 4},
		{12, 5},
		{40, 5},
	}
	for _, c := range cases {
		if got := cauli.StageForDay(c.days); got != c.want {
			t.Errorf("StageForDay(%d) = %d, want %d", c.days, got, c.want)
		}
	}
}

func TestCropFromSeed(t *testing.T) {
	if c, ok := CropFromSeed("parsnip_seeds"); !ok || c.ID != "parsnip" {
		t.Errorf("parsnip_seeds -> %v %v", c.ID, ok)
	}
	for _, bad := range []string{"parsnip", "_seeds", "rutabaga_seeds", ""} {
		if _, ok := CropFromSeed(bad); ok {
			t.Errorf("CropFromSeed(%q) should fail", bad)
		}
	}
}

func TestCropsInSeason(t *testing.T) {
	fall := CropsInSeason(Fall)
	want := []string{"corn", "pumpkin", "eggplant", "cranberry"}
	if len(fall) != len(want) {
		t.Fatalf("got %d fall crops, want %d", len(fall), len(want))
	}
	for i, c := range fall {
		if c.ID != want[i] {
			t.Errorf("fall[%d] = %s, want %s", i, c.ID, want[i])
		}
	}
	if len(CropsInSeason(Winter)) != 0 {
		t.Error("nothing grows in winter")
	}
}

func TestMaxStackDefaults(t *testing.T) {
	if MaxStack("tool_hoe") != 1 {
		t.Error("tools do not stack")
	}
	if MaxStack("wood") != 999 {
		t.Error("wood stacks to 999")
	}
	if MaxStack("no_such_item") != 1 {
		t.Error("unknown items default to 1")
	}
}

func TestToolLookups(t *testing.T) {
	cases := []struct {
		tool ToolType
		lvl  ToolLevel
		cost int
	}{
		{Hoe, LevelBasic, 2},
		{WateringCan, LevelIridium, 2},
		{Axe, LevelBasic, 4},
		{Axe, LevelIron, 3},
		{Pickaxe, LevelIridium, 2},
		{Scythe, LevelBasic, 0},
		{Scythe, LevelGold, 2}, // missing tier falls back to the default
	}
	for _, c := range cases {
		if got := ToolEnergyCost(c.tool, c.lvl); got != c.cost {
			t.Errorf("ToolEnergyCost(%s,%s) = %d, want %d", c.tool, c.lvl, got, c.cost)
		}
	}
	if tt, ok := ToolTypeOf("tool_wateringCan"); !ok || tt != WateringCan {
		t.Errorf("ToolTypeOf(tool_wateringCan) = %v %v", tt, ok)
	}
	if _, ok := ToolTypeOf("tool_fishingRod"); ok {
		t.Error("unknown tool family should not resolve")
	}
	if next, ok := NextToolLevel(LevelGold); !ok || next != LevelIridium {
		t.Errorf("NextToolLevel(gold) = %v %v", next, ok)
	}
	if _, ok := NextToolLevel(LevelIridium); ok {
		t.Error("iridium is the top tier")
	}
}

func TestEmbeddedNPCTable(t *testing.T) {
	pierre, ok := NPCByID("pierre")
	if !ok {
		t.Fatal("pierre missing")
	}
	if !pierre.Shopkeeper || pierre.Home != (TilePos{X: 12, Y: 4}) {
		t.Errorf("pierre = %+v", pierre)
	}
	robin, _ := NPCByID("robin")
	if len(robin.Schedule) != 4 || robin.Schedule[1].Hour != 10 {
		t.Errorf("robin schedule = %+v", robin.Schedule)
	}
	levels := robin.HeartThresholds()
	if len(levels) != 5 || levels[0] != 10 || levels[4] != 2 {
		t.Errorf("thresholds = %v", levels)
	}
}

func TestParseNPCsRejectsBadTables(t *testing.T) {
	cases := map[string]string{
		"duplicate": `
- {id: a, greetings: [hi], lines: [x]}
- {id: a, greetings: [hi], lines: [x]}`,
		"unsorted schedule": `
- id: a
  greetings: [hi]
  lines: [x]
  schedule: [{hour: 10, x: 1, y: 1}, {hour: 6, x: 1, y: 1}]`,
		"no lines": `
- {id: a, greetings: [hi]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseNPCs([]byte(doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
