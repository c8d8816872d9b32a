package inventory

import (
	"testing"

	"valley-farm/assets"
)

func checkInvariants(t *testing.T, inv Inventory) {
	t.Helper()
	for i, s := range inv {
		if (s.Quantity > 0) != (s.ItemID != "") {
			t.Errorf("slot %d: id=%q qty=%d", i, s.ItemID, s.Quantity)
		}
		if s.ItemID != "" && s.Quantity > assets.MaxStack(s.ItemID) {
			t.Errorf("slot %d: %d %s exceeds max stack", i, s.Quantity, s.ItemID)
		}
	}
}

func TestStarting(t *testing.T) {
	inv := Starting()
	if len(inv) != SmallSize {
		t.Fatalf("size %d", len(inv))
	}
	if inv[0].ItemID != "tool_hoe" || inv[4].ItemID != "tool_scythe" {
		t.Errorf("tools: %+v", inv[:5])
	}
	if inv[5] != (Slot{ItemID: "parsnip_seeds", Quantity: 15}) {
		t.Errorf("seeds: %+v", inv[5])
	}
	checkInvariants(t, inv)
}

func TestAddTopsUpThenFills(t *testing.T) {
	inv := New(3)
	inv[1] = Slot{ItemID: "wood", Quantity: 990}
	r := Add(inv, "wood", 20, "")
	if !r.Success || r.Remaining != 0 {
		t.Fatalf("add: %+v", r)
	}
	if r.Inventory[1].Quantity != 999 || r.Inventory[0] != (Slot{ItemID: "wood", Quantity: 11}) {
		t.Errorf("got %+v", r.Inventory)
	}
	if inv[1].Quantity != 990 {
		t.Error("input inventory mutated")
	}
	checkInvariants(t, r.Inventory)
}

func TestAddKeepsQualitiesApart(t *testing.T) {
	inv := New(2)
	inv = Add(inv, "parsnip", 3, assets.Normal).Inventory
	inv = Add(inv, "parsnip", 2, assets.Gold).Inventory
	if inv[0].Quantity != 3 || inv[1].Quality != assets.Gold || inv[1].Quantity != 2 {
		t.Errorf("got %+v", inv)
	}
}

func TestAddPartialWhenFull(t *testing.T) {
	inv := New(1)
	inv[0] = Slot{ItemID: "stone", Quantity: 995}
	r := Add(inv, "stone", 10, "")
	if !r.Success || r.Remaining != 6 || r.Inventory[0].Quantity != 999 {
		t.Errorf("partial: %+v", r)
	}
	r = Add(r.Inventory, "stone", 1, "")
	if r.Success || r.Remaining != 1 {
		t.Errorf("full: %+v", r)
	}
}

func TestToolsNeverStack(t *testing.T) {
	inv := New(3)
	inv[0] = Slot{ItemID: "tool_axe", Quantity: 1}
	r := Add(inv, "tool_axe", 1, "")
	if !r.Success || r.Inventory[0].Quantity != 1 || r.Inventory[1].ItemID != "tool_axe" {
		t.Errorf("got %+v", r.Inventory)
	}
	full := Inventory{{ItemID: "wood", Quantity: 1}}
	r = Add(full, "tool_hoe", 1, "")
	if r.Success || r.Remaining != 1 || &r.Inventory[0] != &full[0] {
		t.Errorf("tool into full backpack: %+v", r)
	}
}

func TestRemove(t *testing.T) {
	inv := Inventory{{ItemID: "bread", Quantity: 2}}
	r := Remove(inv, 0, 3)
	if r.Success {
		t.Error("removing more than held must fail")
	}
	r = Remove(inv, 0, 2)
	if !r.Success || !r.Inventory[0].Empty() || r.Inventory[0].Quantity != 0 {
		t.Errorf("got %+v", r)
	}
	if Remove(inv, 5, 1).Success {
		t.Error("out of range slot")
	}
}

func TestRemoveByIDIsAtomic(t *testing.T) {
	inv := Inventory{
		{ItemID: "corn", Quantity: 3},
		{ItemID: "wood", Quantity: 1},
		{ItemID: "corn", Quantity: 2, Quality: assets.Silver},
	}
	if r := RemoveByID(inv, "corn", 6); r.Success || Count(r.Inventory, "corn") != 5 {
		t.Errorf("overdraw: %+v", r)
	}
	r := RemoveByID(inv, "corn", 4)
	if !r.Success {
		t.Fatal("remove 4 corn")
	}
	if !r.Inventory[0].Empty() || r.Inventory[2].Quantity != 1 {
		t.Errorf("got %+v", r.Inventory)
	}
	checkInvariants(t, r.Inventory)
}

func TestSwapAndUpgrade(t *testing.T) {
	inv := Starting()
	r := Swap(inv, 0, 11)
	if !r.Success || r.Inventory[11].ItemID != "tool_hoe" || !r.Inventory[0].Empty() {
		t.Errorf("swap: %+v", r.Inventory)
	}
	u := Upgrade(inv, MediumSize)
	if !u.Success || len(u.Inventory) != MediumSize || u.Inventory[5].ItemID != "parsnip_seeds" {
		t.Errorf("upgrade: %d slots", len(u.Inventory))
	}
	if Upgrade(u.Inventory, SmallSize).Success {
		t.Error("shrinking must fail")
	}
}

func TestSortByCategoryThenID(t *testing.T) {
	inv := Inventory{
		{},
		{ItemID: "bread", Quantity: 1},
		{ItemID: "wood", Quantity: 5},
		{ItemID: "parsnip", Quantity: 2},
		{},
		{ItemID: "corn_seeds", Quantity: 1},
		{ItemID: "tool_hoe", Quantity: 1},
		{ItemID: "basic_fertilizer", Quantity: 1},
		{ItemID: "melon_seeds", Quantity: 1},
	}
	got := Sort(inv)
	want := []string{"tool_hoe", "corn_seeds", "melon_seeds", "parsnip", "wood", "bread", "basic_fertilizer", "", ""}
	for i, id := range want {
		if got[i].ItemID != id {
			t.Errorf("slot %d = %q, want %q", i, got[i].ItemID, id)
		}
	}
}

func TestCountsAndHotbar(t *testing.T) {
	inv := Starting()
	if CountEmpty(inv) != 6 || IsFull(inv) {
		t.Errorf("empty = %d", CountEmpty(inv))
	}
	if !Has(inv, "parsnip_seeds", 15) || Has(inv, "parsnip_seeds", 16) {
		t.Error("Has")
	}
	if CycleHotbar(11, 1) != 0 || CycleHotbar(0, -1) != 11 || CycleHotbar(3, 2) != 5 {
		t.Error("CycleHotbar wraps")
	}
	if At(inv, 99) != (Slot{}) {
		t.Error("At out of range")
	}
}
