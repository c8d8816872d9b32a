package store

import (
	"fmt"

	"valley-farm/assets"
	"valley-farm/internal/energy"
	"valley-farm/internal/farming"
	"valley-farm/internal/gamemap"
	"valley-farm/internal/gametime"
	"valley-farm/internal/inventory"
	"valley-farm/internal/npc"
	"valley-farm/internal/shop"
)

func (s *Store) worldActive() bool {
	return s.st.Running && !s.st.Paused && s.st.ActiveUI == UINone
}

// SetHotbarSelection selects hotbar slot i. Out-of-range indexes are
// ignored.
func (s *Store) SetHotbarSelection(i int) {
	if i >= 0 && i < inventory.HotbarSize {
		s.st.HotbarSelection = i
	}
}

// CycleHotbar moves the hotbar cursor by delta, wrapping.
func (s *Store) CycleHotbar(delta int) {
	s.st.HotbarSelection = inventory.CycleHotbar(s.st.HotbarSelection, delta)
}

// AddItem puts qty of itemID into the backpack. Whatever fits is kept.
func (s *Store) AddItem(itemID string, qty int, q assets.Quality) bool {
	res := inventory.Add(s.st.Inventory, itemID, qty, q)
	s.st.Inventory = res.Inventory
	return res.Success
}

// RemoveFromSlot takes qty from slot.
func (s *Store) RemoveFromSlot(slot, qty int) bool {
	res := inventory.Remove(s.st.Inventory, slot, qty)
	s.st.Inventory = res.Inventory
	return res.Success
}

// DiscardSlot throws away the whole stack in slot. Tools are kept.
func (s *Store) DiscardSlot(slot int) bool {
	it := inventory.At(s.st.Inventory, slot)
	if it.Empty() {
		return false
	}
	if _, tool := assets.ToolTypeOf(it.ItemID); tool {
		s.addMessage("You can't throw away your " + assets.ItemName(it.ItemID) + ".")
		return false
	}
	if !s.RemoveFromSlot(slot, it.Quantity) {
		return false
	}
	s.addMessage(fmt.Sprintf("Threw away %d %s.", it.Quantity, assets.ItemName(it.ItemID)))
	return true
}

// SortInventory orders the backpack by category then id.
func (s *Store) SortInventory() { s.st.Inventory = inventory.Sort(s.st.Inventory) }

// SwapSlots exchanges two backpack slots.
func (s *Store) SwapSlots(a, b int) bool {
	res := inventory.Swap(s.st.Inventory, a, b)
	s.st.Inventory = res.Inventory
	return res.Success
}

// UseSelectedItem eats the selected food or drinks a stardrop.
func (s *Store) UseSelectedItem() bool {
	slot := s.st.SelectedSlot()
	switch {
	case slot.Empty():
		return false
	case slot.ItemID == assets.ItemStardrop:
		s.st.Energy = energy.IncreaseMax(s.st.Energy)
		s.addMessage(fmt.Sprintf("Your maximum energy rose to %.0f.", s.st.Energy.Max))
	case assets.IsEdible(slot.ItemID):
		s.st.Energy = energy.ConsumeFood(s.st.Energy, float64(assets.EnergyRestore(slot.ItemID)))
		s.addMessage("You ate the " + assets.ItemName(slot.ItemID) + ".")
	default:
		return false
	}
	s.st.Inventory = inventory.Use(s.st.Inventory, s.st.HotbarSelection).Inventory
	return true
}

// UseTool swings the selected tool at the tile the player faces. Energy is
// spent only when the swing does something. A selected item that is not a
// tool is used on the tile instead.
func (s *Store) UseTool() bool {
	if !s.worldActive() {
		return false
	}
	slot := s.st.SelectedSlot()
	if slot.Empty() {
		return false
	}
	tool, ok := assets.ToolTypeOf(slot.ItemID)
	if !ok {
		return s.InteractWithTile()
	}
	p := s.st.FacingTile()
	if !s.base.InBounds(p.X, p.Y) {
		return false
	}

	var done bool
	switch tool {
	case assets.Hoe:
		if s.base.IsTillable(p.X, p.Y) {
			done = s.applyFarm(farming.Till(s.st.FarmTiles, p.X, p.Y))
		}
	case assets.WateringCan:
		done = s.applyFarm(farming.Water(s.st.FarmTiles, p.X, p.Y))
	case assets.Scythe:
		done = s.harvest(p)
	case assets.Pickaxe:
		done = s.applyFarm(farming.Clear(s.st.FarmTiles, p.X, p.Y))
	}
	if !done {
		return false
	}

	wasExhausted := s.st.Energy.IsExhausted
	cost := assets.ToolEnergyCost(tool, s.st.ToolLevels[tool])
	s.st.Energy = energy.ConsumeTool(s.st.Energy, float64(cost))
	if s.st.Energy.IsExhausted && !wasExhausted {
		s.addMessage("You feel exhausted.")
	}
	return true
}

func (s *Store) applyFarm(r farming.Result) bool {
	if r.Success {
		s.st.FarmTiles = r.Grid
	}
	return r.Success
}

// harvest picks the ripe crop at p. It refuses when the produce would not
// fit in the backpack, leaving the crop in the ground.
func (s *Store) harvest(p assets.TilePos) bool {
	res := farming.Harvest(s.st.FarmTiles, p.X, p.Y, s.rng)
	if !res.Success {
		return false
	}
	pr := res.Produce
	add := inventory.Add(s.st.Inventory, pr.ItemID, pr.Quantity, pr.Quality)
	if add.Remaining > 0 {
		s.addMessage("Your backpack is full.")
		return false
	}
	s.st.Inventory = add.Inventory
	s.st.FarmTiles = res.Grid
	s.st.Statistics.CropsHarvested += pr.Quantity
	s.harvestedToday += pr.Quantity
	if s.setFlag(FlagFirstHarvest) {
		s.addMessage("Your first harvest!")
	}
	s.addMessage(fmt.Sprintf("Harvested %d %s.", pr.Quantity, assets.ItemName(pr.ItemID)))
	return true
}

// InteractWithTile uses the selected item on the facing tile: seeds are
// planted, fertilizer is worked into the soil, and anything else picks a
// ripe crop by hand.
func (s *Store) InteractWithTile() bool {
	if !s.worldActive() {
		return false
	}
	slot := s.st.SelectedSlot()
	p := s.st.FacingTile()

	if !slot.Empty() && assets.IsSeed(slot.ItemID) {
		if !farming.CanPlant(s.st.FarmTiles, p.X, p.Y, slot.ItemID, s.st.Time.Season) {
			return false
		}
		s.st.FarmTiles = farming.Plant(s.st.FarmTiles, p.X, p.Y, slot.ItemID, s.st.Time.Season).Grid
		s.st.Inventory = inventory.Use(s.st.Inventory, s.st.HotbarSelection).Inventory
		return true
	}
	if it, ok := assets.ItemByID(slot.ItemID); ok && it.Fertilizer != assets.FertilizerNone {
		if !s.applyFarm(farming.Fertilize(s.st.FarmTiles, p.X, p.Y, it.Fertilizer)) {
			return false
		}
		s.st.Inventory = inventory.Use(s.st.Inventory, s.st.HotbarSelection).Inventory
		return true
	}
	return s.harvest(p)
}

// Interact handles the thing in front of the player: villagers, the bed
// and the shipping bin. Anything else falls through to InteractWithTile.
func (s *Store) Interact() bool {
	if !s.worldActive() {
		return false
	}
	p := s.st.FacingTile()
	if i := npc.At(s.st.NPCs, p); i >= 0 {
		id := s.st.NPCs[i].ID
		if def, ok := assets.NPCByID(id); ok && def.Shopkeeper && gametime.ShopOpen(s.st.Time) {
			return s.OpenShop(id)
		}
		return s.TalkToNPC(id)
	}
	switch s.base.KindAt(p.X, p.Y) {
	case gamemap.House, gamemap.Bed:
		s.Sleep()
		return true
	case gamemap.ShippingBin:
		slot := s.st.SelectedSlot()
		if slot.Empty() {
			return false
		}
		return s.AddToShippingBin(s.st.HotbarSelection, slot.Quantity)
	}
	return s.InteractWithTile()
}

// AddToShippingBin moves qty from slot into the bin. Items with no sale
// value are refused.
func (s *Store) AddToShippingBin(slot, qty int) bool {
	it := inventory.At(s.st.Inventory, slot)
	if it.Empty() || qty <= 0 || it.Quantity < qty {
		return false
	}
	if shop.ItemSellPrice(it.ItemID, assets.Normal) <= 0 {
		return false
	}
	res := inventory.Remove(s.st.Inventory, slot, qty)
	if !res.Success {
		return false
	}
	s.st.Inventory = res.Inventory
	s.st.ShippingBin = append(s.st.ShippingBin, inventory.Slot{ItemID: it.ItemID, Quantity: qty, Quality: it.Quality})
	s.addMessage(fmt.Sprintf("Shipped %d %s.", qty, assets.ItemName(it.ItemID)))
	return true
}
