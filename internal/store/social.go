package store

import (
	"fmt"

	"valley-farm/assets"
	"valley-farm/internal/inventory"
	"valley-farm/internal/npc"
	"valley-farm/internal/shop"
)

func npcName(id string) string {
	if def, ok := assets.NPCByID(id); ok {
		return def.Name
	}
	return id
}

func (s *Store) showDialogue(id, text string) {
	s.st.Dialogue = &Dialogue{NPCID: id, Name: npcName(id), Text: text}
	s.SetActiveUI(UIDialogue)
}

// TalkToNPC opens a conversation. The first talk of the day earns heart
// points.
func (s *Store) TalkToNPC(id string) bool {
	i := npc.Index(s.st.NPCs, id)
	if i < 0 {
		return false
	}
	res := npc.Talk(s.st.NPCs[i], s.rng)
	s.st.NPCs[i] = res.State
	s.showDialogue(id, res.Line)
	return true
}

// GiveGift hands one of the selected item to the villager. Refusals still
// open a dialogue explaining why.
func (s *Store) GiveGift(id string) bool {
	i := npc.Index(s.st.NPCs, id)
	if i < 0 {
		return false
	}
	slot := s.st.SelectedSlot()
	if slot.Empty() || assets.IsTool(slot.ItemID) {
		return false
	}
	today := assets.Birthday{Season: s.st.Time.Season, Day: s.st.Time.Day}
	res := npc.Gift(s.st.NPCs[i], slot.ItemID, today)
	if !res.Success {
		s.showDialogue(id, res.Message)
		return false
	}
	s.st.Inventory = inventory.Use(s.st.Inventory, s.st.HotbarSelection).Inventory
	s.st.NPCs[i] = res.State
	s.showDialogue(id, res.Message)
	return true
}

// GiftFacing gifts the selected item to the villager in front of the
// player.
func (s *Store) GiftFacing() bool {
	if !s.worldActive() {
		return false
	}
	i := npc.At(s.st.NPCs, s.st.FacingTile())
	if i < 0 {
		return false
	}
	return s.GiveGift(s.st.NPCs[i].ID)
}

// CloseDialogue dismisses the conversation box.
func (s *Store) CloseDialogue() { s.CloseUI() }

// OpenShop shows the villager's catalog for the current season.
func (s *Store) OpenShop(id string) bool {
	items := shop.Catalog(id, s.st.Time.Season)
	if items == nil {
		return false
	}
	s.st.ShopID = id
	s.st.ShopItems = items
	s.st.ShopSelection = 0
	s.setFlag(FlagShopVisited)
	s.SetActiveUI(UIShop)
	return true
}

// SetShopSelection moves the shop cursor to i.
func (s *Store) SetShopSelection(i int) {
	if i >= 0 && i < len(s.st.ShopItems) {
		s.st.ShopSelection = i
	}
}

// MoveShopSelection moves the shop cursor by delta, wrapping.
func (s *Store) MoveShopSelection(delta int) {
	n := len(s.st.ShopItems)
	if n == 0 {
		return
	}
	s.st.ShopSelection = ((s.st.ShopSelection+delta)%n + n) % n
}

// PurchaseItem buys one of the selected catalog line. Nothing changes
// unless gold, stock, season and backpack space all allow it.
func (s *Store) PurchaseItem() bool {
	if s.st.ActiveUI != UIShop {
		return false
	}
	i := s.st.ShopSelection
	if i < 0 || i >= len(s.st.ShopItems) {
		return false
	}
	it := s.st.ShopItems[i]
	if !shop.CanPurchase(it, s.st.Player.Gold, s.st.Time.Season) {
		s.addMessage("You can't buy that right now.")
		return false
	}
	add := inventory.Add(s.st.Inventory, it.ItemID, 1, "")
	if !add.Success {
		s.addMessage("Your backpack is full.")
		return false
	}
	s.st.Inventory = add.Inventory
	s.st.Player.Gold -= it.Price
	s.st.ShopItems = shop.DecreaseStock(s.st.ShopItems, i)
	s.addMessage(fmt.Sprintf("Bought %s for %dg.", it.Name, it.Price))
	return true
}

// UpgradeBackpack buys the next backpack tier.
func (s *Store) UpgradeBackpack() bool {
	tier, ok := shop.BackpackUpgrade(len(s.st.Inventory), s.st.Player.Gold)
	if !ok {
		return false
	}
	res := inventory.Upgrade(s.st.Inventory, tier.To)
	if !res.Success {
		return false
	}
	s.st.Inventory = res.Inventory
	s.st.Player.Gold -= tier.Price
	s.addMessage(fmt.Sprintf("Your backpack now holds %d items.", tier.To))
	return true
}

// UpgradeTool raises tool one tier, paying gold and metal bars.
func (s *Store) UpgradeTool(tool assets.ToolType) bool {
	u, ok := shop.NextToolUpgrade(tool, s.st.ToolLevels[tool])
	if !ok {
		return false
	}
	bars := inventory.Count(s.st.Inventory, u.Cost.BarID)
	if !shop.CanAffordUpgrade(u, s.st.Player.Gold, bars) {
		return false
	}
	res := inventory.RemoveByID(s.st.Inventory, u.Cost.BarID, u.Cost.Bars)
	if !res.Success {
		return false
	}
	s.st.Inventory = res.Inventory
	s.st.Player.Gold -= u.Cost.Gold
	s.st.ToolLevels[tool] = u.Level
	if t, ok := assets.ToolFor(tool, u.Level); ok {
		s.addMessage("Upgraded to the " + t.Name + ".")
	}
	return true
}
