package store

import (
	"valley-farm/assets"
	"valley-farm/internal/gamemap"
	"valley-farm/internal/inventory"
)

// Input is the frame-scoped view of the keyboard and mouse that Update
// consumes. *input.State implements it.
type Input interface {
	Directions() []gamemap.Direction
	Sprinting() bool
	NavPressed() (gamemap.Direction, bool)
	ActionPressed() bool
	EscapePressed() bool
	InventoryPressed() bool
	InteractPressed() bool
	GiftPressed() bool
	HotbarCycle() int
	HotbarSelection() (int, bool)
	RunePressed(r rune) bool
	MouseJustClicked() bool
	EndFrame()
}

// Keys read as runes.
const (
	KeyEat     = 'c'
	KeySort    = 'o'
	KeySave    = 's'
	KeyLoad    = 'l'
	KeyQuit    = 'q'
	KeyBag     = 'b'
	KeyUpgrade = 'u'
	KeyTrash   = 'x'
)

// Update runs one fixed step of the controller: it reads this frame's
// input, applies it to the open screen or the world, then advances the
// clock. One-shot input is consumed at the end of the step.
func (s *Store) Update(in Input, dt float64) {
	defer in.EndFrame()
	if !s.st.Running {
		return
	}
	if s.st.ActiveUI != UINone {
		s.updateUI(in)
		return
	}

	switch {
	case in.EscapePressed():
		s.SetActiveUI(UIMenu)
		return
	case in.InventoryPressed():
		s.st.InventoryCursor = s.st.HotbarSelection
		s.SetActiveUI(UIInventory)
		return
	}

	if i, ok := in.HotbarSelection(); ok {
		s.SetHotbarSelection(i)
	}
	if d := in.HotbarCycle(); d != 0 {
		s.CycleHotbar(d)
	}

	if dirs := in.Directions(); len(dirs) > 0 {
		s.MovePlayer(dirs, in.Sprinting(), dt)
	} else {
		s.Coast(dt)
	}
	s.UpdateAnimation(dt)

	switch {
	case in.InteractPressed():
		s.Interact()
	case in.GiftPressed():
		s.GiftFacing()
	case in.RunePressed(KeyEat):
		s.UseSelectedItem()
	case in.ActionPressed(), in.MouseJustClicked():
		s.UseTool()
	}

	s.UpdateGameTime(dt)
}

func (s *Store) updateUI(in Input) {
	switch s.st.ActiveUI {
	case UIDialogue:
		if in.EscapePressed() || in.ActionPressed() || in.MouseJustClicked() {
			s.CloseDialogue()
		}
	case UISleep:
		if in.EscapePressed() || in.ActionPressed() || in.MouseJustClicked() {
			s.CloseUI()
		}
	case UIShop:
		s.updateShop(in)
	case UIInventory:
		s.updateInventory(in)
	case UIMenu:
		switch {
		case in.EscapePressed():
			s.CloseUI()
		case in.RunePressed(KeySave):
			s.Save()
		case in.RunePressed(KeyLoad):
			if s.Load() {
				s.CloseUI()
			}
		case in.RunePressed(KeyQuit):
			s.RequestQuit()
		}
	default:
		if in.EscapePressed() {
			s.CloseUI()
		}
	}
}

func (s *Store) updateShop(in Input) {
	if in.EscapePressed() {
		s.CloseUI()
		return
	}
	if d, ok := in.NavPressed(); ok {
		switch d {
		case gamemap.Up:
			s.MoveShopSelection(-1)
		case gamemap.Down:
			s.MoveShopSelection(1)
		}
	}
	switch {
	case in.ActionPressed():
		s.PurchaseItem()
	case in.RunePressed(KeyBag):
		s.UpgradeBackpack()
	case in.RunePressed(KeyUpgrade):
		if tool, ok := assets.ToolTypeOf(s.st.SelectedSlot().ItemID); ok {
			s.UpgradeTool(tool)
		}
	}
}

func (s *Store) updateInventory(in Input) {
	if in.EscapePressed() || in.InventoryPressed() {
		s.CloseUI()
		return
	}
	n := len(s.st.Inventory)
	if d, ok := in.NavPressed(); ok && n > 0 {
		step := map[gamemap.Direction]int{
			gamemap.Left:  -1,
			gamemap.Right: 1,
			gamemap.Up:    -inventory.HotbarSize,
			gamemap.Down:  inventory.HotbarSize,
		}[d]
		s.st.InventoryCursor = ((s.st.InventoryCursor+step)%n + n) % n
	}
	switch {
	case in.ActionPressed():
		// Move the slot under the cursor into the selected hotbar slot.
		s.SwapSlots(s.st.InventoryCursor, s.st.HotbarSelection)
	case in.RunePressed(KeySort):
		s.SortInventory()
	case in.RunePressed(KeyTrash):
		s.DiscardSlot(s.st.InventoryCursor)
	case in.RunePressed(KeyEat):
		if s.st.InventoryCursor < inventory.HotbarSize {
			s.st.HotbarSelection = s.st.InventoryCursor
			s.UseSelectedItem()
		}
	}
}
